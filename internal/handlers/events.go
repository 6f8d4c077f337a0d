package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"
)

const streamIDHeader = "X-Stream-Id"

// Events streams the logged-in signal as server-sent events: the current
// value first, then every change, until the client goes away.
func (h HandlerSet) Events(c *gin.Context) {
	streamID := ksuid.New().String()
	signals := h.state.Watch(c.Request.Context())

	c.Header(streamIDHeader, streamID)
	c.Header("Cache-Control", "no-cache")
	log := h.log.With().Str("stream_id", streamID).Logger()
	log.Debug().Msg("event stream opened")

	c.Stream(func(w io.Writer) bool {
		logged, ok := <-signals
		if !ok {
			return false
		}
		c.SSEvent("logged", logged)
		return true
	})

	log.Debug().Msg("event stream closed")
}
