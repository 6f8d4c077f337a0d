package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status      string `json:"status"`
	Backend     string `json:"backend"`
	Cache       string `json:"cache"`
	Logged      bool   `json:"logged"`
	Environment string `json:"environment"`
}

func (h HandlerSet) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	backendStatus := "ok"
	if err := h.backend.Ping(ctx); err != nil {
		status = "degraded"
		backendStatus = "error"
		h.log.Error().Err(err).Msg("backend ping failed")
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "ok"
		if err := h.cache.Ping(ctx).Err(); err != nil {
			status = "degraded"
			cacheStatus = "error"
			h.log.Error().Err(err).Msg("redis ping failed")
		}
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:      status,
		Backend:     backendStatus,
		Cache:       cacheStatus,
		Logged:      h.state.IsLogged(),
		Environment: h.cfg.Environment,
	})
}
