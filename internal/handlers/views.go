package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"yogastudio/web/internal/models"
	"yogastudio/web/internal/nav"
	"yogastudio/web/internal/service"
)

type errorView struct {
	OnError bool              `json:"onError"`
	Error   string            `json:"error,omitempty"`
	Fields  validation.Errors `json:"fields,omitempty"`
}

// identityView is the identity without its backend token.
type identityView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

func newIdentityView(identity models.SessionIdentity) identityView {
	return identityView{
		ID:        identity.ID,
		Username:  identity.Username,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Admin:     identity.Admin,
	}
}

func (h HandlerSet) renderError(c *gin.Context, status int) {
	c.JSON(status, errorView{OnError: true, Error: service.ErrorMessage})
}

// renderSubmitError answers a failed form submission: field errors for an
// invalid form, the generic message for anything else.
func (h HandlerSet) renderSubmitError(c *gin.Context, err error, failureStatus int) {
	view := errorView{OnError: true, Error: service.ErrorMessage}
	status := failureStatus

	var fields validation.Errors
	if errors.As(err, &fields) {
		view.Fields = fields
	}
	if errors.Is(err, service.ErrInvalidForm) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, view)
}

// follow turns what a presenter asked for into flash messages plus a
// redirect. It reports whether a redirect was written.
func (h HandlerSet) follow(c *gin.Context, rec *nav.Recorder, status int) bool {
	h.pushFlashes(c, rec.Messages())
	if !rec.Navigated() {
		return false
	}
	c.Redirect(status, rec.Target())
	return true
}

func (h HandlerSet) pushFlashes(c *gin.Context, messages []string) {
	if len(messages) == 0 {
		return
	}
	session := sessions.Default(c)
	for _, message := range messages {
		session.AddFlash(message)
	}
	if err := session.Save(); err != nil {
		h.log.Warn().Err(err).Msg("flash save failed")
	}
}

func (h HandlerSet) popFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		h.log.Warn().Err(err).Msg("flash save failed")
	}

	messages := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		if message, ok := flash.(string); ok {
			messages = append(messages, message)
		}
	}
	return messages
}

// redirectStatus keeps GET redirects as 302 and turns the ones answering a
// mutation into 303 so the browser follows with a GET.
func redirectStatus(c *gin.Context) int {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		return http.StatusFound
	}
	return http.StatusSeeOther
}
