package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"yogastudio/web/internal/backend"
	"yogastudio/web/internal/models"
	"yogastudio/web/internal/nav"
	"yogastudio/web/internal/service"
)

type sessionListView struct {
	User      identityView     `json:"user"`
	CanCreate bool             `json:"canCreate"`
	Sessions  []models.Session `json:"sessions"`
	Messages  []string         `json:"messages,omitempty"`
}

type sessionDetailView struct {
	Session       *models.Session `json:"session"`
	Teacher       *models.Teacher `json:"teacher"`
	IsAdmin       bool            `json:"isAdmin"`
	IsParticipate bool            `json:"isParticipate"`
}

type sessionFormView struct {
	OnUpdate bool                  `json:"onUpdate"`
	ID       string                `json:"id,omitempty"`
	Fields   service.SessionFields `json:"fields"`
	Teachers []models.Teacher      `json:"teachers"`
}

func (h HandlerSet) ListSessions(c *gin.Context) {
	list := service.NewSessionList(h.sessions, h.state)
	messages := h.popFlashes(c)
	if err := list.Load(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("list sessions failed")
		h.renderError(c, http.StatusBadGateway)
		return
	}

	sessions := list.Sessions
	if sessions == nil {
		sessions = []models.Session{}
	}
	c.JSON(http.StatusOK, sessionListView{
		User:      newIdentityView(list.Identity),
		CanCreate: list.Identity.Admin,
		Sessions:  sessions,
		Messages:  messages,
	})
}

func (h HandlerSet) newDetail(rec *nav.Recorder) *service.SessionDetail {
	return service.NewSessionDetail(h.sessions, h.teachers, h.state, rec, rec, h.log)
}

// loadDetail initializes the detail presenter and answers the request
// itself when that fails.
func (h HandlerSet) loadDetail(c *gin.Context, detail *service.SessionDetail) bool {
	if err := detail.Init(c.Request.Context(), c.Param("id")); err != nil {
		h.renderLoadError(c, err)
		return false
	}
	return true
}

func (h HandlerSet) renderLoadError(c *gin.Context, err error) {
	if backend.IsNotFound(err) {
		h.NotFound(c)
		return
	}
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("load failed")
	h.renderError(c, http.StatusBadGateway)
}

func (h HandlerSet) renderDetail(c *gin.Context, detail *service.SessionDetail) {
	c.JSON(http.StatusOK, sessionDetailView{
		Session:       detail.Session,
		Teacher:       detail.Teacher,
		IsAdmin:       detail.IsAdmin,
		IsParticipate: detail.IsParticipate,
	})
}

func (h HandlerSet) SessionDetail(c *gin.Context) {
	detail := h.newDetail(&nav.Recorder{})
	if !h.loadDetail(c, detail) {
		return
	}
	h.renderDetail(c, detail)
}

func (h HandlerSet) Participate(c *gin.Context) {
	h.changeParticipation(c, (*service.SessionDetail).Participate)
}

func (h HandlerSet) UnParticipate(c *gin.Context) {
	h.changeParticipation(c, (*service.SessionDetail).UnParticipate)
}

func (h HandlerSet) changeParticipation(c *gin.Context, change func(*service.SessionDetail, context.Context) error) {
	detail := h.newDetail(&nav.Recorder{})
	if !h.loadDetail(c, detail) {
		return
	}
	if err := change(detail, c.Request.Context()); err != nil {
		h.log.Error().Err(err).Str("session_id", detail.SessionID).Msg("participation change failed")
		h.renderError(c, http.StatusBadGateway)
		return
	}
	h.renderDetail(c, detail)
}

func (h HandlerSet) DeleteSession(c *gin.Context) {
	rec := &nav.Recorder{}
	detail := h.newDetail(rec)
	if !h.loadDetail(c, detail) {
		return
	}
	if err := detail.Delete(c.Request.Context()); err != nil {
		h.renderError(c, http.StatusBadGateway)
		return
	}
	h.follow(c, rec, http.StatusSeeOther)
}

// initForm builds and initializes the session form, answering the request
// itself unless the form is ready for use.
func (h HandlerSet) initForm(c *gin.Context) (*service.SessionForm, *nav.Recorder, bool) {
	rec := &nav.Recorder{}
	form := service.NewSessionForm(h.sessions, h.teachers, h.state, rec, rec, h.log)

	ready, err := form.Init(c.Request.Context(), c.Param("id"))
	if !ready {
		h.follow(c, rec, redirectStatus(c))
		return nil, nil, false
	}
	if err != nil {
		h.renderLoadError(c, err)
		return nil, nil, false
	}
	return form, rec, true
}

func (h HandlerSet) renderForm(c *gin.Context, form *service.SessionForm) {
	teachers := form.Teachers
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	c.JSON(http.StatusOK, sessionFormView{
		OnUpdate: form.OnUpdate(),
		ID:       form.RecordID(),
		Fields:   form.Fields,
		Teachers: teachers,
	})
}

func (h HandlerSet) SessionForm(c *gin.Context) {
	form, _, ok := h.initForm(c)
	if !ok {
		return
	}
	h.renderForm(c, form)
}

func (h HandlerSet) SubmitSessionForm(c *gin.Context) {
	form, rec, ok := h.initForm(c)
	if !ok {
		return
	}

	var fields service.SessionFields
	if err := c.ShouldBind(&fields); err != nil {
		h.renderError(c, http.StatusBadRequest)
		return
	}
	form.Fill(fields)

	if err := form.Submit(c.Request.Context()); err != nil {
		h.renderSubmitError(c, err, http.StatusBadGateway)
		return
	}
	h.follow(c, rec, http.StatusSeeOther)
}
