package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogastudio/web/internal/models"
	"yogastudio/web/internal/nav"
	"yogastudio/web/internal/service"
)

type meView struct {
	User *models.User `json:"user"`
}

func (h HandlerSet) Me(c *gin.Context) {
	account := service.NewAccount(h.users, h.state, &nav.Recorder{}, &nav.Recorder{}, h.log)
	if err := account.Load(c.Request.Context()); err != nil {
		h.renderLoadError(c, err)
		return
	}
	c.JSON(http.StatusOK, meView{User: account.User})
}

func (h HandlerSet) DeleteAccount(c *gin.Context) {
	rec := &nav.Recorder{}
	account := service.NewAccount(h.users, h.state, rec, rec, h.log)
	if err := account.Delete(c.Request.Context()); err != nil {
		h.renderError(c, http.StatusBadGateway)
		return
	}
	h.follow(c, rec, http.StatusSeeOther)
}
