package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogastudio/web/internal/nav"
	"yogastudio/web/internal/service"
)

type loginView struct {
	OnError bool              `json:"onError"`
	Form    service.LoginForm `json:"form"`
}

type registerView struct {
	OnError bool                 `json:"onError"`
	Form    service.RegisterForm `json:"form"`
}

// Root sends the visitor to the page matching their state.
func (h HandlerSet) Root(c *gin.Context) {
	if h.state.IsLogged() {
		c.Redirect(http.StatusFound, nav.Sessions)
		return
	}
	c.Redirect(http.StatusFound, nav.Login)
}

func (h HandlerSet) LoginView(c *gin.Context) {
	c.JSON(http.StatusOK, loginView{})
}

func (h HandlerSet) SubmitLogin(c *gin.Context) {
	var form service.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest)
		return
	}

	rec := &nav.Recorder{}
	flow := service.NewAuthFlow(h.auth, h.state, h.log)
	if err := flow.SubmitLogin(c.Request.Context(), form, rec); err != nil {
		h.renderSubmitError(c, err, http.StatusUnauthorized)
		return
	}
	h.follow(c, rec, http.StatusSeeOther)
}

func (h HandlerSet) RegisterView(c *gin.Context) {
	c.JSON(http.StatusOK, registerView{})
}

func (h HandlerSet) SubmitRegister(c *gin.Context) {
	var form service.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest)
		return
	}

	rec := &nav.Recorder{}
	flow := service.NewAuthFlow(h.auth, h.state, h.log)
	if err := flow.SubmitRegister(c.Request.Context(), form, rec); err != nil {
		h.renderSubmitError(c, err, http.StatusBadRequest)
		return
	}
	h.follow(c, rec, http.StatusSeeOther)
}

func (h HandlerSet) Logout(c *gin.Context) {
	rec := &nav.Recorder{}
	service.NewAccount(h.users, h.state, rec, rec, h.log).LogOut()
	h.follow(c, rec, http.StatusSeeOther)
}

func (h HandlerSet) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"page": "not-found"})
}
