package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"yogastudio/web/internal/authstate"
	"yogastudio/web/internal/backend"
	"yogastudio/web/internal/config"
	"yogastudio/web/internal/middleware"
	"yogastudio/web/internal/nav"
	"yogastudio/web/internal/service"
)

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	state    *authstate.State
	backend  *backend.Client
	auth     service.AuthAPI
	sessions service.SessionAPI
	teachers service.TeacherAPI
	users    service.UserAPI
	cache    *redis.Client
}

// NewHandlerSet wires the page handlers. teachers may be a cache in front
// of client; cache is nil when redis is disabled.
func NewHandlerSet(
	log zerolog.Logger,
	cfg *config.AppConfig,
	state *authstate.State,
	client *backend.Client,
	teachers service.TeacherAPI,
	cache *redis.Client,
) HandlerSet {
	if teachers == nil {
		teachers = client
	}
	return HandlerSet{
		log:      log,
		cfg:      cfg,
		state:    state,
		backend:  client,
		auth:     client,
		sessions: client,
		teachers: teachers,
		users:    client,
		cache:    cache,
	}
}

func (h HandlerSet) Register(router gin.IRouter) {
	router.GET(nav.Root, h.Root)
	router.GET("/healthz", h.Health)
	router.GET("/events", h.Events)
	router.GET(nav.NotFound, h.NotFound)
	router.POST("/logout", h.Logout)

	guest := router.Group("", middleware.RequireGuest(h.state))
	{
		guest.GET(nav.Login, h.LoginView)
		guest.POST(nav.Login, h.SubmitLogin)
		guest.GET(nav.Register, h.RegisterView)
		guest.POST(nav.Register, h.SubmitRegister)
	}

	protected := router.Group("", middleware.RequireLoggedIn(h.state))
	{
		protected.GET(nav.Sessions, h.ListSessions)
		protected.GET(nav.SessionDetail(":id"), h.SessionDetail)
		protected.POST(nav.SessionDetail(":id")+"/participate", h.Participate)
		protected.DELETE(nav.SessionDetail(":id")+"/participate", h.UnParticipate)
		protected.DELETE(nav.SessionDetail(":id"), middleware.RequireAdmin(), h.DeleteSession)

		protected.GET(nav.SessionCreate, h.SessionForm)
		protected.POST(nav.SessionCreate, h.SubmitSessionForm)
		protected.GET(nav.SessionUpdate(":id"), h.SessionForm)
		protected.POST(nav.SessionUpdate(":id"), h.SubmitSessionForm)

		protected.GET(nav.Me, h.Me)
		protected.DELETE(nav.Me, h.DeleteAccount)
	}
}
