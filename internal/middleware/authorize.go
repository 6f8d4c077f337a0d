package middleware

import (
	"github.com/gin-gonic/gin"

	"yogastudio/web/internal/guard"
	"yogastudio/web/internal/nav"
)

// RequireAdmin must run after RequireLoggedIn. Non-admins are silently
// redirected to the session list.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok || !identity.Admin {
			enforce(c, guard.Decision{Redirect: nav.Sessions})
			return
		}
		c.Next()
	}
}
