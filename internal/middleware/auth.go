package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogastudio/web/internal/guard"
	"yogastudio/web/internal/models"
)

const identityKey = "current_identity"

// SessionReader is what the route guards read from the authentication
// state.
type SessionReader interface {
	guard.LoginState
	Identity() (models.SessionIdentity, bool)
}

// RequireLoggedIn lets the request through only while someone is logged in
// and redirects to the login page otherwise.
func RequireLoggedIn(state SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enforce(c, guard.Auth(state)) {
			return
		}
		if identity, ok := state.Identity(); ok {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// RequireGuest is the inverse of RequireLoggedIn: logged-in users are sent
// to the session list.
func RequireGuest(state guard.LoginState) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enforce(c, guard.Unauth(state)) {
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity RequireLoggedIn saw for this request.
func CurrentIdentity(c *gin.Context) (models.SessionIdentity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.SessionIdentity{}, false
	}
	identity, ok := v.(models.SessionIdentity)
	return identity, ok
}

func enforce(c *gin.Context, d guard.Decision) bool {
	if d.Allow {
		return true
	}
	c.Redirect(http.StatusFound, d.Redirect)
	c.Abort()
	return false
}
