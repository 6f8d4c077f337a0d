// Package guard decides whether a navigation may proceed given the current
// authentication state.
package guard

import "yogastudio/web/internal/nav"

// LoginState is the read side of the authentication state a guard needs.
type LoginState interface {
	IsLogged() bool
}

// Decision is the outcome of a guard: proceed, or go to Redirect instead.
type Decision struct {
	Allow    bool
	Redirect string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(path string) Decision {
	return Decision{Redirect: path}
}

// Auth lets logged-in users through and sends everyone else to the login page.
func Auth(state LoginState) Decision {
	if state.IsLogged() {
		return allow()
	}
	return redirect(nav.Login)
}

// Unauth is the mirror of Auth for guest-only pages such as login and
// register: logged-in users land on the session list.
func Unauth(state LoginState) Decision {
	if !state.IsLogged() {
		return allow()
	}
	return redirect(nav.Sessions)
}
