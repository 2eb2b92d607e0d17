// Package guard decides whether a protected view may render for the current
// session. It is presentation-agnostic: callers map decisions to redirects,
// placeholders, or rendered content.
package guard

import (
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/session"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// ShowLoading means the session is still resolving; render a placeholder.
	ShowLoading Decision = iota
	// RedirectLogin means the session is anonymous; send to the login entry.
	RedirectLogin
	// RedirectHome means the user is authenticated but the view requires a
	// different role; send to the default landing page.
	RedirectHome
	// Allow means the protected content may render.
	Allow
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "loading"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// Decide applies the guard contract: loading first, then authentication,
// then role. An empty requiredRole admits any authenticated user.
func Decide(st session.State, requiredRole models.Role) Decision {
	if st.Loading {
		return ShowLoading
	}
	if !st.Authenticated {
		return RedirectLogin
	}
	if requiredRole != "" && (st.User == nil || st.User.Role != requiredRole) {
		return RedirectHome
	}
	return Allow
}
