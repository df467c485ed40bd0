package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/auth"
	"github.com/nilepm/pm-suite/internal/model"
)

// principalKey is the context key the guard stores the resolved principal
// under.
const principalKey = "principal"

// RequireSession resolves the session cookie on every request and attaches
// the principal to the Echo context. Anything short of a valid session
// redirects to the login page; web routes never answer with 401 JSON.
func RequireSession(sm *auth.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sm.CookieName())
			if err != nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			p, err := sm.Resolve(c.Request().Context(), cookie.Value)
			if errors.Is(err, auth.ErrSessionInvalid) {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if err != nil {
				// Session storage is down. This is a server fault, not a
				// failed login, so it surfaces as a 500 page.
				c.Logger().Errorf("session resolve: %v", err)
				return echo.NewHTTPError(http.StatusInternalServerError)
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// RequireAdmin gates admin-only pages. It must run after RequireSession.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := c.Get(principalKey).(auth.Principal)
		if !ok || p.RoleID != model.RoleAdmin {
			return c.Redirect(http.StatusSeeOther, "/index")
		}
		return next(c)
	}
}

// currentPrincipal returns the principal stored by RequireSession.
func currentPrincipal(c echo.Context) auth.Principal {
	p, _ := c.Get(principalKey).(auth.Principal)
	return p
}
