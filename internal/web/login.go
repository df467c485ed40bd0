package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/auth"
	"github.com/nilepm/pm-suite/internal/model"
)

const loginFailedMsg = "Incorrect username or password"

// roleHome is the single place that maps a role to its landing page.
// An empty string means the role has no home and login must fail.
func roleHome(role model.RoleID) string {
	switch role {
	case model.RoleAdmin:
		return "/dashboard"
	case model.RoleManager, model.RoleMember:
		return "/index"
	default:
		return ""
	}
}

func loginErrorRedirect(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/login?error="+url.QueryEscape(msg))
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Error": c.QueryParam("error"),
	})
}

// Login handles POST /login. Unknown usernames and wrong passwords produce
// the same redirect, and a user whose stored role maps to no landing page
// is treated as a failed login rather than sent somewhere arbitrary.
func (s *Server) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	p, err := s.Auth.Authenticate(c.Request().Context(), username, password)
	if errors.Is(err, auth.ErrMissingCredentials) {
		return loginErrorRedirect(c, "Username and password are required")
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return loginErrorRedirect(c, loginFailedMsg)
	}
	if err != nil {
		c.Logger().Errorf("login: %v", err)
		return loginErrorRedirect(c, "Login is temporarily unavailable")
	}

	home := roleHome(p.RoleID)
	if home == "" {
		return loginErrorRedirect(c, loginFailedMsg)
	}

	token, err := s.Sessions.Issue(c.Request().Context(), p)
	if err != nil {
		c.Logger().Errorf("issue session: %v", err)
		return loginErrorRedirect(c, "Login is temporarily unavailable")
	}
	c.SetCookie(s.Sessions.Cookie(token))
	return c.Redirect(http.StatusSeeOther, home)
}

// Logout handles GET /logout. The session row is removed server-side and
// the cookie expired, so the token is dead even if a copy survives.
func (s *Server) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(s.Sessions.CookieName()); err == nil {
		if err := s.Sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			c.Logger().Errorf("destroy session: %v", err)
		}
	}
	c.SetCookie(s.Sessions.ClearCookie())
	return c.Redirect(http.StatusSeeOther, "/")
}
