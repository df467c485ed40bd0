package middleware // middleware provides reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/utils"
)

// ServiceAuth returns an Echo middleware that validates the Bearer service
// token on API-tier requests.  The API surface is internal-only: the web
// tier (or any other internal caller) signs a short-lived HS256 token with
// the shared secret.  End users never hold this token; their sessions live
// on the web tier.  The verified issuer is stored in the context under
// "caller" for request logging.
func ServiceAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			issuer, err := utils.ParseServiceToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set("caller", issuer)
			return next(c)
		}
	}
}
