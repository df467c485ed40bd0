package middleware

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/nilepm/pm-suite/internal/config"
)

// LoginLimiter returns an Echo middleware that caps login attempts per
// client IP inside a fixed window, backed by Redis so the count holds
// across processes.  When the limiter is disabled or Redis is unavailable
// it passes every request through; losing the brake is preferred over
// refusing all logins.
func LoginLimiter(cfg config.LoginLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := cfg.Prefix + ":" + c.RealIP()

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				c.Logger().Warnf("login limiter unavailable: %v", err)
				return next(c)
			}
			if n == 1 {
				// First attempt in this window owns the expiry.
				rdb.Expire(ctx, key, cfg.Window)
			}
			if n > int64(cfg.MaxAttempts) {
				ttl, _ := rdb.TTL(ctx, key).Result()
				secs := int(ttl.Seconds())
				if secs < 0 {
					secs = int(cfg.Window.Seconds())
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return c.Redirect(http.StatusSeeOther, "/login?error="+url.QueryEscape("Too many attempts, try again later"))
			}
			return next(c)
		}
	}
}
