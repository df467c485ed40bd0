package config

import (
	"os"
	"strconv"
	"time"
)

// LoginLimitConfig controls the rate limiter applied to the login endpoint.
// The limiter counts failed-or-not attempts per client key inside a fixed
// window; once MaxAttempts is reached further logins are rejected until the
// window expires.  Disabled entirely when Enabled is false or Redis is not
// reachable at startup.
type LoginLimitConfig struct {
	Enabled     bool
	MaxAttempts int
	Window      time.Duration
	Prefix      string
}

// LoadLoginLimitConfig reads environment variables to build a
// LoginLimitConfig.  Defaults are deliberately conservative: ten attempts
// per minute per client.
func LoadLoginLimitConfig() LoginLimitConfig {
	cfg := LoginLimitConfig{
		Enabled:     envBool("LOGIN_LIMIT_ENABLED", true),
		MaxAttempts: envIntDef("LOGIN_LIMIT_MAX_ATTEMPTS", 10),
		Window:      envDur("LOGIN_LIMIT_WINDOW", time.Minute),
		Prefix:      envStr("LOGIN_LIMIT_PREFIX", "loginrl"),
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}

func envIntDef(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
