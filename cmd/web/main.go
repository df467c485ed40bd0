package main // web tier entry point

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/auth"
	"github.com/nilepm/pm-suite/internal/config"
	"github.com/nilepm/pm-suite/internal/database"
	"github.com/nilepm/pm-suite/internal/repository"
	"github.com/nilepm/pm-suite/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// The web tier reads the same database for users and sessions; entity
	// CRUD goes through the API tier with a service token.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	sessions := repository.NewSessionRepo(db)

	authenticator := auth.NewAuthenticator(users)
	sessionTTL := time.Duration(cfg.SessionTTLHrs) * time.Hour
	sm := auth.NewSessionManager(sessions, users, sessionTTL, cfg.SessionCookie, cfg.CookieSecure)

	// Expired rows are dead weight once past their expiry; sweep hourly.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if n, err := sessions.PurgeExpired(ctx); err != nil {
				log.Printf("session purge: %v", err)
			} else if n > 0 {
				log.Printf("session purge: removed %d expired sessions", n)
			}
			cancel()
		}
	}()

	rdb := config.NewRedisClient()
	limitCfg := config.LoadLoginLimitConfig()

	srv := web.NewServer(authenticator, sm, web.NewClient(cfg.APIBaseURL, cfg.ServiceSecret))

	e := echo.New()
	e.HideBanner = true
	web.RegisterRoutes(e, srv, limitCfg, rdb)

	addr := ":" + cfg.WebPort
	log.Printf("web listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
