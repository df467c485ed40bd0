package main // API tier entry point

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/config"
	"github.com/nilepm/pm-suite/internal/database"
	"github.com/nilepm/pm-suite/internal/handler"
	"github.com/nilepm/pm-suite/internal/repository"
	"github.com/nilepm/pm-suite/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	h := &handler.Handler{
		Permissions: repository.NewPermissionRepo(db),
		Roles:       repository.NewRoleRepo(db),
		Users:       repository.NewUserRepo(db),
		Projects:    repository.NewProjectRepo(db),
		Members:     repository.NewMemberRepo(db),
		Charters:    repository.NewCharterRepo(db),
		Activities:  repository.NewActivityRepo(db),
		Closures:    repository.NewClosureRepo(db),
		Views:       repository.NewViewRepo(db),
		BcryptCost:  cfg.BcryptCost,
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, h, cfg.ServiceSecret)

	addr := ":" + cfg.APIPort
	log.Printf("api listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
