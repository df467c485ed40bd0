package handler // handler contains the API tier's HTTP handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/repository"
)

// Handler bundles every repository the API tier serves. One instance is
// built in main and shared across routes.
type Handler struct {
	Permissions *repository.PermissionRepo
	Roles       *repository.RoleRepo
	Users       *repository.UserRepo
	Projects    *repository.ProjectRepo
	Members     *repository.MemberRepo
	Charters    *repository.CharterRepo
	Activities  *repository.ActivityRepo
	Closures    *repository.ClosureRepo
	Views       *repository.ViewRepo

	BcryptCost int
}

// reqCtx derives a bounded context from the incoming request so a slow
// database cannot hold the connection open indefinitely.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// idParam parses the named route parameter as an unsigned id.
func idParam(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// repoError translates repository sentinels into HTTP responses. Storage
// error text never reaches the client; it is logged and replaced with a
// generic message.
func repoError(c echo.Context, err error, entity string) error {
	switch {
	case errors.Is(err, repository.ErrNoFieldsToUpdate):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": entity + " not found"})
	case errors.Is(err, repository.ErrUsernameExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
	case errors.Is(err, repository.ErrMemberExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "user is already a member of this project"})
	default:
		c.Logger().Errorf("%s: %v", entity, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
}
