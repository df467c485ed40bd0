package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/model"
	"github.com/nilepm/pm-suite/internal/repository"
)

// CreateUser handles POST /users/add. The plaintext password is hashed
// before it touches storage and never appears in any response.
func (h *Handler) CreateUser(c echo.Context) error {
	var body struct {
		Username      string `json:"username"`
		Password      string `json:"password"`
		PermissionsID uint64 `json:"permissions_id"`
		RoleID        uint8  `json:"role_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	username := strings.TrimSpace(body.Username)
	if username == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}
	role := model.RoleID(body.RoleID)
	if !role.Known() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role_id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	u, err := h.Users.Create(ctx, username, body.Password, body.PermissionsID, role, h.BcryptCost)
	if err != nil {
		return repoError(c, err, "user")
	}
	return c.JSON(http.StatusCreated, u)
}

// ListUsers handles GET /users. Password hashes are excluded by the model's
// JSON tags.
func (h *Handler) ListUsers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	us, err := h.Users.List(ctx)
	if err != nil {
		return repoError(c, err, "user")
	}
	return c.JSON(http.StatusOK, us)
}

// GetUserByUsername handles GET /users/by-username/:username, an exact and
// case-sensitive lookup for internal callers. Login does not go through
// here; the web tier verifies credentials against the database directly,
// and the hash is never serialized.
func (h *Handler) GetUserByUsername(c echo.Context) error {
	username := c.Param("username")
	ctx, cancel := reqCtx(c)
	defer cancel()
	u, err := h.Users.GetByUsername(ctx, username)
	if err != nil {
		return repoError(c, err, "user")
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateUser handles PATCH/PUT /users/:id/edit. A supplied "password" key
// is rehashed by the repository; other fields pass through the whitelist.
func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	fields := repository.Fields{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	u, err := h.Users.Update(ctx, id, fields, h.BcryptCost)
	if err != nil {
		return repoError(c, err, "user")
	}
	return c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /users/:id/delete. The repository detaches
// project memberships and sessions in the same transaction.
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Users.Delete(ctx, id); err != nil {
		return repoError(c, err, "user")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}
