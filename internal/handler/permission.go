package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/repository"
)

// CreatePermission handles POST /permissions/add.
func (h *Handler) CreatePermission(c echo.Context) error {
	var body struct {
		CanCreate bool `json:"can_create"`
		CanDelete bool `json:"can_delete"`
		CanEdit   bool `json:"can_edit"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	p, err := h.Permissions.Create(ctx, body.CanCreate, body.CanDelete, body.CanEdit)
	if err != nil {
		return repoError(c, err, "permission")
	}
	return c.JSON(http.StatusCreated, p)
}

// ListPermissions handles GET /permissions.
func (h *Handler) ListPermissions(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	ps, err := h.Permissions.List(ctx)
	if err != nil {
		return repoError(c, err, "permission")
	}
	return c.JSON(http.StatusOK, ps)
}

// UpdatePermission handles PATCH/PUT /permissions/:id/edit. Only supplied
// fields are written.
func (h *Handler) UpdatePermission(c echo.Context) error {
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
	p, err := h.Permissions.Update(ctx, id, fields)
	if err != nil {
		return repoError(c, err, "permission")
	}
	return c.JSON(http.StatusOK, p)
}

// DeletePermission handles DELETE /permissions/:id/delete.
func (h *Handler) DeletePermission(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Permissions.Delete(ctx, id); err != nil {
		return repoError(c, err, "permission")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "permission deleted"})
}
