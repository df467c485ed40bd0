package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/repository"
)

// CreateRole handles POST /roles/add.
func (h *Handler) CreateRole(c echo.Context) error {
	var body struct {
		RoleName string `json:"role_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.RoleName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role_name is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	r, err := h.Roles.Create(ctx, name)
	if err != nil {
		return repoError(c, err, "role")
	}
	return c.JSON(http.StatusCreated, r)
}

// ListRoles handles GET /roles.
func (h *Handler) ListRoles(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rs, err := h.Roles.List(ctx)
	if err != nil {
		return repoError(c, err, "role")
	}
	return c.JSON(http.StatusOK, rs)
}

// UpdateRole handles PATCH/PUT /roles/:id/edit.
func (h *Handler) UpdateRole(c echo.Context) error {
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
	r, err := h.Roles.Update(ctx, id, fields)
	if err != nil {
		return repoError(c, err, "role")
	}
	return c.JSON(http.StatusOK, r)
}

// DeleteRole handles DELETE /roles/:id/delete.
func (h *Handler) DeleteRole(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Roles.Delete(ctx, id); err != nil {
		return repoError(c, err, "role")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "role deleted"})
}
