package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/model"
	"github.com/nilepm/pm-suite/internal/repository"
)

// CreateProjectClosure handles POST /closure/add.
func (h *Handler) CreateProjectClosure(c echo.Context) error {
	var body model.ProjectClosure
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.ProjectID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "project_id is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	cl, err := h.Closures.Create(ctx, body)
	if err != nil {
		return repoError(c, err, "project closure")
	}
	return c.JSON(http.StatusCreated, cl)
}

// ListProjectClosures handles GET /closure.
func (h *Handler) ListProjectClosures(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	cls, err := h.Closures.List(ctx)
	if err != nil {
		return repoError(c, err, "project closure")
	}
	return c.JSON(http.StatusOK, cls)
}

// UpdateProjectClosure handles PATCH/PUT /closure/:id/edit.
func (h *Handler) UpdateProjectClosure(c echo.Context) error {
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
	cl, err := h.Closures.Update(ctx, id, fields)
	if err != nil {
		return repoError(c, err, "project closure")
	}
	return c.JSON(http.StatusOK, cl)
}

// DeleteProjectClosure handles DELETE /closure/:id/delete.
func (h *Handler) DeleteProjectClosure(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Closures.Delete(ctx, id); err != nil {
		return repoError(c, err, "project closure")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "project closure deleted"})
}
