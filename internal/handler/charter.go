package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/model"
	"github.com/nilepm/pm-suite/internal/repository"
)

// CreateCharter handles POST /charters/add. Create accepts the same field
// set as edit, submitter_name included.
func (h *Handler) CreateCharter(c echo.Context) error {
	var body model.Charter
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.ProjectID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "project_id is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	ch, err := h.Charters.Create(ctx, body)
	if err != nil {
		return repoError(c, err, "charter")
	}
	return c.JSON(http.StatusCreated, ch)
}

// ListCharters handles GET /charters.
func (h *Handler) ListCharters(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	cs, err := h.Charters.List(ctx)
	if err != nil {
		return repoError(c, err, "charter")
	}
	return c.JSON(http.StatusOK, cs)
}

// GetCharter handles GET /charters/:id.
func (h *Handler) GetCharter(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	ch, err := h.Charters.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "charter")
	}
	return c.JSON(http.StatusOK, ch)
}

// ListChartersByProject handles GET /charters/project/:project_id. Lookup
// by owning project is a separate operation from lookup by charter id.
func (h *Handler) ListChartersByProject(c echo.Context) error {
	projectID, err := idParam(c, "project_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid project_id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	cs, err := h.Charters.ListByProject(ctx, projectID)
	if err != nil {
		return repoError(c, err, "charter")
	}
	return c.JSON(http.StatusOK, cs)
}

// UpdateCharter handles PATCH/PUT /charters/:id/edit. The row is addressed
// by its own primary id, never by project_id.
func (h *Handler) UpdateCharter(c echo.Context) error {
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
	ch, err := h.Charters.Update(ctx, id, fields)
	if err != nil {
		return repoError(c, err, "charter")
	}
	return c.JSON(http.StatusOK, ch)
}

// DeleteCharter handles DELETE /charters/:id/delete.
func (h *Handler) DeleteCharter(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Charters.Delete(ctx, id); err != nil {
		return repoError(c, err, "charter")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "charter deleted"})
}
