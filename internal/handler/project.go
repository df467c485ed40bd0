package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/queue"
	"github.com/nilepm/pm-suite/internal/repository"
)

// CreateProject handles POST /projects/add.
func (h *Handler) CreateProject(c echo.Context) error {
	var body struct {
		ProjectName string `json:"project_name"`
		Status      string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.ProjectName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "project_name is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	p, err := h.Projects.Create(ctx, name, body.Status)
	if err != nil {
		return repoError(c, err, "project")
	}
	return c.JSON(http.StatusCreated, p)
}

// ListProjects handles GET /projects.
func (h *Handler) ListProjects(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	ps, err := h.Projects.List(ctx)
	if err != nil {
		return repoError(c, err, "project")
	}
	return c.JSON(http.StatusOK, ps)
}

// UpdateProject handles PATCH/PUT /projects/:id/edit.
func (h *Handler) UpdateProject(c echo.Context) error {
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
	p, err := h.Projects.Update(ctx, id, fields)
	if err != nil {
		return repoError(c, err, "project")
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteProject handles DELETE /projects/:id/delete.
func (h *Handler) DeleteProject(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Projects.Delete(ctx, id); err != nil {
		return repoError(c, err, "project")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "project deleted"})
}

// CreatePendingProject handles POST /pendingprojects/add. The status column
// is fixed server-side; clients cannot submit a pending project as active.
func (h *Handler) CreatePendingProject(c echo.Context) error {
	var body struct {
		ProjectName   string `json:"project_name"`
		SubmitterName string `json:"submitter_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.ProjectName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "project_name is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	p, err := h.Projects.CreatePending(ctx, name, body.SubmitterName)
	if err != nil {
		return repoError(c, err, "pending project")
	}
	return c.JSON(http.StatusCreated, p)
}

// ListPendingProjects handles GET /pendingprojects.
func (h *Handler) ListPendingProjects(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	ps, err := h.Projects.ListPending(ctx)
	if err != nil {
		return repoError(c, err, "pending project")
	}
	return c.JSON(http.StatusOK, ps)
}

// UpdatePendingProject handles PATCH/PUT /pendingprojects/:id/edit.
func (h *Handler) UpdatePendingProject(c echo.Context) error {
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
	p, err := h.Projects.UpdatePending(ctx, id, fields)
	if err != nil {
		return repoError(c, err, "pending project")
	}
	return c.JSON(http.StatusOK, p)
}

// DeletePendingProject handles DELETE /pendingprojects/:id/delete.
func (h *Handler) DeletePendingProject(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Projects.DeletePending(ctx, id); err != nil {
		return repoError(c, err, "pending project")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "pending project deleted"})
}

// PromotePendingProject handles POST /pendingprojects/:id/promote. The
// insert into active_projects and the delete from pending_projects happen
// in one transaction; either both land or neither does. A promoted event
// is published after commit, and a publish failure never fails the request.
func (h *Handler) PromotePendingProject(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	active, err := h.Projects.Promote(ctx, id)
	if err != nil {
		return repoError(c, err, "pending project")
	}

	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = queue.PublishProjectPromoted(pubCtx, queue.ProjectPromotedEvent{
			ProjectID:   active.ID,
			ProjectName: active.ProjectName,
			PromotedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusOK, active)
}

// CreateActiveProject handles POST /activeprojects/add.
func (h *Handler) CreateActiveProject(c echo.Context) error {
	var body struct {
		ProjectName   string `json:"project_name"`
		SubmitterName string `json:"submitter_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.ProjectName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "project_name is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	p, err := h.Projects.CreateActive(ctx, name, body.SubmitterName)
	if err != nil {
		return repoError(c, err, "active project")
	}
	return c.JSON(http.StatusCreated, p)
}

// ListActiveProjects handles GET /activeprojects.
func (h *Handler) ListActiveProjects(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	ps, err := h.Projects.ListActive(ctx)
	if err != nil {
		return repoError(c, err, "active project")
	}
	return c.JSON(http.StatusOK, ps)
}

// UpdateActiveProject handles PATCH/PUT /activeprojects/:id/edit.
func (h *Handler) UpdateActiveProject(c echo.Context) error {
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
	p, err := h.Projects.UpdateActive(ctx, id, fields)
	if err != nil {
		return repoError(c, err, "active project")
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteActiveProject handles DELETE /activeprojects/:id/delete.
func (h *Handler) DeleteActiveProject(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Projects.DeleteActive(ctx, id); err != nil {
		return repoError(c, err, "active project")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "active project deleted"})
}
