package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// The view handlers are pass-through reads against database views. Rows
// come back as generic maps because each view has its own column set.

func (h *Handler) serveView(c echo.Context, name string, query func(context.Context) ([]map[string]any, error)) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows, err := query(ctx)
	if err != nil {
		return repoError(c, err, name)
	}
	return c.JSON(http.StatusOK, rows)
}

// ProjectSummaryView handles GET /project_summary/view.
func (h *Handler) ProjectSummaryView(c echo.Context) error {
	return h.serveView(c, "project summary view", h.Views.ProjectSummary)
}

// UserProjectsView handles GET /users/view.
func (h *Handler) UserProjectsView(c echo.Context) error {
	return h.serveView(c, "user projects view", h.Views.UserProjects)
}

// ProjectManagementView handles GET /projectmanagement/view.
func (h *Handler) ProjectManagementView(c echo.Context) error {
	return h.serveView(c, "project management view", h.Views.ProjectManagement)
}

// SubmissionStatusView handles GET /status/view.
func (h *Handler) SubmissionStatusView(c echo.Context) error {
	return h.serveView(c, "submission status view", h.Views.SubmissionStatus)
}
