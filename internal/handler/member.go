package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AddProjectMember handles POST /project/members/add.
func (h *Handler) AddProjectMember(c echo.Context) error {
	var body struct {
		ProjectID uint64 `json:"project_id"`
		UserID    uint64 `json:"user_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.ProjectID == 0 || body.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "project_id and user_id are required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Members.Add(ctx, body.ProjectID, body.UserID); err != nil {
		return repoError(c, err, "project member")
	}
	return c.JSON(http.StatusCreated, echo.Map{"project_id": body.ProjectID, "user_id": body.UserID})
}

// ListProjectMembers handles GET /project/members/:project_id and returns
// the member user ids for one project.
func (h *Handler) ListProjectMembers(c echo.Context) error {
	projectID, err := idParam(c, "project_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid project_id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	ids, err := h.Members.ListByProject(ctx, projectID)
	if err != nil {
		return repoError(c, err, "project member")
	}
	return c.JSON(http.StatusOK, echo.Map{"project_id": projectID, "user_ids": ids})
}

// RemoveProjectMember handles DELETE /project/members/remove/:project_id/:user_id.
func (h *Handler) RemoveProjectMember(c echo.Context) error {
	projectID, err := idParam(c, "project_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid project_id"})
	}
	userID, err := idParam(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Members.Remove(ctx, projectID, userID); err != nil {
		return repoError(c, err, "project member")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "member removed"})
}
