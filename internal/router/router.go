package router // router defines how the API tier's HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/handler"
	"github.com/nilepm/pm-suite/internal/middleware"
)

// RegisterRoutes wires every API route onto the provided Echo instance.
// Apart from the health check, the whole surface sits behind the service
// token middleware: only the web tier and other internal callers holding
// the shared secret can reach it.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, serviceSecret string) {
	e.GET("/healthz", handler.Health)

	g := e.Group("", middleware.ServiceAuth(serviceSecret))

	// Every entity follows the same route shape: POST /E/add, GET /E,
	// PATCH|PUT /E/:id/edit, DELETE /E/:id/delete.
	g.POST("/permissions/add", h.CreatePermission)
	g.GET("/permissions", h.ListPermissions)
	g.PATCH("/permissions/:id/edit", h.UpdatePermission)
	g.PUT("/permissions/:id/edit", h.UpdatePermission)
	g.DELETE("/permissions/:id/delete", h.DeletePermission)

	g.POST("/roles/add", h.CreateRole)
	g.GET("/roles", h.ListRoles)
	g.PATCH("/roles/:id/edit", h.UpdateRole)
	g.PUT("/roles/:id/edit", h.UpdateRole)
	g.DELETE("/roles/:id/delete", h.DeleteRole)

	g.POST("/users/add", h.CreateUser)
	g.GET("/users", h.ListUsers)
	g.GET("/users/by-username/:username", h.GetUserByUsername)
	g.PATCH("/users/:id/edit", h.UpdateUser)
	g.PUT("/users/:id/edit", h.UpdateUser)
	g.DELETE("/users/:id/delete", h.DeleteUser)

	g.POST("/projects/add", h.CreateProject)
	g.GET("/projects", h.ListProjects)
	g.PATCH("/projects/:id/edit", h.UpdateProject)
	g.PUT("/projects/:id/edit", h.UpdateProject)
	g.DELETE("/projects/:id/delete", h.DeleteProject)

	g.POST("/pendingprojects/add", h.CreatePendingProject)
	g.GET("/pendingprojects", h.ListPendingProjects)
	g.PATCH("/pendingprojects/:id/edit", h.UpdatePendingProject)
	g.PUT("/pendingprojects/:id/edit", h.UpdatePendingProject)
	g.DELETE("/pendingprojects/:id/delete", h.DeletePendingProject)
	// Promotion replaces the old two-request add-then-delete dance with a
	// single transactional operation.
	g.POST("/pendingprojects/:id/promote", h.PromotePendingProject)

	g.POST("/activeprojects/add", h.CreateActiveProject)
	g.GET("/activeprojects", h.ListActiveProjects)
	g.PATCH("/activeprojects/:id/edit", h.UpdateActiveProject)
	g.PUT("/activeprojects/:id/edit", h.UpdateActiveProject)
	g.DELETE("/activeprojects/:id/delete", h.DeleteActiveProject)

	g.POST("/project/members/add", h.AddProjectMember)
	g.GET("/project/members/:project_id", h.ListProjectMembers)
	g.DELETE("/project/members/remove/:project_id/:user_id", h.RemoveProjectMember)

	g.POST("/charters/add", h.CreateCharter)
	g.GET("/charters", h.ListCharters)
	g.GET("/charters/:id", h.GetCharter)
	g.GET("/charters/project/:project_id", h.ListChartersByProject)
	g.PATCH("/charters/:id/edit", h.UpdateCharter)
	g.PUT("/charters/:id/edit", h.UpdateCharter)
	g.DELETE("/charters/:id/delete", h.DeleteCharter)

	g.POST("/activity_form/add", h.CreateActivityForm)
	g.GET("/activity_form", h.ListActivityForms)
	g.PATCH("/activity_form/:id/edit", h.UpdateActivityForm)
	g.PUT("/activity_form/:id/edit", h.UpdateActivityForm)
	g.DELETE("/activity_form/:id/delete", h.DeleteActivityForm)

	g.POST("/activity_closure/add", h.CreateActivityClosure)
	g.GET("/activity_closure", h.ListActivityClosures)
	g.PATCH("/activity_closure/:id/edit", h.UpdateActivityClosure)
	g.PUT("/activity_closure/:id/edit", h.UpdateActivityClosure)
	g.DELETE("/activity_closure/:id/delete", h.DeleteActivityClosure)

	g.POST("/closure/add", h.CreateProjectClosure)
	g.GET("/closure", h.ListProjectClosures)
	g.PATCH("/closure/:id/edit", h.UpdateProjectClosure)
	g.PUT("/closure/:id/edit", h.UpdateProjectClosure)
	g.DELETE("/closure/:id/delete", h.DeleteProjectClosure)

	// Read-only views.
	g.GET("/project_summary/view", h.ProjectSummaryView)
	g.GET("/users/view", h.UserProjectsView)
	g.GET("/projectmanagement/view", h.ProjectManagementView)
	g.GET("/status/view", h.SubmissionStatusView)
}
