package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/nilepm/pm-suite/internal/config"
	"github.com/nilepm/pm-suite/internal/middleware"
)

// RegisterRoutes wires the web tier onto the provided Echo instance. The
// login POST sits behind the Redis-backed rate limiter; everything except
// the login page itself sits behind the session guard.
func RegisterRoutes(e *echo.Echo, s *Server, limitCfg config.LoginLimitConfig, rdb *redis.Client) {
	e.Renderer = NewRenderer()

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/login")
	})
	e.GET("/login", s.LoginPage)
	e.POST("/login", s.Login, middleware.LoginLimiter(limitCfg, rdb))
	e.GET("/logout", s.Logout)

	g := e.Group("", RequireSession(s.Sessions))

	g.GET("/dashboard", s.Dashboard, RequireAdmin)
	g.GET("/index", s.Index)
	g.GET("/users", s.UsersPage)
	g.POST("/users", s.CreateUser)
	g.POST("/users/:id/edit", s.EditUser)
	g.POST("/users/:id/delete", s.DeleteUser)
	g.GET("/ProjectManagement", s.ProjectManagementPage)
	g.POST("/projects/:id/edit", s.EditProject)
	g.POST("/projects/:id/delete", s.DeleteProject)
	g.GET("/pendingprojects", s.PendingProjectsPage)
	g.POST("/pendingprojects", s.CreatePendingProject)
	g.POST("/pendingprojects/:id/edit", s.EditPendingProject)
	g.POST("/pendingprojects/:id/delete", s.DeletePendingProject)
	g.POST("/pendingprojects/:id/promote", s.PromoteProject)
	g.GET("/activeprojects", s.ActiveProjectsPage)
	g.POST("/activeprojects", s.CreateActiveProject)
	g.POST("/activeprojects/:id/edit", s.EditActiveProject)
	g.POST("/activeprojects/:id/delete", s.DeleteActiveProject)
	g.GET("/charter", s.CharterPage)
	g.POST("/charter", s.CreateCharter)
	g.POST("/charter/edit", s.EditCharter)
	g.POST("/charter/:id/delete", s.DeleteCharter)
	g.GET("/closure", s.ClosurePage)
	g.POST("/closure", s.CreateProjectClosure)
	g.POST("/closure/edit", s.EditProjectClosure)
	g.POST("/closure/:id/delete", s.DeleteProjectClosure)
	g.GET("/activities", s.ActivitiesPage)
	g.GET("/activity_form", s.ActivityFormPage)
	g.POST("/activity_form", s.CreateActivityForm)
	g.POST("/activity_form/edit", s.EditActivityForm)
	g.POST("/activity_form/:id/delete", s.DeleteActivityForm)
	g.GET("/activity_closure", s.ActivityClosurePage)
	g.POST("/activity_closure", s.CreateActivityClosure)
	g.POST("/activity_closure/edit", s.EditActivityClosure)
	g.POST("/activity_closure/:id/delete", s.DeleteActivityClosure)
}
