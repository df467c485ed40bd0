package web

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// renderList fetches one API collection and renders it. Most pages are a
// table over a single list, so they all funnel through here; data carries
// per-page extras such as the action paths the template wires buttons to.
func (s *Server) renderList(c echo.Context, apiPath, tmpl string, data echo.Map) error {
	var rows []map[string]any
	if err := s.API.GetJSON(c.Request().Context(), apiPath, &rows); err != nil {
		c.Logger().Errorf("fetch %s: %v", apiPath, err)
		return echo.NewHTTPError(http.StatusBadGateway, "upstream unavailable")
	}
	data["User"] = currentPrincipal(c)
	data["Rows"] = rows
	return c.Render(http.StatusOK, tmpl, data)
}

// Dashboard handles GET /dashboard. Admin only; the guard enforces that.
func (s *Server) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	var summary, pending []map[string]any
	if err := s.API.GetJSON(ctx, "/project_summary/view", &summary); err != nil {
		c.Logger().Errorf("fetch project summary: %v", err)
		return echo.NewHTTPError(http.StatusBadGateway, "upstream unavailable")
	}
	if err := s.API.GetJSON(ctx, "/pendingprojects", &pending); err != nil {
		c.Logger().Errorf("fetch pending projects: %v", err)
		return echo.NewHTTPError(http.StatusBadGateway, "upstream unavailable")
	}
	return c.Render(http.StatusOK, "dashboard.html", echo.Map{
		"User":    currentPrincipal(c),
		"Summary": summary,
		"Pending": pending,
	})
}

// Index handles GET /index, the landing page for managers and members.
func (s *Server) Index(c echo.Context) error {
	return s.renderList(c, "/activeprojects", "index.html", echo.Map{"Title": "Active Projects"})
}

func (s *Server) UsersPage(c echo.Context) error {
	return s.renderList(c, "/users", "users.html", echo.Map{"Title": "Users"})
}

func (s *Server) ProjectManagementPage(c echo.Context) error {
	return s.renderList(c, "/projectmanagement/view", "table.html", echo.Map{
		"Title":      "Project Management",
		"DeleteBase": "/projects",
		"RenameBase": "/projects",
	})
}

func (s *Server) PendingProjectsPage(c echo.Context) error {
	return s.renderList(c, "/pendingprojects", "pending.html", echo.Map{"Title": "Pending Projects"})
}

func (s *Server) ActiveProjectsPage(c echo.Context) error {
	return s.renderList(c, "/activeprojects", "table.html", echo.Map{
		"Title":      "Active Projects",
		"DeleteBase": "/activeprojects",
		"RenameBase": "/activeprojects",
	})
}

func (s *Server) CharterPage(c echo.Context) error {
	return s.renderList(c, "/charters", "table.html", echo.Map{
		"Title":      "Project Charters",
		"DeleteBase": "/charter",
		"EditPath":   "/charter/edit",
	})
}

func (s *Server) ClosurePage(c echo.Context) error {
	return s.renderList(c, "/closure", "table.html", echo.Map{
		"Title":      "Project Closures",
		"DeleteBase": "/closure",
		"EditPath":   "/closure/edit",
	})
}

func (s *Server) ActivityFormPage(c echo.Context) error {
	return s.renderList(c, "/activity_form", "table.html", echo.Map{
		"Title":      "Activity Forms",
		"DeleteBase": "/activity_form",
		"EditPath":   "/activity_form/edit",
	})
}

func (s *Server) ActivityClosurePage(c echo.Context) error {
	return s.renderList(c, "/activity_closure", "table.html", echo.Map{
		"Title":      "Activity Closures",
		"DeleteBase": "/activity_closure",
		"EditPath":   "/activity_closure/edit",
	})
}

// ActivitiesPage handles GET /activities, showing forms and closures side
// by side.
func (s *Server) ActivitiesPage(c echo.Context) error {
	ctx := c.Request().Context()
	var forms, closures []map[string]any
	if err := s.API.GetJSON(ctx, "/activity_form", &forms); err != nil {
		c.Logger().Errorf("fetch activity forms: %v", err)
		return echo.NewHTTPError(http.StatusBadGateway, "upstream unavailable")
	}
	if err := s.API.GetJSON(ctx, "/activity_closure", &closures); err != nil {
		c.Logger().Errorf("fetch activity closures: %v", err)
		return echo.NewHTTPError(http.StatusBadGateway, "upstream unavailable")
	}
	return c.Render(http.StatusOK, "activities.html", echo.Map{
		"User":     currentPrincipal(c),
		"Forms":    forms,
		"Closures": closures,
	})
}

// formPayload turns submitted form fields into an API payload. Only the
// named fields are forwarded, empty values are dropped, and fields listed
// in numeric are parsed so they bind as numbers on the API side.
func formPayload(c echo.Context, fields []string, numeric map[string]bool) map[string]any {
	payload := map[string]any{}
	for _, f := range fields {
		v := c.FormValue(f)
		if v == "" {
			continue
		}
		if numeric[f] {
			if n, err := strconv.ParseUint(v, 10, 64); err == nil {
				payload[f] = n
			}
			continue
		}
		payload[f] = v
	}
	return payload
}

// proxySend forwards one request to the API and redirects back to the page
// it came from. API-side validation failures land back on the page; the
// page re-renders from the API so the outcome is always visible.
func (s *Server) proxySend(c echo.Context, method, apiPath, backTo string, payload any) error {
	status, body, err := s.API.Send(c.Request().Context(), method, apiPath, payload)
	if err != nil {
		c.Logger().Errorf("proxy %s %s: %v", method, apiPath, err)
		return echo.NewHTTPError(http.StatusBadGateway, "upstream unavailable")
	}
	if status >= http.StatusBadRequest {
		c.Logger().Warnf("proxy %s %s: api returned %d: %s", method, apiPath, status, body)
	}
	return c.Redirect(http.StatusSeeOther, backTo)
}

func (s *Server) proxyCreate(c echo.Context, apiPath, backTo string, fields []string, numeric map[string]bool) error {
	return s.proxySend(c, http.MethodPost, apiPath, backTo, formPayload(c, fields, numeric))
}

// proxyEdit forwards a partial edit. The row id comes from the route when
// present, otherwise from the form body; the submission pages post their
// edits to a single /E/edit action with the id as a field.
func (s *Server) proxyEdit(c echo.Context, apiResource, backTo string, fields []string, numeric map[string]bool) error {
	id := c.Param("id")
	if id == "" {
		id = c.FormValue("id")
	}
	if id == "" {
		return c.Redirect(http.StatusSeeOther, backTo)
	}
	return s.proxySend(c, http.MethodPatch, apiResource+"/"+id+"/edit", backTo, formPayload(c, fields, numeric))
}

func (s *Server) proxyDelete(c echo.Context, apiResource, backTo string) error {
	return s.proxySend(c, http.MethodDelete, apiResource+"/"+c.Param("id")+"/delete", backTo, nil)
}

var submissionFields = []string{
	"project_id", "start_date", "end_date", "description", "kpis", "risks",
	"mitigation_strategies", "target_participants", "submitter_name",
	"project_feedback", "lessons_learned",
	"total_male_participants", "total_female_participants",
}

var submissionNumeric = map[string]bool{
	"project_id":                true,
	"total_male_participants":   true,
	"total_female_participants": true,
}

func (s *Server) CreateUser(c echo.Context) error {
	return s.proxyCreate(c, "/users/add", "/users",
		[]string{"username", "password", "permissions_id", "role_id"},
		map[string]bool{"permissions_id": true, "role_id": true})
}

func (s *Server) CreatePendingProject(c echo.Context) error {
	return s.proxyCreate(c, "/pendingprojects/add", "/pendingprojects",
		[]string{"project_name", "submitter_name"}, nil)
}

func (s *Server) CreateActiveProject(c echo.Context) error {
	return s.proxyCreate(c, "/activeprojects/add", "/activeprojects",
		[]string{"project_name", "submitter_name"}, nil)
}

func (s *Server) CreateCharter(c echo.Context) error {
	return s.proxyCreate(c, "/charters/add", "/charter", submissionFields, submissionNumeric)
}

func (s *Server) CreateActivityForm(c echo.Context) error {
	return s.proxyCreate(c, "/activity_form/add", "/activity_form", submissionFields, submissionNumeric)
}

func (s *Server) CreateActivityClosure(c echo.Context) error {
	return s.proxyCreate(c, "/activity_closure/add", "/activity_closure", submissionFields, submissionNumeric)
}

func (s *Server) CreateProjectClosure(c echo.Context) error {
	return s.proxyCreate(c, "/closure/add", "/closure", submissionFields, submissionNumeric)
}

var userEditFields = []string{"username", "password", "permissions_id", "role_id"}

var userEditNumeric = map[string]bool{"permissions_id": true, "role_id": true}

func (s *Server) EditUser(c echo.Context) error {
	return s.proxyEdit(c, "/users", "/users", userEditFields, userEditNumeric)
}

func (s *Server) DeleteUser(c echo.Context) error {
	return s.proxyDelete(c, "/users", "/users")
}

func (s *Server) EditProject(c echo.Context) error {
	return s.proxyEdit(c, "/projects", "/ProjectManagement", []string{"project_name", "status"}, nil)
}

func (s *Server) DeleteProject(c echo.Context) error {
	return s.proxyDelete(c, "/projects", "/ProjectManagement")
}

func (s *Server) EditPendingProject(c echo.Context) error {
	return s.proxyEdit(c, "/pendingprojects", "/pendingprojects", []string{"project_name"}, nil)
}

func (s *Server) DeletePendingProject(c echo.Context) error {
	return s.proxyDelete(c, "/pendingprojects", "/pendingprojects")
}

func (s *Server) EditActiveProject(c echo.Context) error {
	return s.proxyEdit(c, "/activeprojects", "/activeprojects", []string{"project_name"}, nil)
}

func (s *Server) DeleteActiveProject(c echo.Context) error {
	return s.proxyDelete(c, "/activeprojects", "/activeprojects")
}

func (s *Server) EditCharter(c echo.Context) error {
	return s.proxyEdit(c, "/charters", "/charter", submissionFields, submissionNumeric)
}

func (s *Server) DeleteCharter(c echo.Context) error {
	return s.proxyDelete(c, "/charters", "/charter")
}

func (s *Server) EditProjectClosure(c echo.Context) error {
	return s.proxyEdit(c, "/closure", "/closure", submissionFields, submissionNumeric)
}

func (s *Server) DeleteProjectClosure(c echo.Context) error {
	return s.proxyDelete(c, "/closure", "/closure")
}

func (s *Server) EditActivityForm(c echo.Context) error {
	return s.proxyEdit(c, "/activity_form", "/activity_form", submissionFields, submissionNumeric)
}

func (s *Server) DeleteActivityForm(c echo.Context) error {
	return s.proxyDelete(c, "/activity_form", "/activity_form")
}

func (s *Server) EditActivityClosure(c echo.Context) error {
	return s.proxyEdit(c, "/activity_closure", "/activity_closure", submissionFields, submissionNumeric)
}

func (s *Server) DeleteActivityClosure(c echo.Context) error {
	return s.proxyDelete(c, "/activity_closure", "/activity_closure")
}

// PromoteProject handles POST /pendingprojects/:id/promote from the
// dashboard and proxies it to the API's transactional promote.
func (s *Server) PromoteProject(c echo.Context) error {
	return s.proxySend(c, http.MethodPost, "/pendingprojects/"+c.Param("id")+"/promote", "/pendingprojects", nil)
}
