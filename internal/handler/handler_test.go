package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/repository"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &Handler{
		Roles:    repository.NewRoleRepo(db),
		Projects: repository.NewProjectRepo(db),
	}, mock
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestUpdateRoleEmptyBodyReturns400(t *testing.T) {
	h, mock := newTestHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodPatch, "/roles/3/edit", `{}`)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.UpdateRole(c); err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty update, got %d", rec.Code)
	}
	// No SQL may be issued when the update collapses to nothing.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestUpdateRoleUnknownKeyIsIgnored(t *testing.T) {
	h, mock := newTestHandler(t)
	e := echo.New()

	// Only role_name is whitelisted; a hostile key must not reach SQL.
	req, rec := jsonRequest(http.MethodPatch, "/roles/3/edit", `{"id": 99, "role_name": ""}`)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.UpdateRole(c); err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when nothing survives the whitelist, got %d", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestUpdateRoleInvalidID(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodPatch, "/roles/abc/edit", `{"role_name":"ops"}`)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.UpdateRole(c); err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-numeric id, got %d", rec.Code)
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	h, mock := newTestHandler(t)
	e := echo.New()

	mock.ExpectExec("DELETE FROM projects WHERE id = ?").
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req, rec := jsonRequest(http.MethodDelete, "/projects/42/delete", "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.DeleteProject(c); err != nil {
		t.Fatalf("DeleteProject returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when zero rows are deleted, got %d", rec.Code)
	}
}
