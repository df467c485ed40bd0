package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type capturedRequest struct {
	method string
	path   string
	body   map[string]any
}

// newProxyFixture stands up a fake API tier that records what it receives
// and returns a Server whose client points at it.
func newProxyFixture(t *testing.T) (*Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.body = nil
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &captured.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(api.Close)
	return &Server{API: NewClient(api.URL, "testsecret")}, captured
}

func postForm(t *testing.T, target string, form url.Values, params map[string]string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestEditUserProxiesPatchWithTypedFields(t *testing.T) {
	s, captured := newProxyFixture(t)

	form := url.Values{"role_id": {"2"}, "password": {"newpass123"}}
	rec := postForm(t, "/users/7/edit", form, map[string]string{"id": "7"}, s.EditUser)

	if captured.method != http.MethodPatch || captured.path != "/users/7/edit" {
		t.Fatalf("expected PATCH /users/7/edit, got %s %s", captured.method, captured.path)
	}
	if got, ok := captured.body["role_id"].(float64); !ok || got != 2 {
		t.Fatalf("role_id must be forwarded as a number, got %v", captured.body["role_id"])
	}
	if captured.body["password"] != "newpass123" {
		t.Fatalf("password must be forwarded verbatim, got %v", captured.body["password"])
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/users" {
		t.Fatalf("expected 303 back to /users, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestDeleteUserProxiesDelete(t *testing.T) {
	s, captured := newProxyFixture(t)

	rec := postForm(t, "/users/7/delete", url.Values{}, map[string]string{"id": "7"}, s.DeleteUser)

	if captured.method != http.MethodDelete || captured.path != "/users/7/delete" {
		t.Fatalf("expected DELETE /users/7/delete, got %s %s", captured.method, captured.path)
	}
	if rec.Header().Get("Location") != "/users" {
		t.Fatalf("expected redirect to /users, got %q", rec.Header().Get("Location"))
	}
}

func TestEditCharterTakesIDFromForm(t *testing.T) {
	s, captured := newProxyFixture(t)

	// The submission pages post edits to a single action with the id as a
	// form field instead of a path parameter.
	form := url.Values{"id": {"9"}, "description": {"updated scope"}}
	rec := postForm(t, "/charter/edit", form, nil, s.EditCharter)

	if captured.method != http.MethodPatch || captured.path != "/charters/9/edit" {
		t.Fatalf("expected PATCH /charters/9/edit, got %s %s", captured.method, captured.path)
	}
	if captured.body["description"] != "updated scope" {
		t.Fatalf("description must be forwarded, got %v", captured.body["description"])
	}
	if rec.Header().Get("Location") != "/charter" {
		t.Fatalf("expected redirect to /charter, got %q", rec.Header().Get("Location"))
	}
}

func TestEditCharterWithoutIDSkipsAPI(t *testing.T) {
	s, captured := newProxyFixture(t)

	rec := postForm(t, "/charter/edit", url.Values{"description": {"x"}}, nil, s.EditCharter)

	if captured.method != "" {
		t.Fatalf("no API call may happen without an id, saw %s %s", captured.method, captured.path)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/charter" {
		t.Fatalf("expected a plain redirect back, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestDeleteActivityFormProxiesDelete(t *testing.T) {
	s, captured := newProxyFixture(t)

	rec := postForm(t, "/activity_form/4/delete", url.Values{}, map[string]string{"id": "4"}, s.DeleteActivityForm)

	if captured.method != http.MethodDelete || captured.path != "/activity_form/4/delete" {
		t.Fatalf("expected DELETE /activity_form/4/delete, got %s %s", captured.method, captured.path)
	}
	if rec.Header().Get("Location") != "/activity_form" {
		t.Fatalf("expected redirect to /activity_form, got %q", rec.Header().Get("Location"))
	}
}
