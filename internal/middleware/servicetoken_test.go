package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/utils"
)

func runServiceAuth(t *testing.T, secret, header string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := ServiceAuth(secret)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestServiceAuthAcceptsSignedToken(t *testing.T) {
	tok, err := utils.NewServiceToken("topsecret", "web", time.Minute)
	if err != nil {
		t.Fatalf("NewServiceToken error: %v", err)
	}
	rec := runServiceAuth(t, "topsecret", "Bearer "+tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestServiceAuthRejectsMissingHeader(t *testing.T) {
	rec := runServiceAuth(t, "topsecret", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestServiceAuthRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewServiceToken("othersecret", "web", time.Minute)
	if err != nil {
		t.Fatalf("NewServiceToken error: %v", err)
	}
	rec := runServiceAuth(t, "topsecret", "Bearer "+tok)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong secret, got %d", rec.Code)
	}
}

func TestServiceAuthRejectsExpiredToken(t *testing.T) {
	tok, err := utils.NewServiceToken("topsecret", "web", -time.Minute)
	if err != nil {
		t.Fatalf("NewServiceToken error: %v", err)
	}
	rec := runServiceAuth(t, "topsecret", "Bearer "+tok)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}
