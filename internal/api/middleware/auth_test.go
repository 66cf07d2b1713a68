package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

type stubParser struct {
	parseFn func(raw string) (domain.Identity, error)
}

func (s stubParser) Parse(raw string) (domain.Identity, error) { return s.parseFn(raw) }

func runAuth(t *testing.T, header string, parser TokenParser) (*httptest.ResponseRecorder, bool, domain.Identity) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		called bool
		seen   domain.Identity
	)
	handler := Auth(parser)(func(c echo.Context) error {
		called = true
		seen = Identity(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called, seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	want := domain.Identity{UserID: 3, Email: "emp@hostal.com", RoleID: domain.RoleEmployee}
	parser := stubParser{parseFn: func(raw string) (domain.Identity, error) {
		if raw != "good-token" {
			t.Fatalf("unexpected raw token %q", raw)
		}
		return want, nil
	}}

	rec, called, seen := runAuth(t, "Bearer good-token", parser)
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen != want {
		t.Fatalf("identity not set: %+v", seen)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	parser := stubParser{parseFn: func(string) (domain.Identity, error) {
		return domain.Identity{}, errors.New("token is expired")
	}}

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer   ", "Bearer expired"} {
		rec, called, _ := runAuth(t, header, parser)
		if called {
			t.Fatalf("header %q: should not reach next", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestIdentity_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if !Identity(c).IsZero() {
		t.Fatalf("expected zero identity")
	}
}
