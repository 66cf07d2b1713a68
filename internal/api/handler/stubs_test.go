package handler

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
	"github.com/hostaltucan/reservas-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	createFn      func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	listFn        func(ctx context.Context) ([]domain.UserSummary, error)
	updateFn      func(ctx context.Context, id int64, in ports.UpdateUserInput) error
	createAdminFn func(ctx context.Context, in ports.CreateAdminInput) (*domain.User, error)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.UserSummary, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) error {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) CreateAdmin(ctx context.Context, in ports.CreateAdminInput) (*domain.User, error) {
	return s.createAdminFn(ctx, in)
}

type stubReservationService struct {
	createFn func(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error)
	listFn   func(ctx context.Context) ([]domain.ReservationView, error)
	updateFn func(ctx context.Context, id int64, in ports.UpdateReservationInput) error
}

func (s *stubReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	return s.createFn(ctx, in)
}

func (s *stubReservationService) List(ctx context.Context) ([]domain.ReservationView, error) {
	return s.listFn(ctx)
}

func (s *stubReservationService) Update(ctx context.Context, id int64, in ports.UpdateReservationInput) error {
	return s.updateFn(ctx, id, in)
}

// newJSONContext builds an echo context for a JSON request with the
// validator installed.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d (%v)", code, he.Code, he.Message)
	}
}

func mustNotCall(t *testing.T) {
	t.Helper()
	t.Fatalf("service should not be called")
}
