package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

func seedHashedUser(t *testing.T, repo *stubUserRepo, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &domain.User{Name: "Seed", Email: email, PasswordHash: string(hash), RoleID: role}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	user := seedHashedUser(t, repo, "sup@hostal.com", "s3cret", domain.RoleSupervisor)
	issuer := &stubIssuer{}
	svc := NewAuthService(repo, issuer, zerolog.Nop())

	res, err := svc.Login(context.Background(), "sup@hostal.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.AccessToken != "signed-token" {
		t.Fatalf("unexpected token: %q", res.AccessToken)
	}
	want := domain.Identity{UserID: user.ID, Email: "sup@hostal.com", RoleID: domain.RoleSupervisor}
	if res.Identity != want || len(issuer.issued) != 1 || issuer.issued[0] != want {
		t.Fatalf("unexpected identity: %+v (issued %+v)", res.Identity, issuer.issued)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := newStubUserRepo()
	seedHashedUser(t, repo, "emp@hostal.com", "right", domain.RoleEmployee)
	svc := NewAuthService(repo, &stubIssuer{}, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "emp@hostal.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "ghost@hostal.com", "right"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	repo := newStubUserRepo()
	seedHashedUser(t, repo, "emp@hostal.com", "right", domain.RoleEmployee)
	svc := NewAuthService(repo, &stubIssuer{}, zerolog.Nop())

	for _, creds := range [][2]string{{"", "right"}, {"emp@hostal.com", ""}, {"", ""}} {
		if _, err := svc.Login(context.Background(), creds[0], creds[1]); err != domain.ErrInvalidCredentials {
			t.Fatalf("%q/%q: expected ErrInvalidCredentials, got %v", creds[0], creds[1], err)
		}
	}
}

func TestAuthService_Login_StoreError(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = domain.ErrStoreUnavailable
	svc := NewAuthService(repo, &stubIssuer{}, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "a@hostal.com", "x"); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestAuthService_Login_IssuerError(t *testing.T) {
	repo := newStubUserRepo()
	seedHashedUser(t, repo, "emp@hostal.com", "right", domain.RoleEmployee)
	boom := errors.New("sign failed")
	svc := NewAuthService(repo, &stubIssuer{err: boom}, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "emp@hostal.com", "right"); !errors.Is(err, boom) {
		t.Fatalf("expected issuer error, got %v", err)
	}
}
