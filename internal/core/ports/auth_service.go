package ports

import (
	"context"
	"time"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

// LoginResult is returned by AuthService after a successful login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Identity    domain.Identity
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// TokenIssuer signs session tokens for an identity.
type TokenIssuer interface {
	Issue(id domain.Identity) (token string, expiresAt time.Time, err error)
}
