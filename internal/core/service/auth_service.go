package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
	"github.com/hostaltucan/reservas-api/internal/core/ports"
)

// AuthService implements login.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		s.logger.Warn().Msg("login rejected: empty credentials")
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn().Str("email", email).Msg("login rejected: unknown email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Int64("user_id", user.ID).Msg("login rejected: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	id := domain.Identity{UserID: user.ID, Email: user.Email, RoleID: user.RoleID}
	token, exp, err := s.tokens.Issue(id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Stringer("role", user.RoleID).Msg("login succeeded")
	return &ports.LoginResult{AccessToken: token, ExpiresAt: exp, Identity: id}, nil
}
