package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
	"github.com/hostaltucan/reservas-api/internal/core/ports"
)

// adminRoleName is the perfil.nombre the create-admin command assigns.
const adminRoleName = "Administrador"

type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

// Create registers a user after checking the email is free.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: correo, clave, nombre and perfil_id are required", domain.ErrInvalidInput)
	}
	if !domain.ValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if !in.RoleID.Valid() {
		return nil, fmt.Errorf("%w: unknown perfil_id %d", domain.ErrInvalidInput, int(in.RoleID))
	}

	user, err := s.register(ctx, in.Name, in.Email, in.Password, in.RoleID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", user.ID).Stringer("role", user.RoleID).Msg("user created")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.UserSummary, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update. Fields that are absent or hold an empty
// value are left untouched.
func (s *UserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user id", domain.ErrInvalidInput)
	}

	changes, err := s.userChanges(in)
	if err != nil {
		return err
	}
	if changes.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user updated")
	return nil
}

// CreateAdmin seeds an administrator account.
func (s *UserService) CreateAdmin(ctx context.Context, in ports.CreateAdminInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrInvalidInput)
	}
	if !domain.ValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	role, err := s.repo.RoleIDByName(ctx, adminRoleName)
	if err != nil {
		return nil, err
	}

	user, err := s.register(ctx, in.Name, in.Email, in.Password, role)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("administrator created")
	return user, nil
}

func (s *UserService) register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Name: name, Email: email, PasswordHash: hash, RoleID: role}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// userChanges turns request fields into a change set. Empty strings and zero
// numbers are treated the same as absent fields.
func (s *UserService) userChanges(in ports.UpdateUserInput) (domain.UserChanges, error) {
	var c domain.UserChanges

	if in.Email != nil && *in.Email != "" {
		if !domain.ValidEmail(*in.Email) {
			return c, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
		}
		c.Email = in.Email
	}
	if in.Name != nil && *in.Name != "" {
		c.Name = in.Name
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := s.hash(*in.Password)
		if err != nil {
			return c, err
		}
		c.PasswordHash = &hash
	}
	if in.RoleID != nil && *in.RoleID != 0 {
		role := domain.Role(*in.RoleID)
		if !role.Valid() {
			return c, fmt.Errorf("%w: unknown perfil_id %d", domain.ErrInvalidInput, *in.RoleID)
		}
		c.RoleID = &role
	}
	return c, nil
}

func (s *UserService) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: clave must be at most 72 bytes", domain.ErrInvalidInput)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
