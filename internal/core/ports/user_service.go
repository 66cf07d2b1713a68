package ports

import (
	"context"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

// CreateUserInput carries the fields required to register a user.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	RoleID   domain.Role
}

// UpdateUserInput carries a partial update. A nil field was absent from the
// request; a field holding its zero value was present but empty.
type UpdateUserInput struct {
	Email    *string
	Name     *string
	Password *string
	RoleID   *int
}

// CreateAdminInput carries the data collected by the create-admin command.
type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
}

// UserService manages back-office users.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.UserSummary, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) error
	CreateAdmin(ctx context.Context, in CreateAdminInput) (*domain.User, error)
}
