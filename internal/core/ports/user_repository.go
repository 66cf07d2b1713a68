package ports

import (
	"context"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

// UserRepository defines persistence operations for back-office users.
type UserRepository interface {
	// FindByEmail returns domain.ErrNotFound when no user owns the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user and fills in its generated ID.
	Create(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.UserSummary, error)
	// Update returns domain.ErrNotFound when no row matches id.
	Update(ctx context.Context, id int64, changes domain.UserChanges) error
	// RoleIDByName resolves a perfil row by its name.
	RoleIDByName(ctx context.Context, name string) (domain.Role, error)
}
