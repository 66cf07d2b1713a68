package ports

import (
	"context"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	// Create inserts the reservation and fills in its generated ID.
	Create(ctx context.Context, r *domain.Reservation) error
	List(ctx context.Context) ([]domain.ReservationView, error)
	// Update returns domain.ErrNotFound when no row matches id.
	Update(ctx context.Context, id int64, changes domain.ReservationChanges) error
}
