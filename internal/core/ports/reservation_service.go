package ports

import (
	"context"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

// CreateReservationInput carries the fields required to book a reservation.
// Date uses domain.DateLayout. A zero SupervisorID means no supervisor.
type CreateReservationInput struct {
	Date         string
	ClientID     int64
	SupervisorID int64
}

// UpdateReservationInput carries a partial update. A nil field was absent
// from the request.
type UpdateReservationInput struct {
	Date         *string
	ClientID     *int64
	SupervisorID *int64
}

// ReservationService manages reservations.
type ReservationService interface {
	Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.ReservationView, error)
	Update(ctx context.Context, id int64, in UpdateReservationInput) error
}
