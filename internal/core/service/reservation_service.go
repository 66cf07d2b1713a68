package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
	"github.com/hostaltucan/reservas-api/internal/core/ports"
)

type ReservationService struct {
	repo   ports.ReservationRepository
	logger zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, logger: logger}
}

// Create books a reservation. A zero supervisor id stores no supervisor.
func (s *ReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.ClientID <= 0 {
		return nil, fmt.Errorf("%w: cliente_id is required", domain.ErrInvalidInput)
	}

	r := &domain.Reservation{Date: date, ClientID: in.ClientID}
	if in.SupervisorID > 0 {
		sup := in.SupervisorID
		r.SupervisorID = &sup
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	s.logger.Info().
		Int64("reservation_id", r.ID).
		Str("fecha", date.Format(domain.DateLayout)).
		Int64("cliente_id", r.ClientID).
		Bool("with_supervisor", r.SupervisorID != nil).
		Msg("reservation created")
	return r, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.ReservationView, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update. Fields that are absent or hold an empty
// value are left untouched.
func (s *ReservationService) Update(ctx context.Context, id int64, in ports.UpdateReservationInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid reservation id", domain.ErrInvalidInput)
	}

	changes, err := reservationChanges(in)
	if err != nil {
		return err
	}
	if changes.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return err
	}
	s.logger.Info().Int64("reservation_id", id).Msg("reservation updated")
	return nil
}

func reservationChanges(in ports.UpdateReservationInput) (domain.ReservationChanges, error) {
	var c domain.ReservationChanges

	if in.Date != nil && *in.Date != "" {
		d, err := parseDate(*in.Date)
		if err != nil {
			return c, err
		}
		c.Date = &d
	}
	if in.ClientID != nil && *in.ClientID != 0 {
		if *in.ClientID < 0 {
			return c, fmt.Errorf("%w: invalid cliente_id", domain.ErrInvalidInput)
		}
		c.ClientID = in.ClientID
	}
	if in.SupervisorID != nil && *in.SupervisorID != 0 {
		if *in.SupervisorID < 0 {
			return c, fmt.Errorf("%w: invalid supervisor_id", domain.ErrInvalidInput)
		}
		c.SupervisorID = in.SupervisorID
	}
	return c, nil
}

// parseDate accepts exactly YYYY-MM-DD and rejects impossible calendar dates.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return d, nil
}
