package mysql

import (
	"context"
	"database/sql"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var supervisor any
	if res.SupervisorID != nil {
		supervisor = *res.SupervisorID
	}
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO reserva (fecha, cliente_id, supervisor_id) VALUES (?, ?, ?)",
		res.Date.Format(domain.DateLayout), res.ClientID, supervisor)
	if err != nil {
		return classify("insert reservation", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return classify("insert reservation", err)
	}
	res.ID = id
	return nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]domain.ReservationView, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.fecha, c.nombre, s.nombre
		   FROM reserva r
		   JOIN cliente c ON r.cliente_id = c.id
		   LEFT JOIN supervisor s ON r.supervisor_id = s.id
		  ORDER BY r.id`)
	if err != nil {
		return nil, classify("list reservations", err)
	}
	defer rows.Close()

	out := make([]domain.ReservationView, 0)
	for rows.Next() {
		var (
			v          domain.ReservationView
			supervisor sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.Date, &v.ClientName, &supervisor); err != nil {
			return nil, classify("scan reservation", err)
		}
		if supervisor.Valid {
			name := supervisor.String
			v.SupervisorName = &name
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list reservations", err)
	}
	return out, nil
}

func (r *ReservationRepository) Update(ctx context.Context, id int64, changes domain.ReservationChanges) error {
	upd := newUpdate(tableReservation)
	if changes.Date != nil {
		upd.set(colDate, changes.Date.Format(domain.DateLayout))
	}
	if changes.ClientID != nil {
		upd.set(colClientID, *changes.ClientID)
	}
	if changes.SupervisorID != nil {
		upd.set(colSupervisorID, *changes.SupervisorID)
	}
	if upd.empty() {
		return domain.ErrInvalidInput
	}
	return execUpdate(ctx, r.db, "update reservation", upd, id)
}
