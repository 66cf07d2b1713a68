package domain

import "time"

// DateLayout is the only accepted wire format for reservation dates.
const DateLayout = "2006-01-02"

// Reservation is a booking for a client on a given day, optionally
// overseen by a supervisor.
type Reservation struct {
	ID           int64
	Date         time.Time
	ClientID     int64
	SupervisorID *int64
}

// ReservationView is the listing projection with client and supervisor names
// resolved.
type ReservationView struct {
	ID             int64
	Date           time.Time
	ClientName     string
	SupervisorName *string
}

// ReservationChanges is the set of columns a partial update writes. A nil
// field is left untouched.
type ReservationChanges struct {
	Date         *time.Time
	ClientID     *int64
	SupervisorID *int64
}

// IsEmpty reports whether applying the changes would write nothing.
func (c ReservationChanges) IsEmpty() bool {
	return c.Date == nil && c.ClientID == nil && c.SupervisorID == nil
}
