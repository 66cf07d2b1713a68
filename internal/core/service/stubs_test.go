package service

import (
	"context"
	"time"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	nextID  int64
	updates map[int64]domain.UserChanges
	roles   map[string]domain.Role
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:   make(map[string]*domain.User),
		updates: make(map[int64]domain.UserChanges),
		roles:   map[string]domain.Role{"Administrador": domain.RoleAdministrator},
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Email]; exists {
		return domain.ErrEmailTaken
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Email] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.UserSummary, error) {
	out := make([]domain.UserSummary, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, domain.UserSummary{Name: u.Name, Email: u.Email, RoleName: u.RoleID.String()})
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, changes domain.UserChanges) error {
	for _, u := range r.users {
		if u.ID == id {
			r.updates[id] = changes
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubUserRepo) RoleIDByName(_ context.Context, name string) (domain.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return 0, domain.ErrRoleNotFound
	}
	return role, nil
}

type stubReservationRepo struct {
	created []domain.Reservation
	updates map[int64]domain.ReservationChanges
	known   map[int64]bool
}

func newStubReservationRepo(ids ...int64) *stubReservationRepo {
	r := &stubReservationRepo{updates: make(map[int64]domain.ReservationChanges), known: make(map[int64]bool)}
	for _, id := range ids {
		r.known[id] = true
	}
	return r
}

func (r *stubReservationRepo) Create(_ context.Context, res *domain.Reservation) error {
	res.ID = int64(len(r.created) + 1)
	r.created = append(r.created, *res)
	return nil
}

func (r *stubReservationRepo) List(_ context.Context) ([]domain.ReservationView, error) {
	return []domain.ReservationView{}, nil
}

func (r *stubReservationRepo) Update(_ context.Context, id int64, changes domain.ReservationChanges) error {
	if !r.known[id] {
		return domain.ErrNotFound
	}
	r.updates[id] = changes
	return nil
}

type stubIssuer struct {
	issued []domain.Identity
	err    error
}

func (s *stubIssuer) Issue(id domain.Identity) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	s.issued = append(s.issued, id)
	return "signed-token", time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC), nil
}
