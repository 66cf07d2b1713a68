package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var (
		u    domain.User
		role int
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, nombre, correo, clave, perfil_id FROM usuario WHERE correo = ? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, classify("find user", err)
	}
	u.RoleID = domain.Role(role)
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO usuario (correo, clave, nombre, perfil_id) VALUES (?, ?, ?, ?)",
		user.Email, user.PasswordHash, user.Name, int(user.RoleID))
	if err != nil {
		return classify("insert user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return classify("insert user", err)
	}
	user.ID = id
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.UserSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT u.nombre, u.correo, p.nombre
		   FROM usuario u
		   JOIN perfil p ON u.perfil_id = p.id
		  ORDER BY u.id`)
	if err != nil {
		return nil, classify("list users", err)
	}
	defer rows.Close()

	out := make([]domain.UserSummary, 0)
	for rows.Next() {
		var s domain.UserSummary
		if err := rows.Scan(&s.Name, &s.Email, &s.RoleName); err != nil {
			return nil, classify("scan user", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list users", err)
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, changes domain.UserChanges) error {
	upd := newUpdate(tableUser)
	if changes.Email != nil {
		upd.set(colEmail, *changes.Email)
	}
	if changes.Name != nil {
		upd.set(colName, *changes.Name)
	}
	if changes.PasswordHash != nil {
		upd.set(colPassword, *changes.PasswordHash)
	}
	if changes.RoleID != nil {
		upd.set(colRoleID, int(*changes.RoleID))
	}
	if upd.empty() {
		return domain.ErrInvalidInput
	}
	return execUpdate(ctx, r.db, "update user", upd, id)
}

func (r *UserRepository) RoleIDByName(ctx context.Context, name string) (domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id int
	err := r.db.QueryRowContext(ctx, "SELECT id FROM perfil WHERE nombre = ? LIMIT 1", name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrRoleNotFound
		}
		return 0, classify("find role", err)
	}
	return domain.Role(id), nil
}

// execUpdate runs a single-row update and reports domain.ErrNotFound when
// nothing matched.
func execUpdate(ctx context.Context, db *sql.DB, op string, upd *updateStmt, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args := upd.byID(id)
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return classify(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
