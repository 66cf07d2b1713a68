package mysql

import "strings"

type table string

type column string

const (
	tableUser        table = "usuario"
	tableReservation table = "reserva"
)

const (
	colID           column = "id"
	colName         column = "nombre"
	colEmail        column = "correo"
	colPassword     column = "clave"
	colRoleID       column = "perfil_id"
	colDate         column = "fecha"
	colClientID     column = "cliente_id"
	colSupervisorID column = "supervisor_id"
)

// updateStmt accumulates SET assignments for a single-row UPDATE. Identifiers
// only come from the constants above; values are always bound.
type updateStmt struct {
	table table
	cols  []column
	args  []any
}

func newUpdate(t table) *updateStmt {
	return &updateStmt{table: t}
}

func (u *updateStmt) set(c column, v any) *updateStmt {
	u.cols = append(u.cols, c)
	u.args = append(u.args, v)
	return u
}

func (u *updateStmt) empty() bool { return len(u.cols) == 0 }

// byID renders the statement restricted to one primary key.
func (u *updateStmt) byID(id int64) (string, []any) {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(string(u.table))
	b.WriteString(" SET ")
	for i, c := range u.cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(c))
		b.WriteString(" = ?")
	}
	b.WriteString(" WHERE ")
	b.WriteString(string(colID))
	b.WriteString(" = ?")

	args := make([]any, 0, len(u.args)+1)
	args = append(args, u.args...)
	args = append(args, id)
	return b.String(), args
}
