package mysql

import (
	"reflect"
	"strings"
	"testing"
)

func TestUpdateStmt_ByID(t *testing.T) {
	upd := newUpdate(tableUser).
		set(colEmail, "a@b.com").
		set(colRoleID, 2)

	query, args := upd.byID(7)

	if want := "UPDATE usuario SET correo = ?, perfil_id = ? WHERE id = ?"; query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if want := []any{"a@b.com", 2, int64(7)}; !reflect.DeepEqual(args, want) {
		t.Fatalf("args = %#v, want %#v", args, want)
	}
}

func TestUpdateStmt_Empty(t *testing.T) {
	upd := newUpdate(tableReservation)
	if !upd.empty() {
		t.Fatal("expected new statement to be empty")
	}
	upd.set(colDate, "2025-01-01")
	if upd.empty() {
		t.Fatal("expected statement with a column to be non-empty")
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3307, User: "app", Password: "s3cret", Name: "reservas_db"}

	dsn := cfg.DSN()
	for _, part := range []string{"app:s3cret@tcp(db:3307)/reservas_db", "parseTime=true", "clientFoundRows=true"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("dsn %q missing %q", dsn, part)
		}
	}
	if strings.Contains(dsn, "multiStatements") {
		t.Fatalf("runtime dsn must not enable multi statements: %q", dsn)
	}
	if !strings.Contains(cfg.MigrationDSN(), "multiStatements=true") {
		t.Fatalf("migration dsn %q missing multiStatements", cfg.MigrationDSN())
	}
}
