package mysql

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteSchema mirrors migrations/0001_init.up.sql in SQLite dialect.
const sqliteSchema = `
CREATE TABLE perfil (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre TEXT NOT NULL UNIQUE
);
INSERT INTO perfil (id, nombre) VALUES
	(1, 'Administrador'), (2, 'Supervisor'), (3, 'Empleado'), (4, 'Cliente');

CREATE TABLE usuario (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre    TEXT NOT NULL,
	correo    TEXT NOT NULL UNIQUE,
	clave     TEXT NOT NULL,
	perfil_id INTEGER NOT NULL REFERENCES perfil (id)
);

CREATE TABLE cliente (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre TEXT NOT NULL
);

CREATE TABLE supervisor (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre TEXT NOT NULL
);

CREATE TABLE reserva (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	fecha         DATE NOT NULL,
	cliente_id    INTEGER NOT NULL REFERENCES cliente (id),
	supervisor_id INTEGER REFERENCES supervisor (id)
);

INSERT INTO cliente (id, nombre) VALUES (1, 'Ana Torres'), (2, 'Luis Vega');
INSERT INTO supervisor (id, nombre) VALUES (1, 'Marta Ríos');
`

// openTestDB opens a private in-memory SQLite database with the schema
// applied. The database is closed when the test ends.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sql.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared&_foreign_keys=on")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(sqliteSchema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}
