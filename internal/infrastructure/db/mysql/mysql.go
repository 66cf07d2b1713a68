package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

const (
	defaultTimeout = 10 * time.Second
	queryTimeout   = 5 * time.Second
)

// Config captures the settings required to reach the MySQL server.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Timeout  time.Duration
}

// DSN renders the driver connection string. Rows matched by an UPDATE are
// reported as affected even when no value changed, so a zero count always
// means the id does not exist.
func (c Config) DSN() string {
	return c.driverConfig().FormatDSN()
}

// MigrationDSN is DSN with multi-statement execution enabled, as required by
// the schema migrations.
func (c Config) MigrationDSN() string {
	dc := c.driverConfig()
	dc.MultiStatements = true
	return dc.FormatDSN()
}

func (c Config) driverConfig() *mysql.Config {
	dc := mysql.NewConfig()
	dc.User = c.User
	dc.Passwd = c.Password
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	dc.DBName = c.Name
	dc.ParseTime = true
	dc.Loc = time.UTC
	dc.ClientFoundRows = true
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc
}

// Connect opens the connection pool and verifies connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}
	return db, nil
}
