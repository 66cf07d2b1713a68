package mysql

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

const errDuplicateEntry = 1062

// classify wraps a driver error with the operation name and maps the cases
// callers act on to domain errors.
func classify(op string, err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
		return domain.ErrEmailTaken
	}
	if isConnError(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isConnError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
