package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"projectportal/internal/domain"

	"github.com/lib/pq"
)

// translateError maps storage errors onto the domain error kinds.
// Unique violations become Conflict so a lost read-then-write race is
// detectable instead of silently duplicating rows.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505": // unique_violation
			return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Constraint)
		case pqErr.Code == "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Constraint)
		case pqErr.Code.Class() == "08": // connection exceptions
			return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
	}
	return err
}
