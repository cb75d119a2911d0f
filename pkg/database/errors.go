package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateKey marks a unique-constraint violation. Repositories wrap it
// around the driver error on insert/update; services translate it into the
// user-facing conflict for their entity. The constraint check in Postgres is
// atomic, so this is the sole arbiter of uniqueness races.
var ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

const uniqueViolationCode = "23505"

// IsDuplicateKey reports whether err is a unique-constraint violation,
// either already wrapped as ErrDuplicateKey or raw from the driver.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, ErrDuplicateKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
