package repositories

import (
	"errors"

	"github.com/lib/pq"
)

// Storage-level sentinels. Services translate these into their own domain
// errors so handlers never inspect driver errors directly.
var (
	ErrNotFound  = errors.New("row not found")
	ErrDuplicate = errors.New("unique constraint violated")
)

// isUniqueViolation reports whether err is a Postgres unique_violation,
// so duplicate detection stays race-free at the store instead of relying
// on a pre-check.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
