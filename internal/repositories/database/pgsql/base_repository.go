package pgsql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the Postgres error code for unique constraint breaches.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique constraint violation,
// e.g. a duplicate user email or charity token code.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// normalizeListParams applies the default page size and clamps the offset.
func normalizeListParams(limit int, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
