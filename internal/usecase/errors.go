package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStorageUnavailable marks a transient backend failure (e.g. the bounded
// request deadline fired before storage answered). Safe for the client to
// retry; read-only operations only.
var ErrStorageUnavailable = errors.New("storage temporarily unavailable")

// mapStorageErr converts deadline expiry into the retryable sentinel and
// passes every other error through untouched.
func mapStorageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStorageUnavailable
	}
	return err
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
