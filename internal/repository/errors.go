package repository

import (
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/tx"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation     = "23505"
	PgErrForeignKeyViolation = "23503"
	PgErrCheckViolation      = "23514"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// ConstraintName returns the violated constraint of a pg error, or "".
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// Unexpected wraps a storage error. Lock waits, deadlocks and serialization
// failures additionally carry entities.ErrConcurrencyContention.
func Unexpected(op string, err error) error {
	if tx.IsContention(err) {
		return fmt.Errorf("%s: %w: %w", op, entities.ErrConcurrencyContention, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
