package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes for the constraint violations the API reports
// as client errors.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgNumericOutOfRange   = "22003"
)

// ConstraintViolation reports the constraint name when err is a postgres
// foreign key or unique violation.
func ConstraintViolation(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}
	switch pgErr.Code {
	case pgForeignKeyViolation, pgUniqueViolation:
		return pgErr.Code, pgErr.ConstraintName, true
	}
	return "", "", false
}

func IsForeignKeyViolation(err error) bool {
	code, _, ok := ConstraintViolation(err)
	return ok && code == pgForeignKeyViolation
}

func IsUniqueViolation(err error) bool {
	code, _, ok := ConstraintViolation(err)
	return ok && code == pgUniqueViolation
}

// IsOutOfRange reports a value that does not fit its column, such as a
// vote total pushed past INTEGER.
func IsOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgNumericOutOfRange
}
