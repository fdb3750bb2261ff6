package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// postgresError returns the SQLSTATE of a PostgreSQL error, or "".
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// insertError maps a failed INSERT to a store error. Amount rejections by
// either backend become [ErrInvalidAmount].
func insertError(err error) error {
	switch postgresError(err) {
	case pgerrcode.NumericValueOutOfRange,
		pgerrcode.InvalidTextRepresentation,
		pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
