package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel kinds so callers can tell "row missing" from "constraint
// violated" from a plain store fault, instead of a bare boolean.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("constraint violation")
)

// wrapDBError tags foreign-key, unique and check violations as
// ErrConflict while keeping the driver error in the chain.
func wrapDBError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503", "23505", "23514":
			return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
