package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapDBErrorConstraintCodes(t *testing.T) {
	for _, code := range []string{"23503", "23505", "23514"} {
		err := wrapDBError("insert booking", &pgconn.PgError{Code: code})
		assert.ErrorIs(t, err, ErrConflict, "code %s", code)
	}
}

func TestWrapDBErrorPlainError(t *testing.T) {
	cause := errors.New("connection refused")
	err := wrapDBError("insert booking", cause)

	assert.NotErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert booking")
}

func TestWrapDBErrorKeepsPgError(t *testing.T) {
	var pgErr *pgconn.PgError
	err := wrapDBError("insert car", &pgconn.PgError{Code: "23505", ConstraintName: "cars_pkey"})

	assert.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "cars_pkey", pgErr.ConstraintName)
}
