package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"srent/internal/data/repository"
	"srent/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func serviceErrorStatus(t *testing.T, err error) int {
	t.Helper()
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), err, "test op")
	return rec.Code
}

func TestServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("booking 7: %w", repository.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("car 11: %w", usecase.ErrCarUnavailable), http.StatusConflict},
		{"overlap", usecase.ErrBookingOverlap, http.StatusConflict},
		{"not owner", fmt.Errorf("booking 7: %w", usecase.ErrNotOwner), http.StatusForbidden},
		{"validation", fmt.Errorf("%w: Amount: This field is required", usecase.ErrValidation), http.StatusBadRequest},
		{"date order", usecase.ErrInvalidDates, http.StatusBadRequest},
		{"login", usecase.ErrLoginFailed, http.StatusUnauthorized},
		{"store fault", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, serviceErrorStatus(t, tc.err))
		})
	}
}

// An arbitrary error whose text mentions "invalid" is still a server
// fault, not a client one.
func TestServiceErrorTextDoesNotLeakIntoMapping(t *testing.T) {
	err := errors.New(`invalid connection string: missing "="`)
	assert.Equal(t, http.StatusInternalServerError, serviceErrorStatus(t, err))
}
