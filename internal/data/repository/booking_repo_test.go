package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"srent/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testBooking() *entity.Booking {
	return &entity.Booking{
		StartDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		SecureDeposit: 200,
		Amount:        480,
		DriveOption:   "self-drive",
		Reading:       42000,
		DateOut:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		UserID:        3,
		CarID:         11,
	}
}

func TestBookingCreateCommitsAllStatements(t *testing.T) {
	tx := &fakeTx{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return fakeRow{scan: scanID(42)}
		},
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		},
	}
	repo := NewBookingRepository(&fakeDB{tx: tx}, zap.NewNop())

	booking := testBooking()
	err := repo.Create(context.Background(), booking)
	require.NoError(t, err)

	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)

	require.Len(t, tx.calls, 4)
	assert.Contains(t, tx.calls[0].sql, "INSERT INTO bookings")
	assert.Contains(t, tx.calls[1].sql, "INSERT INTO makes")
	assert.Contains(t, tx.calls[2].sql, "INSERT INTO reserves")
	assert.Contains(t, tx.calls[3].sql, "UPDATE cars")

	// Link rows bind the generated booking id.
	assert.Equal(t, []any{int64(3), int64(42)}, tx.calls[1].args)
	assert.Equal(t, []any{int64(42), int64(11)}, tx.calls[2].args)
	assert.Equal(t, []any{int64(11), entity.CarStatusReserved}, tx.calls[3].args)
}

func TestBookingCreateRollsBackOnLinkFailure(t *testing.T) {
	boom := errors.New("duplicate key")
	tx := &fakeTx{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return fakeRow{scan: scanID(42)}
		},
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			if strings.Contains(sql, "reserves") {
				return pgconn.CommandTag{}, boom
			}
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		},
	}
	repo := NewBookingRepository(&fakeDB{tx: tx}, zap.NewNop())

	err := repo.Create(context.Background(), testBooking())
	require.Error(t, err)

	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)

	// The car status flip must never run after the link failed.
	for _, c := range tx.calls {
		assert.NotContains(t, c.sql, "UPDATE cars")
	}
}

func TestBookingCreateRollsBackOnInsertFailure(t *testing.T) {
	tx := &fakeTx{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return fakeRow{scan: func(dest ...any) error {
				return errors.New("constraint violated")
			}}
		},
	}
	repo := NewBookingRepository(&fakeDB{tx: tx}, zap.NewNop())

	err := repo.Create(context.Background(), testBooking())
	require.Error(t, err)

	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
	assert.Len(t, tx.calls, 1)
}

func TestBookingCancelReleasesCar(t *testing.T) {
	tx := &fakeTx{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	repo := NewBookingRepository(&fakeDB{tx: tx}, zap.NewNop())

	err := repo.Cancel(context.Background(), 42)
	require.NoError(t, err)

	assert.True(t, tx.committed)
	require.Len(t, tx.calls, 2)
	assert.Contains(t, tx.calls[0].sql, "UPDATE bookings")
	assert.Equal(t, []any{int64(42), entity.BookingStatusCancelled}, tx.calls[0].args)
	assert.Contains(t, tx.calls[1].sql, "UPDATE cars")
	assert.Equal(t,
		[]any{int64(42), entity.CarStatusAvailable, entity.CarStatusReserved},
		tx.calls[1].args,
	)
}

// Cancelling an already cancelled booking reapplies the same terminal
// status and succeeds; the car release matches zero rows and is a no-op.
func TestBookingCancelIsIdempotent(t *testing.T) {
	tx := &fakeTx{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			if strings.Contains(sql, "UPDATE cars") {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			}
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	repo := NewBookingRepository(&fakeDB{tx: tx}, zap.NewNop())

	err := repo.Cancel(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, tx.committed)
}

func TestBookingCancelMissingBooking(t *testing.T) {
	tx := &fakeTx{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
	}
	repo := NewBookingRepository(&fakeDB{tx: tx}, zap.NewNop())

	err := repo.Cancel(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestBookingFinishReleasesCar(t *testing.T) {
	tx := &fakeTx{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	repo := NewBookingRepository(&fakeDB{tx: tx}, zap.NewNop())

	err := repo.Finish(context.Background(), 42)
	require.NoError(t, err)

	assert.True(t, tx.committed)
	require.Len(t, tx.calls, 2)
	assert.Equal(t, []any{int64(42), entity.BookingStatusFinished}, tx.calls[0].args)
}

func TestBookingUpdateMissing(t *testing.T) {
	db := &fakeDB{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
	}
	repo := NewBookingRepository(db, zap.NewNop())

	booking := testBooking()
	booking.ID = 7
	err := repo.Update(context.Background(), booking)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingFindByIDNoRows(t *testing.T) {
	db := &fakeDB{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return fakeRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	repo := NewBookingRepository(db, zap.NewNop())

	booking, err := repo.FindByID(context.Background(), 123)
	require.NoError(t, err)
	assert.Nil(t, booking)
}
