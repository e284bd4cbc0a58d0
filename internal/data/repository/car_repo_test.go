package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"srent/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCarCreateLinksSpecification(t *testing.T) {
	tx := &fakeTx{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return fakeRow{scan: scanID(5)}
		},
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		},
	}
	repo := NewCarRepository(&fakeDB{tx: tx}, zap.NewNop())

	car := &entity.Car{
		Model:     "Swift Dzire",
		DailyRent: 120,
		Deposit:   400,
		Mileage:   30000,
		Status:    entity.CarStatusAvailable,
	}
	err := repo.Create(context.Background(), car, 9)
	require.NoError(t, err)

	assert.Equal(t, int64(5), car.ID)
	assert.True(t, tx.committed)

	require.Len(t, tx.calls, 2)
	assert.Contains(t, tx.calls[0].sql, "INSERT INTO cars")
	assert.Contains(t, tx.calls[1].sql, "INSERT INTO has")
	assert.Equal(t, []any{int64(5), int64(9)}, tx.calls[1].args)
}

func TestCarDeleteCascadeOrder(t *testing.T) {
	tx := &fakeTx{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}
	repo := NewCarRepository(&fakeDB{tx: tx}, zap.NewNop())

	err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)

	assert.True(t, tx.committed)
	require.Len(t, tx.calls, 4)
	assert.Contains(t, tx.calls[0].sql, "DELETE FROM has")
	assert.Contains(t, tx.calls[1].sql, "DELETE FROM reserves")
	assert.Contains(t, tx.calls[2].sql, "DELETE FROM manages")
	assert.Contains(t, tx.calls[3].sql, "DELETE FROM cars")
}

func TestCarDeleteRollsBackOnLinkFailure(t *testing.T) {
	boom := errors.New("lock timeout")
	tx := &fakeTx{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			if strings.Contains(sql, "reserves") {
				return pgconn.CommandTag{}, boom
			}
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}
	repo := NewCarRepository(&fakeDB{tx: tx}, zap.NewNop())

	err := repo.Delete(context.Background(), 5)
	require.Error(t, err)

	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
	for _, c := range tx.calls {
		assert.NotContains(t, c.sql, "DELETE FROM cars")
	}
}

func TestCarDeleteMissingCar(t *testing.T) {
	tx := &fakeTx{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			if strings.Contains(sql, "DELETE FROM cars") {
				return pgconn.NewCommandTag("DELETE 0"), nil
			}
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}
	repo := NewCarRepository(&fakeDB{tx: tx}, zap.NewNop())

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

// The composed query must carry the eight comparisons in declared
// order, with each $n pointing at args[n-1].
func TestCarFilterComposesCriteria(t *testing.T) {
	db := &fakeDB{
		queryFn: func(sql string, args []any) (pgx.Rows, error) {
			return fakeRows{}, nil
		},
	}
	repo := NewCarRepository(db, zap.NewNop())

	minRent, maxRent := 50.0, 300.0
	minMileage, maxMileage := 1000, 90000
	fuel, transmission := "Diesel", "Automatic"
	minSeats, maxSeats := 4, 7

	_, err := repo.Filter(context.Background(), FleetCriteria{
		MinRent:          &minRent,
		MaxRent:          &maxRent,
		MinMileage:       &minMileage,
		MaxMileage:       &maxMileage,
		FuelType:         &fuel,
		TransmissionType: &transmission,
		MinSeats:         &minSeats,
		MaxSeats:         &maxSeats,
	})
	require.NoError(t, err)

	require.Len(t, db.queries, 1)
	assert.True(t, strings.HasSuffix(db.queries[0].sql,
		" WHERE 1=1"+
			" AND c.daily_rent >= $1 AND c.daily_rent <= $2"+
			" AND c.mileage >= $3 AND c.mileage <= $4"+
			" AND vs.fuel_type = $5 AND vs.transmission_type = $6"+
			" AND vs.seating_capacity >= $7 AND vs.seating_capacity <= $8"+
			" ORDER BY c.car_id"),
		"got: %s", db.queries[0].sql)
	assert.Equal(t,
		[]any{50.0, 300.0, 1000, 90000, "Diesel", "Automatic", 4, 7},
		db.queries[0].args,
	)
}

func TestCarFilterEmptyCriteria(t *testing.T) {
	db := &fakeDB{
		queryFn: func(sql string, args []any) (pgx.Rows, error) {
			return fakeRows{}, nil
		},
	}
	repo := NewCarRepository(db, zap.NewNop())

	_, err := repo.Filter(context.Background(), FleetCriteria{})
	require.NoError(t, err)

	require.Len(t, db.queries, 1)
	assert.True(t, strings.HasSuffix(db.queries[0].sql, " WHERE 1=1 ORDER BY c.car_id"),
		"got: %s", db.queries[0].sql)
	assert.Empty(t, db.queries[0].args)
}

func TestCarFilterEqualRentBounds(t *testing.T) {
	db := &fakeDB{
		queryFn: func(sql string, args []any) (pgx.Rows, error) {
			return fakeRows{}, nil
		},
	}
	repo := NewCarRepository(db, zap.NewNop())

	rent := 250.0
	_, err := repo.Filter(context.Background(), FleetCriteria{MinRent: &rent, MaxRent: &rent})
	require.NoError(t, err)

	require.Len(t, db.queries, 1)
	assert.True(t, strings.HasSuffix(db.queries[0].sql,
		" WHERE 1=1 AND c.daily_rent >= $1 AND c.daily_rent <= $2 ORDER BY c.car_id"),
		"got: %s", db.queries[0].sql)
	assert.Equal(t, []any{250.0, 250.0}, db.queries[0].args)
}

func TestCarUpdateStatusMissing(t *testing.T) {
	db := &fakeDB{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
	}
	repo := NewCarRepository(db, zap.NewNop())

	err := repo.UpdateStatus(context.Background(), 404, entity.CarStatusService)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCarIsAvailable(t *testing.T) {
	db := &fakeDB{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return fakeRow{scan: func(dest ...any) error {
				*(dest[0].(*entity.CarStatus)) = entity.CarStatusReserved
				return nil
			}}
		},
	}
	repo := NewCarRepository(db, zap.NewNop())

	available, err := repo.IsAvailable(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestCarIsAvailableMissing(t *testing.T) {
	db := &fakeDB{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return fakeRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	repo := NewCarRepository(db, zap.NewNop())

	_, err := repo.IsAvailable(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
