package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"srent/internal/data/entity"
	"srent/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create writes the booking row plus both association links and
	// flips the car to reserved, all in one transaction.
	Create(ctx context.Context, booking *entity.Booking) error

	// Cancel and Finish move the booking to its terminal status and
	// release the reserved car in the same transaction.
	Cancel(ctx context.Context, bookingID int64) error
	Finish(ctx context.Context, bookingID int64) error

	// Update overwrites the mutable fields only; status and the two
	// association links are never touched here.
	Update(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindByUser(ctx context.Context, userID int64) ([]*entity.BookingSummary, error)
	FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error)
	FindActive(ctx context.Context) ([]*entity.Booking, error)
	HasOverlap(ctx context.Context, carID int64, startDate, endDate time.Time) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin create booking: %w", err)
	}
	defer tx.Rollback(ctx)

	// Status is forced to confirmed at creation; the caller-supplied
	// value is ignored on purpose.
	insertBooking := `
		INSERT INTO bookings (start_date, end_date, booking_status, secure_deposit, amount, drive_option, reading, date_out)
		VALUES ($1, $2, 'confirmed', $3, $4, $5, $6, $7)
		RETURNING booking_id
	`

	err = tx.QueryRow(ctx, insertBooking,
		booking.StartDate,
		booking.EndDate,
		booking.SecureDeposit,
		booking.Amount,
		booking.DriveOption,
		booking.Reading,
		booking.DateOut,
	).Scan(&booking.ID)

	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.Int64("user_id", booking.UserID),
			zap.Int64("car_id", booking.CarID),
		)
		return wrapDBError("insert booking", err)
	}
	booking.Status = entity.BookingStatusConfirmed

	if _, err := tx.Exec(ctx,
		`INSERT INTO makes (user_id, booking_id) VALUES ($1, $2)`,
		booking.UserID, booking.ID,
	); err != nil {
		r.log.Error("Failed to insert renter link",
			zap.Error(err),
			zap.Int64("booking_id", booking.ID),
			zap.Int64("user_id", booking.UserID),
		)
		return wrapDBError("insert renter link", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO reserves (booking_id, car_id) VALUES ($1, $2)`,
		booking.ID, booking.CarID,
	); err != nil {
		r.log.Error("Failed to insert car link",
			zap.Error(err),
			zap.Int64("booking_id", booking.ID),
			zap.Int64("car_id", booking.CarID),
		)
		return wrapDBError("insert car link", err)
	}

	// A confirmed booking and an unavailable car are the same fact;
	// flipping the status inside the transaction keeps them in step.
	if _, err := tx.Exec(ctx,
		`UPDATE cars SET vehicle_status = $2 WHERE car_id = $1`,
		booking.CarID, entity.CarStatusReserved,
	); err != nil {
		r.log.Error("Failed to reserve car",
			zap.Error(err),
			zap.Int64("car_id", booking.CarID),
		)
		return wrapDBError("reserve car", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking", zap.Error(err), zap.Int64("booking_id", booking.ID))
		return fmt.Errorf("commit create booking: %w", err)
	}

	r.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("user_id", booking.UserID),
		zap.Int64("car_id", booking.CarID),
	)
	return nil
}

func (r *bookingRepository) Cancel(ctx context.Context, bookingID int64) error {
	return r.close(ctx, bookingID, entity.BookingStatusCancelled)
}

func (r *bookingRepository) Finish(ctx context.Context, bookingID int64) error {
	return r.close(ctx, bookingID, entity.BookingStatusFinished)
}

// close moves a booking to a terminal status and releases its car,
// both inside one transaction. Reapplying the same terminal status is
// a no-op at the storage layer and reports success.
func (r *bookingRepository) close(ctx context.Context, bookingID int64, status entity.BookingStatus) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin close transaction", zap.Error(err))
		return fmt.Errorf("begin close booking: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET booking_status = $2 WHERE booking_id = $1`,
		bookingID, status,
	)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.String("status", string(status)),
		)
		return wrapDBError("update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE cars SET vehicle_status = $2
		WHERE car_id IN (SELECT car_id FROM reserves WHERE booking_id = $1)
		  AND vehicle_status = $3`,
		bookingID, entity.CarStatusAvailable, entity.CarStatusReserved,
	); err != nil {
		r.log.Error("Failed to release car",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return wrapDBError("release car", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit close", zap.Error(err), zap.Int64("booking_id", bookingID))
		return fmt.Errorf("commit close booking: %w", err)
	}

	r.log.Info("Booking closed",
		zap.Int64("booking_id", bookingID),
		zap.String("status", string(status)),
	)
	return nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET start_date = $2, end_date = $3, amount = $4, drive_option = $5, reading = $6
		WHERE booking_id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.StartDate,
		booking.EndDate,
		booking.Amount,
		booking.DriveOption,
		booking.Reading,
	)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.Int64("booking_id", booking.ID),
		)
		return wrapDBError(fmt.Sprintf("update booking %d", booking.ID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %d: %w", booking.ID, ErrNotFound)
	}

	return nil
}

const bookingColumns = `
	b.booking_id, b.start_date, b.end_date, b.booking_status, b.secure_deposit,
	b.amount, b.drive_option, b.reading, b.date_out, m.user_id, r.car_id
`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Status,
		&booking.SecureDeposit,
		&booking.Amount,
		&booking.DriveOption,
		&booking.Reading,
		&booking.DateOut,
		&booking.UserID,
		&booking.CarID,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN makes m ON b.booking_id = m.booking_id
		JOIN reserves r ON b.booking_id = r.booking_id
		WHERE b.booking_id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.BookingSummary, error) {
	query := `
		SELECT b.booking_id, b.start_date, b.end_date, b.booking_status, b.secure_deposit,
		       b.amount, b.drive_option, b.reading, b.date_out, m.user_id, r.car_id, c.model
		FROM bookings b
		JOIN makes m ON b.booking_id = m.booking_id
		JOIN reserves r ON b.booking_id = r.booking_id
		JOIN cars c ON r.car_id = c.car_id
		WHERE m.user_id = $1
		ORDER BY b.start_date DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find bookings by user %d: %w", userID, err)
	}
	defer rows.Close()

	var bookings []*entity.BookingSummary
	for rows.Next() {
		var summary entity.BookingSummary
		err := rows.Scan(
			&summary.ID,
			&summary.StartDate,
			&summary.EndDate,
			&summary.Status,
			&summary.SecureDeposit,
			&summary.Amount,
			&summary.DriveOption,
			&summary.Reading,
			&summary.DateOut,
			&summary.UserID,
			&summary.CarID,
			&summary.CarModel,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &summary)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN makes m ON b.booking_id = m.booking_id
		JOIN reserves r ON b.booking_id = r.booking_id
		WHERE b.booking_status = $1
		ORDER BY b.start_date
	`
	return r.queryBookings(ctx, query, status)
}

func (r *bookingRepository) FindActive(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN makes m ON b.booking_id = m.booking_id
		JOIN reserves r ON b.booking_id = r.booking_id
		WHERE b.booking_status = 'confirmed' AND b.end_date >= CURRENT_DATE
		ORDER BY b.start_date
	`
	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) HasOverlap(ctx context.Context, carID int64, startDate, endDate time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings b
			JOIN reserves r ON b.booking_id = r.booking_id
			WHERE r.car_id = $1
			  AND b.booking_status = 'confirmed'
			  AND b.start_date <= $3
			  AND b.end_date >= $2
		)
	`

	var overlap bool
	if err := r.db.QueryRow(ctx, query, carID, startDate, endDate).Scan(&overlap); err != nil {
		r.log.Error("Failed to check booking overlap",
			zap.Error(err),
			zap.Int64("car_id", carID),
		)
		return false, fmt.Errorf("check booking overlap for car %d: %w", carID, err)
	}

	return overlap, nil
}
