package repository

import (
	"context"
	"errors"
	"fmt"

	"srent/internal/data/entity"
	"srent/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FleetCriteria is the optional-criteria set for fleet search. A nil
// field means the criterion is absent. Field order matches the order
// the conditions are appended to the predicate.
type FleetCriteria struct {
	MinRent          *float64
	MaxRent          *float64
	MinMileage       *int
	MaxMileage       *int
	FuelType         *string
	TransmissionType *string
	MinSeats         *int
	MaxSeats         *int
}

// CarRentalCount pairs a car with how often it was reserved.
type CarRentalCount struct {
	CarID   int64
	Model   string
	Rentals int64
}

type CarRepository interface {
	// Create inserts the car then its specification link in one
	// transaction, rolling back the car insert if the link fails.
	Create(ctx context.Context, car *entity.Car, specificationID int64) error
	Update(ctx context.Context, id int64, model string, dailyRent float64, status entity.CarStatus) error
	UpdateStatus(ctx context.Context, id int64, status entity.CarStatus) error

	// Delete removes the specification link, reservation links and
	// admin-management links before the car row itself, all in one
	// transaction.
	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*entity.CarDetail, error)
	FindAll(ctx context.Context) ([]*entity.Car, error)
	FindByStatus(ctx context.Context, status entity.CarStatus) ([]*entity.Car, error)
	FindUnavailable(ctx context.Context) ([]*entity.Car, error)
	FindAllDetailed(ctx context.Context) ([]*entity.CarDetail, error)
	FindAvailableDetailed(ctx context.Context) ([]*entity.CarDetail, error)
	Filter(ctx context.Context, criteria FleetCriteria) ([]*entity.CarDetail, error)
	IsAvailable(ctx context.Context, id int64) (bool, error)

	AssignSpecification(ctx context.Context, carID, specificationID int64) error
	RemoveSpecification(ctx context.Context, carID, specificationID int64) error
	SpecificationID(ctx context.Context, carID int64) (int64, error)

	AssignManager(ctx context.Context, adminID, carID int64) error
	ManagedBy(ctx context.Context, adminID int64) ([]*entity.Car, error)
	History(ctx context.Context, carID int64) ([]*entity.Booking, error)
	TopRented(ctx context.Context, limit int) ([]*CarRentalCount, error)
}

type carRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCarRepository(db database.PgxIface, log *zap.Logger) CarRepository {
	return &carRepository{
		db:  db,
		log: log.With(zap.String("repository", "car")),
	}
}

func (r *carRepository) Create(ctx context.Context, car *entity.Car, specificationID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin add car transaction", zap.Error(err))
		return fmt.Errorf("begin add car: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO cars (model, daily_rent, deposit, mileage, vehicle_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING car_id`,
		car.Model, car.DailyRent, car.Deposit, car.Mileage, car.Status,
	).Scan(&car.ID)
	if err != nil {
		r.log.Error("Failed to insert car", zap.Error(err), zap.String("model", car.Model))
		return wrapDBError("insert car", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO has (car_id, specification_id) VALUES ($1, $2)`,
		car.ID, specificationID,
	); err != nil {
		r.log.Error("Failed to link specification",
			zap.Error(err),
			zap.Int64("car_id", car.ID),
			zap.Int64("specification_id", specificationID),
		)
		return wrapDBError("link specification", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit add car", zap.Error(err))
		return fmt.Errorf("commit add car: %w", err)
	}

	r.log.Info("Car added", zap.Int64("car_id", car.ID), zap.String("model", car.Model))
	return nil
}

func (r *carRepository) Update(ctx context.Context, id int64, model string, dailyRent float64, status entity.CarStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cars SET model = $2, daily_rent = $3, vehicle_status = $4 WHERE car_id = $1`,
		id, model, dailyRent, status,
	)
	if err != nil {
		r.log.Error("Failed to update car", zap.Error(err), zap.Int64("car_id", id))
		return wrapDBError(fmt.Sprintf("update car %d", id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("car %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *carRepository) UpdateStatus(ctx context.Context, id int64, status entity.CarStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cars SET vehicle_status = $2 WHERE car_id = $1`,
		id, status,
	)
	if err != nil {
		r.log.Error("Failed to update car status",
			zap.Error(err),
			zap.Int64("car_id", id),
			zap.String("status", string(status)),
		)
		return wrapDBError(fmt.Sprintf("update car %d status", id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("car %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete car transaction", zap.Error(err))
		return fmt.Errorf("begin delete car: %w", err)
	}
	defer tx.Rollback(ctx)

	// Link rows go first; the store does not cascade on its own.
	steps := []struct {
		name  string
		query string
	}{
		{"specification links", `DELETE FROM has WHERE car_id = $1`},
		{"reservation links", `DELETE FROM reserves WHERE car_id = $1`},
		{"management links", `DELETE FROM manages WHERE car_id = $1`},
	}
	for _, step := range steps {
		if _, err := tx.Exec(ctx, step.query, id); err != nil {
			r.log.Error("Failed to delete "+step.name,
				zap.Error(err),
				zap.Int64("car_id", id),
			)
			return wrapDBError("delete "+step.name, err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM cars WHERE car_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete car", zap.Error(err), zap.Int64("car_id", id))
		return wrapDBError(fmt.Sprintf("delete car %d", id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("car %d: %w", id, ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit delete car", zap.Error(err), zap.Int64("car_id", id))
		return fmt.Errorf("commit delete car: %w", err)
	}

	r.log.Info("Car deleted", zap.Int64("car_id", id))
	return nil
}

const carDetailColumns = `
	c.car_id, c.model, c.daily_rent, c.deposit, c.mileage, c.vehicle_status,
	vs.specification_id, vs.color, vs.fuel_type, vs.transmission_type, vs.seating_capacity
`

const carDetailFrom = `
	FROM cars c
	JOIN has h ON c.car_id = h.car_id
	JOIN vehicle_specifications vs ON h.specification_id = vs.specification_id
`

func scanCarDetail(row pgx.Row) (*entity.CarDetail, error) {
	var detail entity.CarDetail
	var spec entity.VehicleSpecification
	err := row.Scan(
		&detail.ID,
		&detail.Model,
		&detail.DailyRent,
		&detail.Deposit,
		&detail.Mileage,
		&detail.Status,
		&spec.ID,
		&spec.Color,
		&spec.FuelType,
		&spec.Transmission,
		&spec.SeatingCapacity,
	)
	if err != nil {
		return nil, err
	}
	detail.Specification = &spec
	return &detail, nil
}

func (r *carRepository) FindByID(ctx context.Context, id int64) (*entity.CarDetail, error) {
	query := `SELECT ` + carDetailColumns + carDetailFrom + ` WHERE c.car_id = $1`

	detail, err := scanCarDetail(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find car by ID", zap.Error(err), zap.Int64("car_id", id))
		return nil, fmt.Errorf("find car by ID %d: %w", id, err)
	}

	return detail, nil
}

func (r *carRepository) FindAll(ctx context.Context) ([]*entity.Car, error) {
	return r.queryCars(ctx, `SELECT car_id, model, daily_rent, deposit, mileage, vehicle_status FROM cars ORDER BY car_id`)
}

func (r *carRepository) FindByStatus(ctx context.Context, status entity.CarStatus) ([]*entity.Car, error) {
	return r.queryCars(ctx,
		`SELECT car_id, model, daily_rent, deposit, mileage, vehicle_status FROM cars WHERE vehicle_status = $1 ORDER BY car_id`,
		status,
	)
}

func (r *carRepository) FindUnavailable(ctx context.Context) ([]*entity.Car, error) {
	return r.queryCars(ctx,
		`SELECT car_id, model, daily_rent, deposit, mileage, vehicle_status FROM cars WHERE vehicle_status != 'available' ORDER BY car_id`,
	)
}

func (r *carRepository) FindAllDetailed(ctx context.Context) ([]*entity.CarDetail, error) {
	return r.queryCarDetails(ctx, `SELECT `+carDetailColumns+carDetailFrom+` ORDER BY c.car_id`)
}

func (r *carRepository) FindAvailableDetailed(ctx context.Context) ([]*entity.CarDetail, error) {
	return r.queryCarDetails(ctx,
		`SELECT `+carDetailColumns+carDetailFrom+` WHERE c.vehicle_status = 'available' ORDER BY c.car_id`,
	)
}

func (r *carRepository) Filter(ctx context.Context, criteria FleetCriteria) ([]*entity.CarDetail, error) {
	// Unconstrained base joins every car with its specification; each
	// present criterion appends one AND-ed comparison.
	filter := NewFilter(`SELECT ` + carDetailColumns + carDetailFrom + ` WHERE 1=1`)

	filter.AddIfPresent("c.daily_rent >= $%d", criteria.MinRent)
	filter.AddIfPresent("c.daily_rent <= $%d", criteria.MaxRent)
	filter.AddIfPresent("c.mileage >= $%d", criteria.MinMileage)
	filter.AddIfPresent("c.mileage <= $%d", criteria.MaxMileage)
	filter.AddIfPresent("vs.fuel_type = $%d", criteria.FuelType)
	filter.AddIfPresent("vs.transmission_type = $%d", criteria.TransmissionType)
	filter.AddIfPresent("vs.seating_capacity >= $%d", criteria.MinSeats)
	filter.AddIfPresent("vs.seating_capacity <= $%d", criteria.MaxSeats)
	filter.Append(" ORDER BY c.car_id")

	return r.queryCarDetails(ctx, filter.SQL(), filter.Args()...)
}

func (r *carRepository) IsAvailable(ctx context.Context, id int64) (bool, error) {
	var status entity.CarStatus
	err := r.db.QueryRow(ctx, `SELECT vehicle_status FROM cars WHERE car_id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("car %d: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to check car availability", zap.Error(err), zap.Int64("car_id", id))
		return false, fmt.Errorf("check car %d availability: %w", id, err)
	}

	return status == entity.CarStatusAvailable, nil
}

func (r *carRepository) AssignSpecification(ctx context.Context, carID, specificationID int64) error {
	if _, err := r.db.Exec(ctx,
		`INSERT INTO has (car_id, specification_id) VALUES ($1, $2)`,
		carID, specificationID,
	); err != nil {
		r.log.Error("Failed to assign specification",
			zap.Error(err),
			zap.Int64("car_id", carID),
			zap.Int64("specification_id", specificationID),
		)
		return wrapDBError("assign specification", err)
	}
	return nil
}

func (r *carRepository) RemoveSpecification(ctx context.Context, carID, specificationID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM has WHERE car_id = $1 AND specification_id = $2`,
		carID, specificationID,
	)
	if err != nil {
		r.log.Error("Failed to remove specification",
			zap.Error(err),
			zap.Int64("car_id", carID),
			zap.Int64("specification_id", specificationID),
		)
		return wrapDBError("remove specification", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("specification link %d/%d: %w", carID, specificationID, ErrNotFound)
	}
	return nil
}

func (r *carRepository) SpecificationID(ctx context.Context, carID int64) (int64, error) {
	var specificationID int64
	err := r.db.QueryRow(ctx,
		`SELECT specification_id FROM has WHERE car_id = $1`, carID,
	).Scan(&specificationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("specification for car %d: %w", carID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to look up specification", zap.Error(err), zap.Int64("car_id", carID))
		return 0, fmt.Errorf("look up specification for car %d: %w", carID, err)
	}

	return specificationID, nil
}

func (r *carRepository) AssignManager(ctx context.Context, adminID, carID int64) error {
	if _, err := r.db.Exec(ctx,
		`INSERT INTO manages (user_id, car_id) VALUES ($1, $2)`,
		adminID, carID,
	); err != nil {
		r.log.Error("Failed to assign manager",
			zap.Error(err),
			zap.Int64("admin_id", adminID),
			zap.Int64("car_id", carID),
		)
		return wrapDBError("assign manager", err)
	}
	return nil
}

func (r *carRepository) ManagedBy(ctx context.Context, adminID int64) ([]*entity.Car, error) {
	return r.queryCars(ctx, `
		SELECT c.car_id, c.model, c.daily_rent, c.deposit, c.mileage, c.vehicle_status
		FROM cars c
		JOIN manages m ON c.car_id = m.car_id
		WHERE m.user_id = $1
		ORDER BY c.car_id`,
		adminID,
	)
}

func (r *carRepository) History(ctx context.Context, carID int64) ([]*entity.Booking, error) {
	query := `
		SELECT b.booking_id, b.start_date, b.end_date, b.booking_status, b.secure_deposit,
		       b.amount, b.drive_option, b.reading, b.date_out, m.user_id, r.car_id
		FROM bookings b
		JOIN reserves r ON b.booking_id = r.booking_id
		JOIN makes m ON b.booking_id = m.booking_id
		WHERE r.car_id = $1
		ORDER BY b.start_date DESC
	`

	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		r.log.Error("Failed to query car history", zap.Error(err), zap.Int64("car_id", carID))
		return nil, fmt.Errorf("query history for car %d: %w", carID, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan history row", zap.Error(err))
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *carRepository) TopRented(ctx context.Context, limit int) ([]*CarRentalCount, error) {
	query := `
		SELECT c.car_id, c.model, COUNT(*) AS rental_count
		FROM reserves r
		JOIN cars c ON r.car_id = c.car_id
		GROUP BY c.car_id, c.model
		ORDER BY rental_count DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to query top rented cars", zap.Error(err))
		return nil, fmt.Errorf("query top rented cars: %w", err)
	}
	defer rows.Close()

	var counts []*CarRentalCount
	for rows.Next() {
		var count CarRentalCount
		if err := rows.Scan(&count.CarID, &count.Model, &count.Rentals); err != nil {
			r.log.Error("Failed to scan rental count row", zap.Error(err))
			return nil, fmt.Errorf("scan rental count row: %w", err)
		}
		counts = append(counts, &count)
	}

	return counts, rows.Err()
}

func (r *carRepository) queryCars(ctx context.Context, query string, args ...any) ([]*entity.Car, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query cars", zap.Error(err))
		return nil, fmt.Errorf("query cars: %w", err)
	}
	defer rows.Close()

	var cars []*entity.Car
	for rows.Next() {
		var car entity.Car
		err := rows.Scan(&car.ID, &car.Model, &car.DailyRent, &car.Deposit, &car.Mileage, &car.Status)
		if err != nil {
			r.log.Error("Failed to scan car row", zap.Error(err))
			return nil, fmt.Errorf("scan car row: %w", err)
		}
		cars = append(cars, &car)
	}

	return cars, rows.Err()
}

func (r *carRepository) queryCarDetails(ctx context.Context, query string, args ...any) ([]*entity.CarDetail, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query car details", zap.Error(err))
		return nil, fmt.Errorf("query car details: %w", err)
	}
	defer rows.Close()

	var details []*entity.CarDetail
	for rows.Next() {
		detail, err := scanCarDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan car detail row", zap.Error(err))
			return nil, fmt.Errorf("scan car detail row: %w", err)
		}
		details = append(details, detail)
	}

	return details, rows.Err()
}
