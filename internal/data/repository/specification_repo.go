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

type SpecificationRepository interface {
	Create(ctx context.Context, spec *entity.VehicleSpecification) error
	Update(ctx context.Context, spec *entity.VehicleSpecification) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entity.VehicleSpecification, error)
	FindAll(ctx context.Context) ([]*entity.VehicleSpecification, error)
	FindByCar(ctx context.Context, carID int64) ([]*entity.VehicleSpecification, error)
}

type specificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSpecificationRepository(db database.PgxIface, log *zap.Logger) SpecificationRepository {
	return &specificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "specification")),
	}
}

func (r *specificationRepository) Create(ctx context.Context, spec *entity.VehicleSpecification) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO vehicle_specifications (color, fuel_type, transmission_type, seating_capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING specification_id`,
		spec.Color, spec.FuelType, spec.Transmission, spec.SeatingCapacity,
	).Scan(&spec.ID)
	if err != nil {
		r.log.Error("Failed to insert specification", zap.Error(err))
		return wrapDBError("insert specification", err)
	}

	return nil
}

func (r *specificationRepository) Update(ctx context.Context, spec *entity.VehicleSpecification) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE vehicle_specifications
		SET color = $2, fuel_type = $3, transmission_type = $4, seating_capacity = $5
		WHERE specification_id = $1`,
		spec.ID, spec.Color, spec.FuelType, spec.Transmission, spec.SeatingCapacity,
	)
	if err != nil {
		r.log.Error("Failed to update specification",
			zap.Error(err),
			zap.Int64("specification_id", spec.ID),
		)
		return wrapDBError(fmt.Sprintf("update specification %d", spec.ID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("specification %d: %w", spec.ID, ErrNotFound)
	}

	return nil
}

func (r *specificationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM vehicle_specifications WHERE specification_id = $1`, id,
	)
	if err != nil {
		r.log.Error("Failed to delete specification",
			zap.Error(err),
			zap.Int64("specification_id", id),
		)
		return wrapDBError(fmt.Sprintf("delete specification %d", id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("specification %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *specificationRepository) FindByID(ctx context.Context, id int64) (*entity.VehicleSpecification, error) {
	var spec entity.VehicleSpecification
	err := r.db.QueryRow(ctx, `
		SELECT specification_id, color, fuel_type, transmission_type, seating_capacity
		FROM vehicle_specifications
		WHERE specification_id = $1`, id,
	).Scan(&spec.ID, &spec.Color, &spec.FuelType, &spec.Transmission, &spec.SeatingCapacity)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find specification by ID",
			zap.Error(err),
			zap.Int64("specification_id", id),
		)
		return nil, fmt.Errorf("find specification by ID %d: %w", id, err)
	}

	return &spec, nil
}

func (r *specificationRepository) FindAll(ctx context.Context) ([]*entity.VehicleSpecification, error) {
	return r.querySpecs(ctx, `
		SELECT specification_id, color, fuel_type, transmission_type, seating_capacity
		FROM vehicle_specifications
		ORDER BY specification_id`)
}

func (r *specificationRepository) FindByCar(ctx context.Context, carID int64) ([]*entity.VehicleSpecification, error) {
	return r.querySpecs(ctx, `
		SELECT vs.specification_id, vs.color, vs.fuel_type, vs.transmission_type, vs.seating_capacity
		FROM has h
		JOIN vehicle_specifications vs ON h.specification_id = vs.specification_id
		WHERE h.car_id = $1`, carID)
}

func (r *specificationRepository) querySpecs(ctx context.Context, query string, args ...any) ([]*entity.VehicleSpecification, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query specifications", zap.Error(err))
		return nil, fmt.Errorf("query specifications: %w", err)
	}
	defer rows.Close()

	var specs []*entity.VehicleSpecification
	for rows.Next() {
		var spec entity.VehicleSpecification
		err := rows.Scan(&spec.ID, &spec.Color, &spec.FuelType, &spec.Transmission, &spec.SeatingCapacity)
		if err != nil {
			r.log.Error("Failed to scan specification row", zap.Error(err))
			return nil, fmt.Errorf("scan specification row: %w", err)
		}
		specs = append(specs, &spec)
	}

	return specs, rows.Err()
}
