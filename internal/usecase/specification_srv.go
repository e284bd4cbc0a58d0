package usecase

import (
	"context"
	"fmt"

	"srent/internal/data/entity"
	"srent/internal/data/repository"
	"srent/internal/dto/request"
	"srent/internal/dto/response"
	"srent/pkg/utils"

	"go.uber.org/zap"
)

type SpecificationService interface {
	CreateSpecification(ctx context.Context, req *request.SpecificationRequest) (*response.SpecificationResponse, error)
	UpdateSpecification(ctx context.Context, id int64, req *request.SpecificationRequest) error
	DeleteSpecification(ctx context.Context, id int64) error
	GetSpecification(ctx context.Context, id int64) (*response.SpecificationResponse, error)
	ListSpecifications(ctx context.Context) ([]response.SpecificationResponse, error)
	SpecificationsForCar(ctx context.Context, carID int64) ([]response.SpecificationResponse, error)
}

type specificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSpecificationService(repo *repository.Repository, log *zap.Logger) SpecificationService {
	return &specificationService{
		repo: repo,
		log:  log.With(zap.String("service", "specification")),
	}
}

func (s *specificationService) CreateSpecification(ctx context.Context, req *request.SpecificationRequest) (*response.SpecificationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create specification validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	spec := &entity.VehicleSpecification{
		Color:           req.Color,
		FuelType:        entity.FuelType(req.FuelType),
		Transmission:    entity.TransmissionType(req.Transmission),
		SeatingCapacity: req.SeatingCapacity,
	}

	if err := s.repo.Specification.Create(ctx, spec); err != nil {
		s.log.Error("Failed to create specification", zap.Error(err))
		return nil, fmt.Errorf("create specification: %w", err)
	}

	s.log.Info("Specification created", zap.Int64("specification_id", spec.ID))

	resp := response.SpecificationToResponse(spec)
	return &resp, nil
}

func (s *specificationService) UpdateSpecification(ctx context.Context, id int64, req *request.SpecificationRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update specification validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	spec := &entity.VehicleSpecification{
		ID:              id,
		Color:           req.Color,
		FuelType:        entity.FuelType(req.FuelType),
		Transmission:    entity.TransmissionType(req.Transmission),
		SeatingCapacity: req.SeatingCapacity,
	}

	if err := s.repo.Specification.Update(ctx, spec); err != nil {
		s.log.Error("Failed to update specification", zap.Error(err), zap.Int64("specification_id", id))
		return fmt.Errorf("update specification %d: %w", id, err)
	}
	return nil
}

func (s *specificationService) DeleteSpecification(ctx context.Context, id int64) error {
	if err := s.repo.Specification.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete specification", zap.Error(err), zap.Int64("specification_id", id))
		return fmt.Errorf("delete specification %d: %w", id, err)
	}
	return nil
}

func (s *specificationService) GetSpecification(ctx context.Context, id int64) (*response.SpecificationResponse, error) {
	spec, err := s.repo.Specification.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find specification %d: %w", id, err)
	}
	if spec == nil {
		return nil, fmt.Errorf("specification %d: %w", id, repository.ErrNotFound)
	}

	resp := response.SpecificationToResponse(spec)
	return &resp, nil
}

func (s *specificationService) ListSpecifications(ctx context.Context) ([]response.SpecificationResponse, error) {
	specs, err := s.repo.Specification.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list specifications", zap.Error(err))
		return nil, fmt.Errorf("list specifications: %w", err)
	}
	return specsToResponses(specs), nil
}

func (s *specificationService) SpecificationsForCar(ctx context.Context, carID int64) ([]response.SpecificationResponse, error) {
	specs, err := s.repo.Specification.FindByCar(ctx, carID)
	if err != nil {
		s.log.Error("Failed to get specifications for car", zap.Error(err), zap.Int64("car_id", carID))
		return nil, fmt.Errorf("get specifications for car %d: %w", carID, err)
	}
	return specsToResponses(specs), nil
}

func specsToResponses(specs []*entity.VehicleSpecification) []response.SpecificationResponse {
	responses := make([]response.SpecificationResponse, len(specs))
	for i, spec := range specs {
		responses[i] = response.SpecificationToResponse(spec)
	}
	return responses
}
