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

// FleetService manages the car inventory: registration, specification
// links, manager assignment and the dynamic fleet search.
type FleetService interface {
	AddCar(ctx context.Context, req *request.CreateCarRequest) (*response.CarResponse, error)
	UpdateCar(ctx context.Context, carID int64, req *request.UpdateCarRequest) error
	DeleteCar(ctx context.Context, carID int64) error

	GetCar(ctx context.Context, carID int64) (*response.CarDetailResponse, error)
	ListCars(ctx context.Context) ([]response.CarDetailResponse, error)
	ListAvailableCars(ctx context.Context) ([]response.CarDetailResponse, error)
	ListUnavailableCars(ctx context.Context) ([]response.CarResponse, error)
	FilterCars(ctx context.Context, criteria repository.FleetCriteria) ([]response.CarDetailResponse, error)
	IsCarAvailable(ctx context.Context, carID int64) (bool, error)

	AssignSpecification(ctx context.Context, carID, specificationID int64) error
	RemoveSpecification(ctx context.Context, carID, specificationID int64) error
	AssignManager(ctx context.Context, adminID, carID int64) error
	ManagedCars(ctx context.Context, adminID int64) ([]response.CarResponse, error)
	CarHistory(ctx context.Context, carID int64) ([]response.BookingResponse, error)
	TopRentedCars(ctx context.Context, limit int) ([]response.TopRentedResponse, error)
}

type fleetService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFleetService(repo *repository.Repository, log *zap.Logger) FleetService {
	return &fleetService{
		repo: repo,
		log:  log.With(zap.String("service", "fleet")),
	}
}

func (s *fleetService) AddCar(ctx context.Context, req *request.CreateCarRequest) (*response.CarResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add car validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	spec, err := s.repo.Specification.FindByID(ctx, req.SpecificationID)
	if err != nil {
		return nil, fmt.Errorf("check specification %d: %w", req.SpecificationID, err)
	}
	if spec == nil {
		return nil, fmt.Errorf("specification %d: %w", req.SpecificationID, repository.ErrNotFound)
	}

	car := &entity.Car{
		Model:     req.Model,
		DailyRent: req.DailyRent,
		Deposit:   req.Deposit,
		Mileage:   req.Mileage,
		Status:    entity.CarStatus(req.Status),
	}

	if err := s.repo.Car.Create(ctx, car, req.SpecificationID); err != nil {
		s.log.Error("Failed to add car", zap.Error(err), zap.String("model", req.Model))
		return nil, fmt.Errorf("add car: %w", err)
	}

	resp := response.CarToResponse(car)
	return &resp, nil
}

func (s *fleetService) UpdateCar(ctx context.Context, carID int64, req *request.UpdateCarRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update car validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if err := s.repo.Car.Update(ctx, carID, req.Model, req.DailyRent, entity.CarStatus(req.Status)); err != nil {
		s.log.Error("Failed to update car", zap.Error(err), zap.Int64("car_id", carID))
		return fmt.Errorf("update car %d: %w", carID, err)
	}

	s.log.Info("Car updated", zap.Int64("car_id", carID))
	return nil
}

func (s *fleetService) DeleteCar(ctx context.Context, carID int64) error {
	// A car under an open booking keeps its row until the booking is
	// cancelled or finished.
	car, err := s.repo.Car.FindByID(ctx, carID)
	if err != nil {
		return fmt.Errorf("find car %d: %w", carID, err)
	}
	if car == nil {
		return fmt.Errorf("car %d: %w", carID, repository.ErrNotFound)
	}
	if car.Status == entity.CarStatusReserved || car.Status == entity.CarStatusRented {
		return fmt.Errorf("car %d is %s: %w", carID, car.Status, ErrCarUnavailable)
	}

	if err := s.repo.Car.Delete(ctx, carID); err != nil {
		s.log.Error("Failed to delete car", zap.Error(err), zap.Int64("car_id", carID))
		return fmt.Errorf("delete car %d: %w", carID, err)
	}

	return nil
}

func (s *fleetService) GetCar(ctx context.Context, carID int64) (*response.CarDetailResponse, error) {
	detail, err := s.repo.Car.FindByID(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("find car %d: %w", carID, err)
	}
	if detail == nil {
		return nil, fmt.Errorf("car %d: %w", carID, repository.ErrNotFound)
	}

	resp := response.CarDetailToResponse(detail)
	return &resp, nil
}

func (s *fleetService) ListCars(ctx context.Context) ([]response.CarDetailResponse, error) {
	details, err := s.repo.Car.FindAllDetailed(ctx)
	if err != nil {
		s.log.Error("Failed to list cars", zap.Error(err))
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return carDetailsToResponses(details), nil
}

func (s *fleetService) ListAvailableCars(ctx context.Context) ([]response.CarDetailResponse, error) {
	details, err := s.repo.Car.FindAvailableDetailed(ctx)
	if err != nil {
		s.log.Error("Failed to list available cars", zap.Error(err))
		return nil, fmt.Errorf("list available cars: %w", err)
	}
	return carDetailsToResponses(details), nil
}

func (s *fleetService) ListUnavailableCars(ctx context.Context) ([]response.CarResponse, error) {
	cars, err := s.repo.Car.FindUnavailable(ctx)
	if err != nil {
		s.log.Error("Failed to list unavailable cars", zap.Error(err))
		return nil, fmt.Errorf("list unavailable cars: %w", err)
	}
	return carsToResponses(cars), nil
}

func (s *fleetService) FilterCars(ctx context.Context, criteria repository.FleetCriteria) ([]response.CarDetailResponse, error) {
	details, err := s.repo.Car.Filter(ctx, criteria)
	if err != nil {
		s.log.Error("Failed to filter cars", zap.Error(err))
		return nil, fmt.Errorf("filter cars: %w", err)
	}
	return carDetailsToResponses(details), nil
}

func (s *fleetService) IsCarAvailable(ctx context.Context, carID int64) (bool, error) {
	available, err := s.repo.Car.IsAvailable(ctx, carID)
	if err != nil {
		return false, fmt.Errorf("check car %d availability: %w", carID, err)
	}
	return available, nil
}

func (s *fleetService) AssignSpecification(ctx context.Context, carID, specificationID int64) error {
	spec, err := s.repo.Specification.FindByID(ctx, specificationID)
	if err != nil {
		return fmt.Errorf("check specification %d: %w", specificationID, err)
	}
	if spec == nil {
		return fmt.Errorf("specification %d: %w", specificationID, repository.ErrNotFound)
	}

	if err := s.repo.Car.AssignSpecification(ctx, carID, specificationID); err != nil {
		return fmt.Errorf("assign specification %d to car %d: %w", specificationID, carID, err)
	}

	s.log.Info("Specification assigned",
		zap.Int64("car_id", carID),
		zap.Int64("specification_id", specificationID),
	)
	return nil
}

func (s *fleetService) RemoveSpecification(ctx context.Context, carID, specificationID int64) error {
	if err := s.repo.Car.RemoveSpecification(ctx, carID, specificationID); err != nil {
		return fmt.Errorf("remove specification %d from car %d: %w", specificationID, carID, err)
	}
	return nil
}

func (s *fleetService) AssignManager(ctx context.Context, adminID, carID int64) error {
	role, err := s.repo.User.RoleOf(ctx, adminID)
	if err != nil {
		return fmt.Errorf("check role of user %d: %w", adminID, err)
	}
	if role != entity.RoleAdmin {
		return fmt.Errorf("user %d is not an admin: %w", adminID, ErrNoRole)
	}

	if err := s.repo.Car.AssignManager(ctx, adminID, carID); err != nil {
		return fmt.Errorf("assign manager %d to car %d: %w", adminID, carID, err)
	}

	s.log.Info("Manager assigned", zap.Int64("admin_id", adminID), zap.Int64("car_id", carID))
	return nil
}

func (s *fleetService) ManagedCars(ctx context.Context, adminID int64) ([]response.CarResponse, error) {
	cars, err := s.repo.Car.ManagedBy(ctx, adminID)
	if err != nil {
		s.log.Error("Failed to list managed cars", zap.Error(err), zap.Int64("admin_id", adminID))
		return nil, fmt.Errorf("list cars managed by %d: %w", adminID, err)
	}
	return carsToResponses(cars), nil
}

func (s *fleetService) CarHistory(ctx context.Context, carID int64) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Car.History(ctx, carID)
	if err != nil {
		s.log.Error("Failed to get car history", zap.Error(err), zap.Int64("car_id", carID))
		return nil, fmt.Errorf("get history for car %d: %w", carID, err)
	}
	return bookingsToResponses(bookings), nil
}

func (s *fleetService) TopRentedCars(ctx context.Context, limit int) ([]response.TopRentedResponse, error) {
	counts, err := s.repo.Car.TopRented(ctx, limit)
	if err != nil {
		s.log.Error("Failed to get top rented cars", zap.Error(err))
		return nil, fmt.Errorf("get top rented cars: %w", err)
	}

	responses := make([]response.TopRentedResponse, len(counts))
	for i, count := range counts {
		responses[i] = response.TopRentedToResponse(count)
	}
	return responses, nil
}

func carsToResponses(cars []*entity.Car) []response.CarResponse {
	responses := make([]response.CarResponse, len(cars))
	for i, car := range cars {
		responses[i] = response.CarToResponse(car)
	}
	return responses
}

func carDetailsToResponses(details []*entity.CarDetail) []response.CarDetailResponse {
	responses := make([]response.CarDetailResponse, len(details))
	for i, detail := range details {
		responses[i] = response.CarDetailToResponse(detail)
	}
	return responses
}
