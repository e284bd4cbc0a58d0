package usecase

import (
	"context"
	"testing"

	"srent/internal/data/entity"
	"srent/internal/data/repository"
	"srent/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFleetService(cars *fakeCarRepo, specs *fakeSpecRepo, users *fakeUserRepo) FleetService {
	repo := &repository.Repository{
		Car:           cars,
		Specification: specs,
		User:          users,
	}
	return NewFleetService(repo, zap.NewNop())
}

func TestAddCarRejectsMissingSpecification(t *testing.T) {
	svc := newFleetService(&fakeCarRepo{}, &fakeSpecRepo{spec: nil}, &fakeUserRepo{})

	req := &request.CreateCarRequest{
		Model:           "Baleno",
		DailyRent:       90,
		Status:          "available",
		SpecificationID: 404,
	}
	_, err := svc.AddCar(context.Background(), req)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteCarRejectsReserved(t *testing.T) {
	car := availableCar(11)
	car.Status = entity.CarStatusReserved
	cars := &fakeCarRepo{detail: car}
	svc := newFleetService(cars, &fakeSpecRepo{}, &fakeUserRepo{})

	err := svc.DeleteCar(context.Background(), 11)
	assert.ErrorIs(t, err, ErrCarUnavailable)
	assert.Empty(t, cars.deleted)
}

func TestDeleteCarAvailable(t *testing.T) {
	cars := &fakeCarRepo{detail: availableCar(11)}
	svc := newFleetService(cars, &fakeSpecRepo{}, &fakeUserRepo{})

	err := svc.DeleteCar(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, cars.deleted)
}

func TestFilterCarsPassesCriteriaThrough(t *testing.T) {
	cars := &fakeCarRepo{filtered: []*entity.CarDetail{availableCar(11)}}
	svc := newFleetService(cars, &fakeSpecRepo{}, &fakeUserRepo{})

	minRent := 50.0
	fuel := "Diesel"
	criteria := repository.FleetCriteria{MinRent: &minRent, FuelType: &fuel}

	resp, err := svc.FilterCars(context.Background(), criteria)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, int64(11), resp[0].ID)

	require.NotNil(t, cars.criteria)
	assert.Equal(t, &minRent, cars.criteria.MinRent)
	assert.Equal(t, &fuel, cars.criteria.FuelType)
	assert.Nil(t, cars.criteria.MaxRent)
}

func TestAssignManagerRejectsNonAdmin(t *testing.T) {
	svc := newFleetService(&fakeCarRepo{}, &fakeSpecRepo{}, &fakeUserRepo{role: entity.RoleCustomer})

	err := svc.AssignManager(context.Background(), 3, 11)
	assert.ErrorIs(t, err, ErrNoRole)
}
