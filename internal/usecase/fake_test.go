package usecase

import (
	"context"
	"time"

	"srent/internal/data/entity"
	"srent/internal/data/repository"

	"github.com/google/uuid"
)

// The fakes embed the repository interfaces so only the methods a test
// exercises need an implementation.

type fakeUserRepo struct {
	repository.UserRepository
	detail          *entity.UserDetail
	role            entity.UserRole
	emailRegistered bool
	user            *entity.User

	createdCustomer *entity.User
	createdAdmin    *entity.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, userID int64) (*entity.UserDetail, error) {
	return f.detail, nil
}

func (f *fakeUserRepo) RoleOf(ctx context.Context, userID int64) (entity.UserRole, error) {
	return f.role, nil
}

func (f *fakeUserRepo) EmailRegistered(ctx context.Context, email string) (bool, error) {
	return f.emailRegistered, nil
}

func (f *fakeUserRepo) FindByIDAndUsername(ctx context.Context, userID int64, username string) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) CreateCustomer(ctx context.Context, user *entity.User, occupation string) error {
	user.ID = 21
	user.CreatedAt = time.Now()
	f.createdCustomer = user
	return nil
}

func (f *fakeUserRepo) CreateAdmin(ctx context.Context, user *entity.User, salary float64) error {
	user.ID = 22
	user.CreatedAt = time.Now()
	f.createdAdmin = user
	return nil
}

type fakeCarRepo struct {
	repository.CarRepository
	detail    *entity.CarDetail
	deleted   []int64
	criteria  *repository.FleetCriteria
	filtered  []*entity.CarDetail
	deleteErr error
}

func (f *fakeCarRepo) FindByID(ctx context.Context, id int64) (*entity.CarDetail, error) {
	return f.detail, nil
}

func (f *fakeCarRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCarRepo) Filter(ctx context.Context, criteria repository.FleetCriteria) ([]*entity.CarDetail, error) {
	f.criteria = &criteria
	return f.filtered, nil
}

type fakeBookingRepo struct {
	repository.BookingRepository
	overlap   bool
	found     *entity.Booking
	created   *entity.Booking
	createErr error
	cancelled []int64
	finished  []int64
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	booking.ID = 77
	booking.Status = entity.BookingStatusConfirmed
	f.created = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	return f.found, nil
}

func (f *fakeBookingRepo) HasOverlap(ctx context.Context, carID int64, startDate, endDate time.Time) (bool, error) {
	return f.overlap, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, bookingID int64) error {
	f.cancelled = append(f.cancelled, bookingID)
	return nil
}

func (f *fakeBookingRepo) Finish(ctx context.Context, bookingID int64) error {
	f.finished = append(f.finished, bookingID)
	return nil
}

type fakeSpecRepo struct {
	repository.SpecificationRepository
	spec *entity.VehicleSpecification
}

func (f *fakeSpecRepo) FindByID(ctx context.Context, id int64) (*entity.VehicleSpecification, error) {
	return f.spec, nil
}

type fakeSessionRepo struct {
	repository.SessionRepository
	created *entity.Session
	deleted []uuid.UUID
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.created = session
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, token uuid.UUID) error {
	f.deleted = append(f.deleted, token)
	return nil
}

func availableCar(id int64) *entity.CarDetail {
	return &entity.CarDetail{
		Car: entity.Car{
			ID:        id,
			Model:     "Baleno",
			DailyRent: 90,
			Status:    entity.CarStatusAvailable,
		},
	}
}

func customerDetail(id int64) *entity.UserDetail {
	occupation := "engineer"
	return &entity.UserDetail{
		User: entity.User{
			ID:        id,
			FirstName: "Asha",
			LastName:  "Verma",
			Username:  "asha",
			Email:     "asha@example.com",
		},
		Role:       entity.RoleCustomer,
		Occupation: &occupation,
	}
}
