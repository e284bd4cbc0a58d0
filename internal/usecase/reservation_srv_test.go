package usecase

import (
	"context"
	"testing"
	"time"

	"srent/internal/data/entity"
	"srent/internal/data/repository"
	"srent/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		CarID:         11,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-05",
		SecureDeposit: 200,
		Amount:        480,
		DriveOption:   "self-drive",
		Reading:       42000,
		DateOut:       "2026-09-01",
	}
}

func newReservationService(users *fakeUserRepo, cars *fakeCarRepo, bookings *fakeBookingRepo) ReservationService {
	repo := &repository.Repository{
		User:    users,
		Car:     cars,
		Booking: bookings,
	}
	return NewReservationService(repo, zap.NewNop())
}

func TestCreateBookingSuccess(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := newReservationService(
		&fakeUserRepo{detail: customerDetail(3)},
		&fakeCarRepo{detail: availableCar(11)},
		bookings,
	)

	resp, err := svc.CreateBooking(context.Background(), 3, validBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, int64(3), resp.UserID)
	assert.Equal(t, int64(11), resp.CarID)

	require.NotNil(t, bookings.created)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), bookings.created.StartDate)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), bookings.created.EndDate)
}

func TestCreateBookingRejectsReversedDates(t *testing.T) {
	svc := newReservationService(
		&fakeUserRepo{detail: customerDetail(3)},
		&fakeCarRepo{detail: availableCar(11)},
		&fakeBookingRepo{},
	)

	req := validBookingRequest()
	req.StartDate = "2026-09-10"
	req.EndDate = "2026-09-05"

	_, err := svc.CreateBooking(context.Background(), 3, req)
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestCreateBookingRejectsMissingRenter(t *testing.T) {
	svc := newReservationService(
		&fakeUserRepo{detail: nil},
		&fakeCarRepo{detail: availableCar(11)},
		&fakeBookingRepo{},
	)

	_, err := svc.CreateBooking(context.Background(), 999, validBookingRequest())
	assert.ErrorIs(t, err, ErrRenterNotFound)
}

func TestCreateBookingRejectsMissingCar(t *testing.T) {
	svc := newReservationService(
		&fakeUserRepo{detail: customerDetail(3)},
		&fakeCarRepo{detail: nil},
		&fakeBookingRepo{},
	)

	_, err := svc.CreateBooking(context.Background(), 3, validBookingRequest())
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestCreateBookingRejectsUnavailableCar(t *testing.T) {
	car := availableCar(11)
	car.Status = entity.CarStatusReserved

	bookings := &fakeBookingRepo{}
	svc := newReservationService(
		&fakeUserRepo{detail: customerDetail(3)},
		&fakeCarRepo{detail: car},
		bookings,
	)

	_, err := svc.CreateBooking(context.Background(), 3, validBookingRequest())
	assert.ErrorIs(t, err, ErrCarUnavailable)
	assert.Nil(t, bookings.created)
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	bookings := &fakeBookingRepo{overlap: true}
	svc := newReservationService(
		&fakeUserRepo{detail: customerDetail(3)},
		&fakeCarRepo{detail: availableCar(11)},
		bookings,
	)

	_, err := svc.CreateBooking(context.Background(), 3, validBookingRequest())
	assert.ErrorIs(t, err, ErrBookingOverlap)
	assert.Nil(t, bookings.created)
}

func TestCreateBookingRejectsInvalidPayload(t *testing.T) {
	svc := newReservationService(
		&fakeUserRepo{detail: customerDetail(3)},
		&fakeCarRepo{detail: availableCar(11)},
		&fakeBookingRepo{},
	)

	req := validBookingRequest()
	req.DriveOption = "autopilot"

	_, err := svc.CreateBooking(context.Background(), 3, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func confirmedBooking(id int64) *entity.Booking {
	return &entity.Booking{
		ID:          id,
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Status:      entity.BookingStatusConfirmed,
		Amount:      480,
		DriveOption: "self-drive",
		DateOut:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		UserID:      3,
		CarID:       11,
	}
}

func TestCancelBookingConfirmed(t *testing.T) {
	bookings := &fakeBookingRepo{found: confirmedBooking(77)}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	err := svc.CancelBooking(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, []int64{77}, bookings.cancelled)
}

func TestCancelBookingTwice(t *testing.T) {
	booking := confirmedBooking(77)
	booking.Status = entity.BookingStatusCancelled
	bookings := &fakeBookingRepo{found: booking}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	err := svc.CancelBooking(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, []int64{77}, bookings.cancelled)
}

func TestCancelBookingFinished(t *testing.T) {
	booking := confirmedBooking(77)
	booking.Status = entity.BookingStatusFinished
	bookings := &fakeBookingRepo{found: booking}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	err := svc.CancelBooking(context.Background(), 77)
	assert.ErrorIs(t, err, ErrBookingClosed)
	assert.Empty(t, bookings.cancelled)
}

func TestCancelBookingMissing(t *testing.T) {
	bookings := &fakeBookingRepo{found: nil}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	err := svc.CancelBooking(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCancelOwnBooking(t *testing.T) {
	bookings := &fakeBookingRepo{found: confirmedBooking(77)}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	err := svc.CancelOwnBooking(context.Background(), 77, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{77}, bookings.cancelled)
}

func TestCancelOwnBookingRejectsForeignRenter(t *testing.T) {
	bookings := &fakeBookingRepo{found: confirmedBooking(77)}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	err := svc.CancelOwnBooking(context.Background(), 77, 4)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Empty(t, bookings.cancelled)
}

func TestFinishBookingCancelled(t *testing.T) {
	booking := confirmedBooking(77)
	booking.Status = entity.BookingStatusCancelled
	bookings := &fakeBookingRepo{found: booking}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	err := svc.FinishBooking(context.Background(), 77)
	assert.ErrorIs(t, err, ErrBookingClosed)
	assert.Empty(t, bookings.finished)
}

func TestFinishBookingConfirmed(t *testing.T) {
	bookings := &fakeBookingRepo{found: confirmedBooking(77)}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	err := svc.FinishBooking(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, []int64{77}, bookings.finished)
}

func TestUpdateBookingClosed(t *testing.T) {
	booking := confirmedBooking(77)
	booking.Status = entity.BookingStatusFinished
	bookings := &fakeBookingRepo{found: booking}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	req := &request.UpdateBookingRequest{
		StartDate:   "2026-09-02",
		EndDate:     "2026-09-06",
		Amount:      520,
		DriveOption: "chauffeur",
		Reading:     42500,
	}
	_, err := svc.UpdateBooking(context.Background(), 77, req)
	assert.ErrorIs(t, err, ErrBookingClosed)
}

func TestGetBookingMissing(t *testing.T) {
	bookings := &fakeBookingRepo{found: nil}
	svc := newReservationService(&fakeUserRepo{}, &fakeCarRepo{}, bookings)

	_, err := svc.GetBooking(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
