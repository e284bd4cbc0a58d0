package usecase

import (
	"context"
	"fmt"
	"time"

	"srent/internal/data/entity"
	"srent/internal/data/repository"
	"srent/internal/dto/request"
	"srent/internal/dto/response"
	"srent/pkg/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ReservationService is the booking lifecycle engine. Every write runs
// in one transaction at the repository, including the car availability
// flip, so no caller is trusted to keep car status in step with the
// booking by a second call.
type ReservationService interface {
	CreateBooking(ctx context.Context, renterID int64, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID int64) error
	CancelOwnBooking(ctx context.Context, bookingID, renterID int64) error
	FinishBooking(ctx context.Context, bookingID int64) error
	UpdateBooking(ctx context.Context, bookingID int64, req *request.UpdateBookingRequest) (*response.BookingResponse, error)

	GetBooking(ctx context.Context, bookingID int64) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID int64) ([]response.BookingSummaryResponse, error)
	GetBookingsByStatus(ctx context.Context, status entity.BookingStatus) ([]response.BookingResponse, error)
	GetActiveBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateBooking(ctx context.Context, renterID int64, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %s", ErrValidation, req.StartDate)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %s", ErrValidation, req.EndDate)
	}
	dateOut, err := time.Parse(dateLayout, req.DateOut)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date out %s", ErrValidation, req.DateOut)
	}
	if startDate.After(endDate) {
		return nil, ErrInvalidDates
	}

	// Existence and availability checks before the write, in the same
	// scope the write will use.
	renter, err := s.repo.User.FindByID(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("check renter %d: %w", renterID, err)
	}
	if renter == nil {
		return nil, fmt.Errorf("renter %d: %w", renterID, ErrRenterNotFound)
	}

	car, err := s.repo.Car.FindByID(ctx, req.CarID)
	if err != nil {
		return nil, fmt.Errorf("check car %d: %w", req.CarID, err)
	}
	if car == nil {
		return nil, fmt.Errorf("car %d: %w", req.CarID, ErrCarNotFound)
	}
	if car.Status != entity.CarStatusAvailable {
		return nil, fmt.Errorf("car %d is %s: %w", req.CarID, car.Status, ErrCarUnavailable)
	}

	overlap, err := s.repo.Booking.HasOverlap(ctx, req.CarID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("check overlap for car %d: %w", req.CarID, err)
	}
	if overlap {
		return nil, fmt.Errorf("car %d: %w", req.CarID, ErrBookingOverlap)
	}

	booking := &entity.Booking{
		StartDate:     startDate,
		EndDate:       endDate,
		SecureDeposit: req.SecureDeposit,
		Amount:        req.Amount,
		DriveOption:   req.DriveOption,
		Reading:       req.Reading,
		DateOut:       dateOut,
		UserID:        renterID,
		CarID:         req.CarID,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("renter_id", renterID),
			zap.Int64("car_id", req.CarID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("renter_id", renterID),
		zap.Int64("car_id", req.CarID),
		zap.Float64("amount", req.Amount),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *reservationService) CancelBooking(ctx context.Context, bookingID int64) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	return s.cancel(ctx, booking)
}

// CancelOwnBooking is the renter-facing cancel: the booking must have
// been made by the caller.
func (s *reservationService) CancelOwnBooking(ctx context.Context, bookingID, renterID int64) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != renterID {
		s.log.Warn("Cancel rejected for foreign booking",
			zap.Int64("booking_id", bookingID),
			zap.Int64("renter_id", renterID),
		)
		return fmt.Errorf("booking %d: %w", bookingID, ErrNotOwner)
	}
	return s.cancel(ctx, booking)
}

func (s *reservationService) findBooking(ctx context.Context, bookingID int64) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %d: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d: %w", bookingID, repository.ErrNotFound)
	}
	return booking, nil
}

func (s *reservationService) cancel(ctx context.Context, booking *entity.Booking) error {
	// Cancelling twice is fine; cancelling a finished booking is not.
	if booking.Status == entity.BookingStatusFinished {
		return fmt.Errorf("booking %d is finished: %w", booking.ID, ErrBookingClosed)
	}

	if err := s.repo.Booking.Cancel(ctx, booking.ID); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.Int64("booking_id", booking.ID))
		return fmt.Errorf("cancel booking %d: %w", booking.ID, err)
	}

	s.log.Info("Booking cancelled", zap.Int64("booking_id", booking.ID))
	return nil
}

func (s *reservationService) FinishBooking(ctx context.Context, bookingID int64) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return fmt.Errorf("booking %d is cancelled: %w", bookingID, ErrBookingClosed)
	}

	if err := s.repo.Booking.Finish(ctx, bookingID); err != nil {
		s.log.Error("Failed to finish booking", zap.Error(err), zap.Int64("booking_id", bookingID))
		return fmt.Errorf("finish booking %d: %w", bookingID, err)
	}

	s.log.Info("Booking finished", zap.Int64("booking_id", bookingID))
	return nil
}

func (s *reservationService) UpdateBooking(ctx context.Context, bookingID int64, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %s", ErrValidation, req.StartDate)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %s", ErrValidation, req.EndDate)
	}
	if startDate.After(endDate) {
		return nil, ErrInvalidDates
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return nil, fmt.Errorf("booking %d is %s: %w", bookingID, booking.Status, ErrBookingClosed)
	}

	booking.StartDate = startDate
	booking.EndDate = endDate
	booking.Amount = req.Amount
	booking.DriveOption = req.DriveOption
	booking.Reading = req.Reading

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking", zap.Error(err), zap.Int64("booking_id", bookingID))
		return nil, fmt.Errorf("update booking %d: %w", bookingID, err)
	}

	s.log.Info("Booking updated", zap.Int64("booking_id", bookingID))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *reservationService) GetBooking(ctx context.Context, bookingID int64) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *reservationService) GetUserBookings(ctx context.Context, userID int64) ([]response.BookingSummaryResponse, error) {
	summaries, err := s.repo.Booking.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get bookings for user %d: %w", userID, err)
	}

	responses := make([]response.BookingSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = response.BookingSummaryToResponse(summary)
	}
	return responses, nil
}

func (s *reservationService) GetBookingsByStatus(ctx context.Context, status entity.BookingStatus) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByStatus(ctx, status)
	if err != nil {
		s.log.Error("Failed to get bookings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("get bookings by status %s: %w", status, err)
	}

	return bookingsToResponses(bookings), nil
}

func (s *reservationService) GetActiveBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to get active bookings", zap.Error(err))
		return nil, fmt.Errorf("get active bookings: %w", err)
	}

	return bookingsToResponses(bookings), nil
}

func bookingsToResponses(bookings []*entity.Booking) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}
	return responses
}
