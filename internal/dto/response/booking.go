package response

import (
	"srent/internal/data/entity"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	CarID         int64   `json:"car_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	SecureDeposit float64 `json:"secure_deposit"`
	Amount        float64 `json:"amount"`
	DriveOption   string  `json:"drive_option"`
	Reading       int     `json:"reading"`
	DateOut       string  `json:"date_out"`
}

type BookingSummaryResponse struct {
	BookingResponse
	CarModel string `json:"car_model"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID,
		UserID:        booking.UserID,
		CarID:         booking.CarID,
		StartDate:     booking.StartDate.Format(dateLayout),
		EndDate:       booking.EndDate.Format(dateLayout),
		Status:        string(booking.Status),
		SecureDeposit: booking.SecureDeposit,
		Amount:        booking.Amount,
		DriveOption:   booking.DriveOption,
		Reading:       booking.Reading,
		DateOut:       booking.DateOut.Format(dateLayout),
	}
}

func BookingSummaryToResponse(summary *entity.BookingSummary) BookingSummaryResponse {
	return BookingSummaryResponse{
		BookingResponse: BookingToResponse(&summary.Booking),
		CarModel:        summary.CarModel,
	}
}
