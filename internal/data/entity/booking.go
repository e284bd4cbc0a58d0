package entity

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusFinished  BookingStatus = "finished"
)

// Booking carries its two association links (renter and car). The links
// are written once at creation and never reassigned afterwards.
type Booking struct {
	ID            int64         `db:"booking_id"`
	StartDate     time.Time     `db:"start_date"`
	EndDate       time.Time     `db:"end_date"`
	Status        BookingStatus `db:"booking_status"`
	SecureDeposit float64       `db:"secure_deposit"`
	Amount        float64       `db:"amount"`
	DriveOption   string        `db:"drive_option"`
	Reading       int           `db:"reading"`
	DateOut       time.Time     `db:"date_out"`

	// Association links from the makes and reserves tables.
	UserID int64 `db:"user_id"`
	CarID  int64 `db:"car_id"`
}

// BookingSummary is the read-surface projection joined with the car row.
type BookingSummary struct {
	Booking
	CarModel string
}
