package request

type CreateBookingRequest struct {
	CarID         int64   `json:"car_id" validate:"required"`
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	SecureDeposit float64 `json:"secure_deposit" validate:"gte=0"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	DriveOption   string  `json:"drive_option" validate:"required,oneof=self-drive chauffeur"`
	Reading       int     `json:"reading" validate:"gte=0"`
	DateOut       string  `json:"date_out" validate:"required,datetime=2006-01-02"`
}

// UpdateBookingRequest covers the mutable fields only; status and the
// renter/car links cannot be changed after creation.
type UpdateBookingRequest struct {
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DriveOption string  `json:"drive_option" validate:"required,oneof=self-drive chauffeur"`
	Reading     int     `json:"reading" validate:"gte=0"`
}
