package request

type CreateCarRequest struct {
	Model           string  `json:"model" validate:"required"`
	DailyRent       float64 `json:"daily_rent" validate:"required,gt=0"`
	Deposit         float64 `json:"deposit" validate:"gte=0"`
	Mileage         int     `json:"mileage" validate:"gte=0"`
	Status          string  `json:"status" validate:"required,oneof=available reserved rented service retired"`
	SpecificationID int64   `json:"specification_id" validate:"required"`
}

type UpdateCarRequest struct {
	Model     string  `json:"model" validate:"required"`
	DailyRent float64 `json:"daily_rent" validate:"required,gt=0"`
	Status    string  `json:"status" validate:"required,oneof=available reserved rented service retired"`
}

type AssignSpecificationRequest struct {
	SpecificationID int64 `json:"specification_id" validate:"required"`
}

type AssignManagerRequest struct {
	AdminID int64 `json:"admin_id" validate:"required"`
}
