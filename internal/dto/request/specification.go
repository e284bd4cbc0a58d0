package request

type SpecificationRequest struct {
	Color           string `json:"color" validate:"required"`
	FuelType        string `json:"fuel_type" validate:"required,oneof=Petrol Diesel Electric Hybrid CNG LPG"`
	Transmission    string `json:"transmission_type" validate:"required,oneof=Manual Automatic Semi-Automatic"`
	SeatingCapacity int    `json:"seating_capacity" validate:"required,min=1,max=12"`
}
