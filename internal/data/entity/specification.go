package entity

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
	FuelCNG      FuelType = "CNG"
	FuelLPG      FuelType = "LPG"
)

type TransmissionType string

const (
	TransmissionManual        TransmissionType = "Manual"
	TransmissionAutomatic     TransmissionType = "Automatic"
	TransmissionSemiAutomatic TransmissionType = "Semi-Automatic"
)

type VehicleSpecification struct {
	ID              int64            `db:"specification_id"`
	Color           string           `db:"color"`
	FuelType        FuelType         `db:"fuel_type"`
	Transmission    TransmissionType `db:"transmission_type"`
	SeatingCapacity int              `db:"seating_capacity"`
}
