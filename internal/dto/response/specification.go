package response

import (
	"srent/internal/data/entity"
)

type SpecificationResponse struct {
	ID              int64  `json:"id"`
	Color           string `json:"color"`
	FuelType        string `json:"fuel_type"`
	Transmission    string `json:"transmission_type"`
	SeatingCapacity int    `json:"seating_capacity"`
}

func SpecificationToResponse(spec *entity.VehicleSpecification) SpecificationResponse {
	return SpecificationResponse{
		ID:              spec.ID,
		Color:           spec.Color,
		FuelType:        string(spec.FuelType),
		Transmission:    string(spec.Transmission),
		SeatingCapacity: spec.SeatingCapacity,
	}
}
