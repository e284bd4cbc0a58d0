package response

import (
	"srent/internal/data/entity"
	"srent/internal/data/repository"
)

type CarResponse struct {
	ID        int64   `json:"id"`
	Model     string  `json:"model"`
	DailyRent float64 `json:"daily_rent"`
	Deposit   float64 `json:"deposit"`
	Mileage   int     `json:"mileage"`
	Status    string  `json:"status"`
}

type CarDetailResponse struct {
	CarResponse
	Color           string `json:"color"`
	FuelType        string `json:"fuel_type"`
	Transmission    string `json:"transmission_type"`
	SeatingCapacity int    `json:"seating_capacity"`
}

type TopRentedResponse struct {
	CarID   int64  `json:"car_id"`
	Model   string `json:"model"`
	Rentals int64  `json:"rentals"`
}

func CarToResponse(car *entity.Car) CarResponse {
	return CarResponse{
		ID:        car.ID,
		Model:     car.Model,
		DailyRent: car.DailyRent,
		Deposit:   car.Deposit,
		Mileage:   car.Mileage,
		Status:    string(car.Status),
	}
}

func CarDetailToResponse(detail *entity.CarDetail) CarDetailResponse {
	resp := CarDetailResponse{
		CarResponse: CarToResponse(&detail.Car),
	}
	if detail.Specification != nil {
		resp.Color = detail.Specification.Color
		resp.FuelType = string(detail.Specification.FuelType)
		resp.Transmission = string(detail.Specification.Transmission)
		resp.SeatingCapacity = detail.Specification.SeatingCapacity
	}
	return resp
}

func TopRentedToResponse(count *repository.CarRentalCount) TopRentedResponse {
	return TopRentedResponse{
		CarID:   count.CarID,
		Model:   count.Model,
		Rentals: count.Rentals,
	}
}
