package adaptor

import (
	"srent/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth          *AuthHandler
	User          *UserHandler
	Car           *CarHandler
	Specification *SpecificationHandler
	Booking       *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(service.Auth, log),
		User:          NewUserHandler(service.User, log),
		Car:           NewCarHandler(service.Fleet, log),
		Specification: NewSpecificationHandler(service.Specification, log),
		Booking:       NewBookingHandler(service.Reservation, log),
	}
}
