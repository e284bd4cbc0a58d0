package usecase

import (
	"srent/internal/data/repository"
	"srent/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth          AuthService
	User          UserService
	Fleet         FleetService
	Specification SpecificationService
	Reservation   ReservationService
}

func NewService(repo *repository.Repository, log *zap.Logger, cfg *utils.Config) *Service {
	return &Service{
		Auth:          NewAuthService(repo, log, cfg.Session.ExpiryHours),
		User:          NewUserService(repo, log),
		Fleet:         NewFleetService(repo, log),
		Specification: NewSpecificationService(repo, log),
		Reservation:   NewReservationService(repo, log),
	}
}
