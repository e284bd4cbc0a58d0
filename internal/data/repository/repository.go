package repository

import (
	"srent/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Session       SessionRepository
	Car           CarRepository
	Specification SpecificationRepository
	Booking       BookingRepository
	Card          CardRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Session:       NewSessionRepository(db, log),
		Car:           NewCarRepository(db, log),
		Specification: NewSpecificationRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		Card:          NewCardRepository(db, log),
	}
}
