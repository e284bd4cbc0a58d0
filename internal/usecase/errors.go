package usecase

import "errors"

// Business invariant violations, distinguishable from store faults so
// handlers can answer with the right status code.
var (
	ErrValidation     = errors.New("validation failed")
	ErrInvalidDates   = errors.New("start date must not be after end date")
	ErrNotOwner       = errors.New("booking belongs to another renter")
	ErrRenterNotFound = errors.New("renter not found")
	ErrCarNotFound    = errors.New("car not found")
	ErrCarUnavailable = errors.New("car is not available")
	ErrBookingOverlap = errors.New("car already has a confirmed booking in that period")
	ErrBookingClosed  = errors.New("booking is already closed")
	ErrEmailTaken     = errors.New("email is already registered")
	ErrLoginFailed    = errors.New("invalid user id or username")
	ErrNoRole         = errors.New("user has no role")
)
