package adaptor

import (
	"errors"
	"net/http"

	"srent/internal/data/repository"
	"srent/internal/usecase"
	"srent/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors onto HTTP status codes by
// sentinel, so a missing row, a broken invariant and a store fault
// each answer differently.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, usecase.ErrRenterNotFound),
		errors.Is(err, usecase.ErrCarNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrConflict),
		errors.Is(err, usecase.ErrCarUnavailable),
		errors.Is(err, usecase.ErrBookingOverlap),
		errors.Is(err, usecase.ErrBookingClosed):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrNotOwner):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrEmailTaken):
		log.Warn(operation+" failed - email taken", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrLoginFailed),
		errors.Is(err, usecase.ErrNoRole):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidDates):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
