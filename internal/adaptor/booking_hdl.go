package adaptor

import (
	"encoding/json"
	"net/http"

	"srent/internal/data/entity"
	"srent/internal/dto/request"
	"srent/internal/usecase"
	"srent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.ReservationService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", response)
}

// Cancel handles POST /api/bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	bookingID := utils.ParseInt64(chi.URLParam(r, "id"))
	if bookingID == 0 {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

// CancelMine handles POST /api/bookings/{id}/cancel. The booking must
// belong to the authenticated user.
func (h *BookingHandler) CancelMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	bookingID := utils.ParseInt64(chi.URLParam(r, "id"))
	if bookingID == 0 {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.CancelOwnBooking(r.Context(), bookingID, userID); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

// Finish handles POST /api/bookings/{id}/finish
func (h *BookingHandler) Finish(w http.ResponseWriter, r *http.Request) {
	bookingID := utils.ParseInt64(chi.URLParam(r, "id"))
	if bookingID == 0 {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.FinishBooking(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "finish booking")
		return
	}

	utils.ResponseSuccess(w, "Booking finished", nil)
}

// Update handles PUT /api/bookings/{id}
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	bookingID := utils.ParseInt64(chi.URLParam(r, "id"))
	if bookingID == 0 {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateBooking(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated", response)
}

// GetByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	bookingID := utils.ParseInt64(chi.URLParam(r, "id"))
	if bookingID == 0 {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	response, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", response)
}

// GetMine handles GET /api/bookings/my
func (h *BookingHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	response, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", response)
}

// GetByUser handles GET /api/users/{id}/bookings
func (h *BookingHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID := utils.ParseInt64(chi.URLParam(r, "id"))
	if userID == 0 {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	response, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", response)
}

// List handles GET /api/bookings with an optional status query.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var (
		response any
		err      error
	)
	if status == "" {
		response, err = h.service.GetActiveBookings(r.Context())
	} else {
		switch entity.BookingStatus(status) {
		case entity.BookingStatusConfirmed, entity.BookingStatusCancelled, entity.BookingStatusFinished:
			response, err = h.service.GetBookingsByStatus(r.Context(), entity.BookingStatus(status))
		default:
			utils.ResponseBadRequest(w, "Invalid booking status", nil)
			return
		}
	}
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", response)
}
