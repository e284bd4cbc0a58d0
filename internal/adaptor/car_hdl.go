package adaptor

import (
	"encoding/json"
	"net/http"

	"srent/internal/data/repository"
	"srent/internal/dto/request"
	"srent/internal/usecase"
	"srent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CarHandler struct {
	service usecase.FleetService
	log     *zap.Logger
}

func NewCarHandler(service usecase.FleetService, log *zap.Logger) *CarHandler {
	return &CarHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/cars
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.AddCar(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add car")
		return
	}

	utils.ResponseCreated(w, "Car added", response)
}

// Update handles PUT /api/cars/{id}
func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	carID := utils.ParseInt64(chi.URLParam(r, "id"))
	if carID == 0 {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	var req request.UpdateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateCar(r.Context(), carID, &req); err != nil {
		handleServiceError(w, h.log, err, "update car")
		return
	}

	utils.ResponseSuccess(w, "Car updated", nil)
}

// Delete handles DELETE /api/cars/{id}
func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	carID := utils.ParseInt64(chi.URLParam(r, "id"))
	if carID == 0 {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	if err := h.service.DeleteCar(r.Context(), carID); err != nil {
		handleServiceError(w, h.log, err, "delete car")
		return
	}

	utils.ResponseSuccess(w, "Car deleted", nil)
}

// GetByID handles GET /api/cars/{id}
func (h *CarHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	carID := utils.ParseInt64(chi.URLParam(r, "id"))
	if carID == 0 {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	response, err := h.service.GetCar(r.Context(), carID)
	if err != nil {
		handleServiceError(w, h.log, err, "get car")
		return
	}

	utils.ResponseSuccess(w, "Car retrieved", response)
}

// List handles GET /api/cars with an optional availability query.
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		response any
		err      error
	)
	switch r.URL.Query().Get("availability") {
	case "":
		response, err = h.service.ListCars(r.Context())
	case "available":
		response, err = h.service.ListAvailableCars(r.Context())
	case "unavailable":
		response, err = h.service.ListUnavailableCars(r.Context())
	default:
		utils.ResponseBadRequest(w, "Invalid availability value", nil)
		return
	}
	if err != nil {
		handleServiceError(w, h.log, err, "list cars")
		return
	}

	utils.ResponseSuccess(w, "Cars retrieved", response)
}

// Filter handles GET /api/cars/filter. Every criterion is optional;
// absent or malformed values are skipped.
func (h *CarHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := repository.FleetCriteria{
		MinRent:          utils.FloatParam(q.Get("min_rent")),
		MaxRent:          utils.FloatParam(q.Get("max_rent")),
		MinMileage:       utils.IntParam(q.Get("min_mileage")),
		MaxMileage:       utils.IntParam(q.Get("max_mileage")),
		FuelType:         utils.StringParam(q.Get("fuel_type")),
		TransmissionType: utils.StringParam(q.Get("transmission_type")),
		MinSeats:         utils.IntParam(q.Get("min_seats")),
		MaxSeats:         utils.IntParam(q.Get("max_seats")),
	}

	response, err := h.service.FilterCars(r.Context(), criteria)
	if err != nil {
		handleServiceError(w, h.log, err, "filter cars")
		return
	}

	utils.ResponseSuccess(w, "Cars retrieved", response)
}

// Availability handles GET /api/cars/{id}/availability
func (h *CarHandler) Availability(w http.ResponseWriter, r *http.Request) {
	carID := utils.ParseInt64(chi.URLParam(r, "id"))
	if carID == 0 {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	available, err := h.service.IsCarAvailable(r.Context(), carID)
	if err != nil {
		handleServiceError(w, h.log, err, "check car availability")
		return
	}

	utils.ResponseSuccess(w, "Availability retrieved", map[string]bool{"available": available})
}

// AssignSpecification handles POST /api/cars/{id}/specifications
func (h *CarHandler) AssignSpecification(w http.ResponseWriter, r *http.Request) {
	carID := utils.ParseInt64(chi.URLParam(r, "id"))
	if carID == 0 {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	var req request.AssignSpecificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.AssignSpecification(r.Context(), carID, req.SpecificationID); err != nil {
		handleServiceError(w, h.log, err, "assign specification")
		return
	}

	utils.ResponseSuccess(w, "Specification assigned", nil)
}

// RemoveSpecification handles DELETE /api/cars/{id}/specifications/{specID}
func (h *CarHandler) RemoveSpecification(w http.ResponseWriter, r *http.Request) {
	carID := utils.ParseInt64(chi.URLParam(r, "id"))
	specID := utils.ParseInt64(chi.URLParam(r, "specID"))
	if carID == 0 || specID == 0 {
		utils.ResponseBadRequest(w, "Invalid car or specification ID", nil)
		return
	}

	if err := h.service.RemoveSpecification(r.Context(), carID, specID); err != nil {
		handleServiceError(w, h.log, err, "remove specification")
		return
	}

	utils.ResponseSuccess(w, "Specification removed", nil)
}

// AssignManager handles POST /api/cars/{id}/manager
func (h *CarHandler) AssignManager(w http.ResponseWriter, r *http.Request) {
	carID := utils.ParseInt64(chi.URLParam(r, "id"))
	if carID == 0 {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	var req request.AssignManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.AssignManager(r.Context(), req.AdminID, carID); err != nil {
		handleServiceError(w, h.log, err, "assign manager")
		return
	}

	utils.ResponseSuccess(w, "Manager assigned", nil)
}

// Managed handles GET /api/admin/cars
func (h *CarHandler) Managed(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	response, err := h.service.ManagedCars(r.Context(), adminID)
	if err != nil {
		handleServiceError(w, h.log, err, "list managed cars")
		return
	}

	utils.ResponseSuccess(w, "Cars retrieved", response)
}

// History handles GET /api/cars/{id}/history
func (h *CarHandler) History(w http.ResponseWriter, r *http.Request) {
	carID := utils.ParseInt64(chi.URLParam(r, "id"))
	if carID == 0 {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	response, err := h.service.CarHistory(r.Context(), carID)
	if err != nil {
		handleServiceError(w, h.log, err, "get car history")
		return
	}

	utils.ResponseSuccess(w, "History retrieved", response)
}

// TopRented handles GET /api/cars/top-rented
func (h *CarHandler) TopRented(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 5)

	response, err := h.service.TopRentedCars(r.Context(), limit)
	if err != nil {
		handleServiceError(w, h.log, err, "get top rented cars")
		return
	}

	utils.ResponseSuccess(w, "Top rented cars retrieved", response)
}
