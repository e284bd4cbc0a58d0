package adaptor

import (
	"encoding/json"
	"net/http"

	"srent/internal/dto/request"
	"srent/internal/usecase"
	"srent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SpecificationHandler struct {
	service usecase.SpecificationService
	log     *zap.Logger
}

func NewSpecificationHandler(service usecase.SpecificationService, log *zap.Logger) *SpecificationHandler {
	return &SpecificationHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/specifications
func (h *SpecificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.SpecificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateSpecification(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create specification")
		return
	}

	utils.ResponseCreated(w, "Specification created", response)
}

// Update handles PUT /api/specifications/{id}
func (h *SpecificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	specID := utils.ParseInt64(chi.URLParam(r, "id"))
	if specID == 0 {
		utils.ResponseBadRequest(w, "Invalid specification ID", nil)
		return
	}

	var req request.SpecificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateSpecification(r.Context(), specID, &req); err != nil {
		handleServiceError(w, h.log, err, "update specification")
		return
	}

	utils.ResponseSuccess(w, "Specification updated", nil)
}

// Delete handles DELETE /api/specifications/{id}
func (h *SpecificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	specID := utils.ParseInt64(chi.URLParam(r, "id"))
	if specID == 0 {
		utils.ResponseBadRequest(w, "Invalid specification ID", nil)
		return
	}

	if err := h.service.DeleteSpecification(r.Context(), specID); err != nil {
		handleServiceError(w, h.log, err, "delete specification")
		return
	}

	utils.ResponseSuccess(w, "Specification deleted", nil)
}

// GetByID handles GET /api/specifications/{id}
func (h *SpecificationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	specID := utils.ParseInt64(chi.URLParam(r, "id"))
	if specID == 0 {
		utils.ResponseBadRequest(w, "Invalid specification ID", nil)
		return
	}

	response, err := h.service.GetSpecification(r.Context(), specID)
	if err != nil {
		handleServiceError(w, h.log, err, "get specification")
		return
	}

	utils.ResponseSuccess(w, "Specification retrieved", response)
}

// List handles GET /api/specifications
func (h *SpecificationHandler) List(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListSpecifications(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list specifications")
		return
	}

	utils.ResponseSuccess(w, "Specifications retrieved", response)
}

// ForCar handles GET /api/cars/{id}/specifications
func (h *SpecificationHandler) ForCar(w http.ResponseWriter, r *http.Request) {
	carID := utils.ParseInt64(chi.URLParam(r, "id"))
	if carID == 0 {
		utils.ResponseBadRequest(w, "Invalid car ID", nil)
		return
	}

	response, err := h.service.SpecificationsForCar(r.Context(), carID)
	if err != nil {
		handleServiceError(w, h.log, err, "get car specifications")
		return
	}

	utils.ResponseSuccess(w, "Specifications retrieved", response)
}
