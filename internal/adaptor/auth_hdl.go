package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"srent/internal/dto/request"
	"srent/internal/usecase"
	"srent/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// RegisterCustomer handles POST /api/register
func (h *AuthHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.RegisterCustomer(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register customer")
		return
	}

	utils.ResponseCreated(w, "Registration successful", response)
}

// RegisterAdmin handles POST /api/admin/register
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterAdminRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.RegisterAdmin(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register admin")
		return
	}

	utils.ResponseCreated(w, "Registration successful", response)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		utils.ResponseBadRequest(w, "No token provided", nil)
		return
	}

	token, err := uuid.Parse(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid token format", nil)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}
