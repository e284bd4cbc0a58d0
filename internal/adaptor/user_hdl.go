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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetProfile handles GET /api/users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	response, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", response)
}

// GetByID handles GET /api/users/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID := utils.ParseInt64(chi.URLParam(r, "id"))
	if userID == 0 {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	response, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved", response)
}

// List handles GET /api/users with optional role and search queries.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		response any
		err      error
	)
	switch {
	case q.Get("search") != "":
		response, err = h.service.SearchUsers(r.Context(), q.Get("search"))
	case q.Get("role") == "admin":
		response, err = h.service.ListByRole(r.Context(), entity.RoleAdmin)
	case q.Get("role") == "customer", q.Get("role") == "":
		response, err = h.service.ListByRole(r.Context(), entity.RoleCustomer)
	default:
		utils.ResponseBadRequest(w, "Invalid role", nil)
		return
	}
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", response)
}

// Latest handles GET /api/users/latest
func (h *UserHandler) Latest(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	response, err := h.service.LatestUsers(r.Context(), limit)
	if err != nil {
		handleServiceError(w, h.log, err, "list latest users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", response)
}

// WithCardCount handles GET /api/users/card-counts
func (h *UserHandler) WithCardCount(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.UsersWithCardCount(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users with card count")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", response)
}

// AddCard handles POST /api/users/me/cards
func (h *UserHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	var req request.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.AddCard(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add card")
		return
	}

	utils.ResponseCreated(w, "Card added", response)
}

// UpdateCard handles PUT /api/users/me/cards/{id}
func (h *UserHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardID := utils.ParseInt64(chi.URLParam(r, "id"))
	if cardID == 0 {
		utils.ResponseBadRequest(w, "Invalid card ID", nil)
		return
	}

	var req request.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateCard(r.Context(), cardID, &req); err != nil {
		handleServiceError(w, h.log, err, "update card")
		return
	}

	utils.ResponseSuccess(w, "Card updated", nil)
}

// DeleteCard handles DELETE /api/users/me/cards/{id}
func (h *UserHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID := utils.ParseInt64(chi.URLParam(r, "id"))
	if cardID == 0 {
		utils.ResponseBadRequest(w, "Invalid card ID", nil)
		return
	}

	if err := h.service.DeleteCard(r.Context(), cardID); err != nil {
		handleServiceError(w, h.log, err, "delete card")
		return
	}

	utils.ResponseSuccess(w, "Card deleted", nil)
}

// GetCards handles GET /api/users/me/cards
func (h *UserHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	response, err := h.service.GetUserCards(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user cards")
		return
	}

	utils.ResponseSuccess(w, "Cards retrieved", response)
}
