package wire

import (
	"srent/internal/adaptor"
	"srent/internal/data/repository"
	"srent/pkg/middleware"
	"srent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.RegisterCustomer)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/logout", authHandler.Logout)
	})

	// ==================== ADMIN ROUTES ====================
	// Registering another admin requires an admin session.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/register", authHandler.RegisterAdmin)
	})
}
