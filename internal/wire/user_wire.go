package wire

import (
	"srent/internal/adaptor"
	"srent/internal/data/repository"
	"srent/pkg/middleware"
	"srent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// Own profile and payment cards
		r.Get("/api/users/me", userHandler.GetProfile)
		r.Get("/api/users/me/cards", userHandler.GetCards)
		r.Post("/api/users/me/cards", userHandler.AddCard)
		r.Put("/api/users/me/cards/{id}", userHandler.UpdateCard)
		r.Delete("/api/users/me/cards/{id}", userHandler.DeleteCard)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		r.Get("/", userHandler.List)                      // GET /api/admin/users?role=&search=
		r.Get("/latest", userHandler.Latest)              // GET /api/admin/users/latest
		r.Get("/card-counts", userHandler.WithCardCount)  // GET /api/admin/users/card-counts
		r.Get("/{id}", userHandler.GetByID)               // GET /api/admin/users/{id}
	})
}
