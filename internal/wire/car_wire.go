package wire

import (
	"srent/internal/adaptor"
	"srent/internal/data/repository"
	"srent/pkg/middleware"
	"srent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCar(
	r chi.Router,
	carHandler *adaptor.CarHandler,
	specHandler *adaptor.SpecificationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing the fleet needs no session.
	r.Get("/api/cars", carHandler.List)
	r.Get("/api/cars/filter", carHandler.Filter)
	r.Get("/api/cars/top-rented", carHandler.TopRented)
	r.Get("/api/cars/{id}", carHandler.GetByID)
	r.Get("/api/cars/{id}/availability", carHandler.Availability)
	r.Get("/api/cars/{id}/specifications", specHandler.ForCar)
	r.Get("/api/specifications", specHandler.List)
	r.Get("/api/specifications/{id}", specHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/cars", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		r.Get("/", carHandler.Managed)             // GET /api/admin/cars
		r.Post("/", carHandler.Create)             // POST /api/admin/cars
		r.Put("/{id}", carHandler.Update)          // PUT /api/admin/cars/{id}
		r.Delete("/{id}", carHandler.Delete)       // DELETE /api/admin/cars/{id}
		r.Get("/{id}/history", carHandler.History) // GET /api/admin/cars/{id}/history

		r.Post("/{id}/manager", carHandler.AssignManager)
		r.Post("/{id}/specifications", carHandler.AssignSpecification)
		r.Delete("/{id}/specifications/{specID}", carHandler.RemoveSpecification)
	})

	r.Route("/api/admin/specifications", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		r.Post("/", specHandler.Create)
		r.Put("/{id}", specHandler.Update)
		r.Delete("/{id}", specHandler.Delete)
	})
}
