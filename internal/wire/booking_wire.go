package wire

import (
	"srent/internal/adaptor"
	"srent/internal/data/repository"
	"srent/pkg/middleware"
	"srent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Reserve a car (authenticated users only)
		r.Post("/api/bookings", bookingHandler.Create)

		// GET /api/bookings/my - Own booking history
		r.Get("/api/bookings/my", bookingHandler.GetMine)

		// Cancelling your own booking does not need the admin role.
		r.Post("/api/bookings/{id}/cancel", bookingHandler.CancelMine)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		r.Get("/", bookingHandler.List)               // GET /api/admin/bookings?status=
		r.Get("/user/{id}", bookingHandler.GetByUser) // GET /api/admin/bookings/user/{id}
		r.Get("/{id}", bookingHandler.GetByID)        // GET /api/admin/bookings/{id}
		r.Put("/{id}", bookingHandler.Update)         // PUT /api/admin/bookings/{id}
		r.Post("/{id}/cancel", bookingHandler.Cancel) // POST /api/admin/bookings/{id}/cancel
		r.Post("/{id}/finish", bookingHandler.Finish) // POST /api/admin/bookings/{id}/finish
	})
}
