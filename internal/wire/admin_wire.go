package wire

import (
	"food-marketplace/internal/adaptor"
	"food-marketplace/internal/data/repository"
	"food-marketplace/pkg/middleware"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	vendorHandler *adaptor.VendorHandler,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES (require auth + admin role) ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// Restaurant registry
		r.Get("/vendors", vendorHandler.ListAdmin)
		r.Get("/vendors/{id}", vendorHandler.AdminDetail)
		r.Put("/vendors/{id}", vendorHandler.AdminUpdate)
		r.Delete("/vendors/{id}", vendorHandler.AdminDelete)
		r.Post("/vendors/{id}/approve", vendorHandler.Approve)
		r.Post("/vendors/{id}/disapprove", vendorHandler.Disapprove)

		// Marketplace tax configuration
		r.Post("/taxes", orderHandler.CreateTax)
		r.Get("/taxes", orderHandler.ListTaxes)
		r.Put("/taxes/{id}", orderHandler.UpdateTax)
		r.Delete("/taxes/{id}", orderHandler.DeleteTax)
	})
}
