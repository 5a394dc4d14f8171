package wire

import (
	"food-marketplace/internal/adaptor"
	"food-marketplace/internal/data/repository"
	"food-marketplace/pkg/middleware"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVendor(
	r chi.Router,
	vendorHandler *adaptor.VendorHandler,
	menuHandler *adaptor.MenuHandler,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== VENDOR ROUTES (require auth + vendor role) ====================
	r.Route("/api/vendors", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Vendor(repo.User, log))

		// POST /api/vendors - Register restaurant (pending admin approval)
		r.Post("/", vendorHandler.Register)

		r.Route("/me", func(r chi.Router) {
			r.Get("/", vendorHandler.MyVendor)
			r.Put("/", vendorHandler.Update)
			r.Get("/dashboard", vendorHandler.Dashboard)

			// Menu categories
			r.Post("/categories", menuHandler.CreateCategory)
			r.Get("/categories", menuHandler.ListCategories)
			r.Put("/categories/{id}", menuHandler.UpdateCategory)
			r.Delete("/categories/{id}", menuHandler.DeleteCategory)

			// Food items
			r.Post("/foods", menuHandler.CreateFoodItem)
			r.Get("/foods", menuHandler.ListFoodItems)
			r.Put("/foods/{id}", menuHandler.UpdateFoodItem)
			r.Delete("/foods/{id}", menuHandler.DeleteFoodItem)

			// Incoming orders
			r.Get("/orders", orderHandler.VendorOrders)
			r.Get("/orders/{orderNumber}", orderHandler.VendorOrderDetail)
			r.Put("/orders/{orderNumber}/status", orderHandler.UpdateStatus)
		})
	})
}
