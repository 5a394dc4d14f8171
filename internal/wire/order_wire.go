package wire

import (
	"food-marketplace/internal/adaptor"
	"food-marketplace/internal/data/repository"
	"food-marketplace/pkg/middleware"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	invoiceHandler *adaptor.InvoiceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/orders/checkout - Place order from the cart
		r.Post("/checkout", orderHandler.Checkout)

		// POST /api/orders/pay - Pay a placed order
		r.Post("/pay", orderHandler.Pay)

		r.Get("/", orderHandler.MyOrders)
		r.Get("/{orderNumber}", orderHandler.OrderDetail)

		// POST /api/orders/{orderNumber}/invoice - Issue invoice for a paid order
		r.Post("/{orderNumber}/invoice", invoiceHandler.Generate)
	})

	r.Route("/api/invoices", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", invoiceHandler.List)
		r.Get("/{invoiceNumber}/pdf", invoiceHandler.Download)
	})
}
