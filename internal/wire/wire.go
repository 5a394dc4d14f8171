// internal/wire/wire.go
package wire

import (
	"net/http"

	"food-marketplace/internal/adaptor"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/usecase"
	"food-marketplace/pkg/mailer"
	"food-marketplace/pkg/middleware"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireVendor(r, handler.Vendor, handler.Menu, handler.Order, repo, config, logger)
	wireMarketplace(r, handler.Marketplace, repo, config, logger)
	wireCart(r, handler.Cart, repo, config, logger)
	wireOrder(r, handler.Order, handler.Invoice, repo, config, logger)
	wireAdmin(r, handler.Vendor, handler.Order, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
