package wire

import (
	"food-marketplace/internal/adaptor"
	"food-marketplace/internal/data/repository"
	"food-marketplace/pkg/middleware"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", cartHandler.Get)
		r.Post("/", cartHandler.Add)
		r.Post("/decrease", cartHandler.Decrease)
		r.Get("/count", cartHandler.Count)
		r.Delete("/items/{id}", cartHandler.RemoveItem)
	})
}
