package wire

import (
	"food-marketplace/internal/adaptor"
	"food-marketplace/internal/data/repository"
	"food-marketplace/pkg/middleware"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMarketplace(
	r chi.Router,
	marketplaceHandler *adaptor.MarketplaceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The listing marks favorites and the search supports a
	// favorites-only filter for logged-in callers, so both run behind
	// the optional session middleware.
	r.With(middleware.OptionalAuthSession(repo.Session, log)).
		Get("/api/restaurants", marketplaceHandler.ListRestaurants)
	r.With(middleware.OptionalAuthSession(repo.Session, log)).
		Get("/api/foods/search", marketplaceHandler.SearchFood)

	r.Get("/api/restaurants/{slug}", marketplaceHandler.RestaurantDetail)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/favorites", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", marketplaceHandler.ListFavorites)
		r.Post("/{vendorID}", marketplaceHandler.AddFavorite)
		r.Delete("/{vendorID}", marketplaceHandler.RemoveFavorite)
	})
}
