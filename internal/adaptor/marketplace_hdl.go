package adaptor

import (
	"net/http"
	"strconv"

	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/usecase"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MarketplaceHandler struct {
	service usecase.MarketplaceService
	log     *zap.Logger
}

func NewMarketplaceHandler(service usecase.MarketplaceService, log *zap.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{
		service: service,
		log:     log.With(zap.String("handler", "marketplace")),
	}
}

// ListRestaurants handles GET /api/restaurants (public, optional auth)
func (h *MarketplaceHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListVendorsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Keyword: query.Get("keyword"),
	}

	// Favorites are only marked for logged-in callers.
	var userID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	resp, err := h.service.ListRestaurants(r.Context(), req, userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// RestaurantDetail handles GET /api/restaurants/{slug} (public)
func (h *MarketplaceHandler) RestaurantDetail(w http.ResponseWriter, r *http.Request) {
	vendorSlug := chi.URLParam(r, "slug")
	if vendorSlug == "" {
		utils.ResponseBadRequest(w, "Invalid restaurant slug", nil)
		return
	}

	resp, err := h.service.RestaurantDetail(r.Context(), vendorSlug)
	if err != nil {
		handleServiceError(h.log, w, err, "get restaurant detail")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// SearchFood handles GET /api/foods/search (public, optional auth)
func (h *MarketplaceHandler) SearchFood(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.SearchRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Keyword: query.Get("keyword"),
	}
	if favorites, err := strconv.ParseBool(query.Get("favorites_only")); err == nil {
		req.FavoritesOnly = favorites
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	// The favorites filter only works for logged-in callers.
	var userID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	resp, err := h.service.SearchFood(r.Context(), req, userID)
	if err != nil {
		handleServiceError(h.log, w, err, "search food")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// AddFavorite handles POST /api/favorites/{vendorID} (protected)
func (h *MarketplaceHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	vendorID, err := uuid.Parse(chi.URLParam(r, "vendorID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid vendor ID", nil)
		return
	}

	if err := h.service.AddFavorite(r.Context(), userID, vendorID); err != nil {
		handleServiceError(h.log, w, err, "add favorite")
		return
	}

	utils.ResponseSuccess(w, "Restaurant added to favorites", nil)
}

// RemoveFavorite handles DELETE /api/favorites/{vendorID} (protected)
func (h *MarketplaceHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	vendorID, err := uuid.Parse(chi.URLParam(r, "vendorID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid vendor ID", nil)
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), userID, vendorID); err != nil {
		handleServiceError(h.log, w, err, "remove favorite")
		return
	}

	utils.ResponseSuccess(w, "Restaurant removed from favorites", nil)
}

// ListFavorites handles GET /api/favorites (protected)
func (h *MarketplaceHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.ListFavorites(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}
