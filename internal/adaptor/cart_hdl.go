package adaptor

import (
	"encoding/json"
	"net/http"

	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/usecase"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// Add handles POST /api/cart (protected)
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Add(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add to cart")
		return
	}

	utils.ResponseSuccess(w, "Item added to cart", resp)
}

// Decrease handles POST /api/cart/decrease (protected)
func (h *CartHandler) Decrease(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.DecreaseCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Decrease(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "decrease cart item")
		return
	}

	if resp == nil {
		utils.ResponseSuccess(w, "Item removed from cart", nil)
		return
	}
	utils.ResponseSuccess(w, "Cart item updated", resp)
}

// RemoveItem handles DELETE /api/cart/items/{id} (protected)
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cartItemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid cart item ID", nil)
		return
	}

	if err := h.service.RemoveItem(r.Context(), userID, cartItemID); err != nil {
		handleServiceError(h.log, w, err, "remove cart item")
		return
	}

	utils.ResponseSuccess(w, "Item removed from cart", nil)
}

// Get handles GET /api/cart (protected)
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Count handles GET /api/cart/count (protected)
func (h *CartHandler) Count(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	count, err := h.service.Count(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "count cart items")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]int64{"count": count})
}
