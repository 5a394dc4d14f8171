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

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// CreateCategory handles POST /api/vendors/me/categories (protected, vendor role)
func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateCategory(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created", resp)
}

// ListCategories handles GET /api/vendors/me/categories (protected, vendor role)
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.ListCategories(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// UpdateCategory handles PUT /api/vendors/me/categories/{id} (protected, vendor role)
func (h *MenuHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	var req request.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateCategory(r.Context(), userID, categoryID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated", resp)
}

// DeleteCategory handles DELETE /api/vendors/me/categories/{id} (protected, vendor role)
func (h *MenuHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		handleServiceError(h.log, w, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted", nil)
}

// CreateFoodItem handles POST /api/vendors/me/foods (protected, vendor role)
func (h *MenuHandler) CreateFoodItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateFoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateFoodItem(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create food item")
		return
	}

	utils.ResponseCreated(w, "Food item created", resp)
}

// ListFoodItems handles GET /api/vendors/me/foods (protected, vendor role)
func (h *MenuHandler) ListFoodItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.ListFoodItems(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list food items")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// UpdateFoodItem handles PUT /api/vendors/me/foods/{id} (protected, vendor role)
func (h *MenuHandler) UpdateFoodItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	foodItemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid food item ID", nil)
		return
	}

	var req request.UpdateFoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateFoodItem(r.Context(), userID, foodItemID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update food item")
		return
	}

	utils.ResponseSuccess(w, "Food item updated", resp)
}

// DeleteFoodItem handles DELETE /api/vendors/me/foods/{id} (protected, vendor role)
func (h *MenuHandler) DeleteFoodItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	foodItemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid food item ID", nil)
		return
	}

	if err := h.service.DeleteFoodItem(r.Context(), userID, foodItemID); err != nil {
		handleServiceError(h.log, w, err, "delete food item")
		return
	}

	utils.ResponseSuccess(w, "Food item deleted", nil)
}
