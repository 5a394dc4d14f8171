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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Me handles GET /api/users/me (protected)
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Me(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get account")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/users/me (protected)
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update account")
		return
	}

	utils.ResponseSuccess(w, "Account updated", resp)
}

// CompleteProfile handles POST /api/users/me/complete (protected)
func (h *UserHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CompleteProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CompleteProfile(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "complete profile")
		return
	}

	utils.ResponseSuccess(w, "Profile completed", resp)
}

// GetProfile handles GET /api/users/me/profile (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// UpdateProfile handles PUT /api/users/me/profile (protected)
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", resp)
}

// CreateAddress handles POST /api/users/me/addresses (protected)
func (h *UserHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateAddress(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create address")
		return
	}

	utils.ResponseCreated(w, "Address created", resp)
}

// ListAddresses handles GET /api/users/me/addresses (protected)
func (h *UserHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.ListAddresses(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list addresses")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// UpdateAddress handles PUT /api/users/me/addresses/{id} (protected)
func (h *UserHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	addressID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid address ID", nil)
		return
	}

	var req request.UpdateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateAddress(r.Context(), userID, addressID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update address")
		return
	}

	utils.ResponseSuccess(w, "Address updated", resp)
}

// DeleteAddress handles DELETE /api/users/me/addresses/{id} (protected)
func (h *UserHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	addressID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid address ID", nil)
		return
	}

	if err := h.service.DeleteAddress(r.Context(), userID, addressID); err != nil {
		handleServiceError(h.log, w, err, "delete address")
		return
	}

	utils.ResponseSuccess(w, "Address deleted", nil)
}

// SetDefaultAddress handles POST /api/users/me/addresses/{id}/default (protected)
func (h *UserHandler) SetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	addressID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid address ID", nil)
		return
	}

	if err := h.service.SetDefaultAddress(r.Context(), userID, addressID); err != nil {
		handleServiceError(h.log, w, err, "set default address")
		return
	}

	utils.ResponseSuccess(w, "Default address updated", nil)
}

// Dashboard handles GET /api/users/me/dashboard (protected)
func (h *UserHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "load dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// DeleteAccount handles DELETE /api/users/me (protected)
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		handleServiceError(h.log, w, err, "delete account")
		return
	}

	utils.ResponseSuccess(w, "Account deleted", nil)
}
