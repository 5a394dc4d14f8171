package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/usecase"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VendorHandler struct {
	service usecase.VendorService
	log     *zap.Logger
}

func NewVendorHandler(service usecase.VendorService, log *zap.Logger) *VendorHandler {
	return &VendorHandler{
		service: service,
		log:     log.With(zap.String("handler", "vendor")),
	}
}

// Register handles POST /api/vendors (protected, vendor role)
func (h *VendorHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.RegisterVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register restaurant")
		return
	}

	utils.ResponseCreated(w, "Restaurant registered, pending approval", resp)
}

// MyVendor handles GET /api/vendors/me (protected, vendor role)
func (h *VendorHandler) MyVendor(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.MyVendor(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/vendors/me (protected, vendor role)
func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateVendorRequest
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
		handleServiceError(h.log, w, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant updated", resp)
}

// Dashboard handles GET /api/vendors/me/dashboard (protected, vendor role)
func (h *VendorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
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

// ListAdmin handles GET /api/admin/vendors (protected, admin role)
func (h *VendorHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListVendorsRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Keyword: query.Get("keyword"),
	}
	if raw := query.Get("is_approved"); raw != "" {
		approved, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid is_approved filter", nil)
			return
		}
		req.IsApproved = &approved
	}

	resp, err := h.service.ListAdmin(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// AdminDetail handles GET /api/admin/vendors/{id} (protected, admin role)
func (h *VendorHandler) AdminDetail(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid vendor ID", nil)
		return
	}

	resp, err := h.service.AdminDetail(r.Context(), vendorID)
	if err != nil {
		handleServiceError(h.log, w, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// AdminUpdate handles PUT /api/admin/vendors/{id} (protected, admin role)
func (h *VendorHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid vendor ID", nil)
		return
	}

	var req request.UpdateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.AdminUpdate(r.Context(), vendorID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant updated", resp)
}

// AdminDelete handles DELETE /api/admin/vendors/{id} (protected, admin role)
func (h *VendorHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid vendor ID", nil)
		return
	}

	if err := h.service.AdminDelete(r.Context(), vendorID); err != nil {
		handleServiceError(h.log, w, err, "delete restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant deleted", nil)
}

// Approve handles POST /api/admin/vendors/{id}/approve (protected, admin role)
func (h *VendorHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, true)
}

// Disapprove handles POST /api/admin/vendors/{id}/disapprove (protected, admin role)
func (h *VendorHandler) Disapprove(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, false)
}

func (h *VendorHandler) setApproval(w http.ResponseWriter, r *http.Request, approved bool) {
	vendorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid vendor ID", nil)
		return
	}

	resp, err := h.service.SetApproval(r.Context(), vendorID, approved)
	if err != nil {
		handleServiceError(h.log, w, err, "set approval")
		return
	}

	message := "Restaurant approved"
	if !approved {
		message = "Restaurant disapproved"
	}
	utils.ResponseSuccess(w, message, resp)
}
