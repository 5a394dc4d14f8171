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

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Checkout handles POST /api/orders/checkout (protected)
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Checkout(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "Order placed", resp)
}

// Pay handles POST /api/orders/pay (protected)
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PayOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Pay(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "pay order")
		return
	}

	utils.ResponseSuccess(w, "Payment successful", resp)
}

// MyOrders handles GET /api/orders (protected)
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	resp, err := h.service.MyOrders(r.Context(), userID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// OrderDetail handles GET /api/orders/{orderNumber} (protected)
func (h *OrderHandler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		utils.ResponseBadRequest(w, "Invalid order number", nil)
		return
	}

	resp, err := h.service.OrderDetail(r.Context(), userID, orderNumber)
	if err != nil {
		handleServiceError(h.log, w, err, "get order detail")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// VendorOrders handles GET /api/vendors/me/orders (protected, vendor role)
func (h *OrderHandler) VendorOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	resp, err := h.service.VendorOrders(r.Context(), userID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "list vendor orders")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// VendorOrderDetail handles GET /api/vendors/me/orders/{orderNumber} (protected, vendor role)
func (h *OrderHandler) VendorOrderDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		utils.ResponseBadRequest(w, "Invalid order number", nil)
		return
	}

	resp, err := h.service.VendorOrderDetail(r.Context(), userID, orderNumber)
	if err != nil {
		handleServiceError(h.log, w, err, "get vendor order detail")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// UpdateStatus handles PUT /api/vendors/me/orders/{orderNumber}/status (protected, vendor role)
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		utils.ResponseBadRequest(w, "Invalid order number", nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), userID, orderNumber, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated", resp)
}

// CreateTax handles POST /api/admin/taxes (protected, admin role)
func (h *OrderHandler) CreateTax(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateTax(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create tax")
		return
	}

	utils.ResponseCreated(w, "Tax created", resp)
}

// ListTaxes handles GET /api/admin/taxes (protected, admin role)
func (h *OrderHandler) ListTaxes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListTaxes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list taxes")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// UpdateTax handles PUT /api/admin/taxes/{id} (protected, admin role)
func (h *OrderHandler) UpdateTax(w http.ResponseWriter, r *http.Request) {
	taxID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid tax ID", nil)
		return
	}

	var req request.UpdateTaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.UpdateTax(r.Context(), taxID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update tax")
		return
	}

	utils.ResponseSuccess(w, "Tax updated", resp)
}

// DeleteTax handles DELETE /api/admin/taxes/{id} (protected, admin role)
func (h *OrderHandler) DeleteTax(w http.ResponseWriter, r *http.Request) {
	taxID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid tax ID", nil)
		return
	}

	if err := h.service.DeleteTax(r.Context(), taxID); err != nil {
		handleServiceError(h.log, w, err, "delete tax")
		return
	}

	utils.ResponseSuccess(w, "Tax deleted", nil)
}
