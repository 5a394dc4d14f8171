package adaptor

import (
	"net/http"

	"food-marketplace/internal/usecase"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	service usecase.InvoiceService
	log     *zap.Logger
}

func NewInvoiceHandler(service usecase.InvoiceService, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "invoice")),
	}
}

// Generate handles POST /api/orders/{orderNumber}/invoice (protected)
func (h *InvoiceHandler) Generate(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.service.Generate(r.Context(), userID, orderNumber)
	if err != nil {
		handleServiceError(h.log, w, err, "generate invoice")
		return
	}

	utils.ResponseCreated(w, "Invoice issued", resp)
}

// List handles GET /api/invoices (protected)
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list invoices")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Download handles GET /api/invoices/{invoiceNumber}/pdf (protected)
func (h *InvoiceHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	invoiceNumber := chi.URLParam(r, "invoiceNumber")
	if invoiceNumber == "" {
		utils.ResponseBadRequest(w, "Invalid invoice number", nil)
		return
	}

	path, err := h.service.PDFPath(r.Context(), userID, invoiceNumber)
	if err != nil {
		handleServiceError(h.log, w, err, "download invoice")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+invoiceNumber+`.pdf"`)
	http.ServeFile(w, r, path)
}
