package adaptor

import (
	"net/http"
	"strings"

	"food-marketplace/internal/usecase"
	"food-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Vendor      *VendorHandler
	Menu        *MenuHandler
	Cart        *CartHandler
	Marketplace *MarketplaceHandler
	Order       *OrderHandler
	Invoice     *InvoiceHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Vendor:      NewVendorHandler(service.Vendor, log),
		Menu:        NewMenuHandler(service.Menu, log),
		Cart:        NewCartHandler(service.Cart, log),
		Marketplace: NewMarketplaceHandler(service.Marketplace, log),
		Order:       NewOrderHandler(service.Order, log),
		Invoice:     NewInvoiceHandler(service.Invoice, log),
	}
}

// handleServiceError maps service error messages onto HTTP statuses.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "login required"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "too many attempts"):
		log.Warn(operation+" failed - locked out", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "deactivated"),
		strings.Contains(errMsg, "not a vendor account"):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "cart is empty"),
		strings.Contains(errMsg, "cannot move"),
		strings.Contains(errMsg, "not paid"),
		strings.Contains(errMsg, "still has"),
		strings.Contains(errMsg, "not available"),
		strings.Contains(errMsg, "is cancelled"),
		strings.Contains(errMsg, "complete your profile"):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
