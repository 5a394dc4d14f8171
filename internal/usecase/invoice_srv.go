package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/response"
	"food-marketplace/pkg/pdfgen"
	"food-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceService interface {
	Generate(ctx context.Context, userID uuid.UUID, orderNumber string) (*response.InvoiceResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]response.InvoiceResponse, error)
	PDFPath(ctx context.Context, userID uuid.UUID, invoiceNumber string) (string, error)
}

type invoiceService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewInvoiceService(repo *repository.Repository, config *utils.Config, log *zap.Logger) InvoiceService {
	return &invoiceService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// Generate issues the invoice for a paid order. Calling it again for
// the same order returns the existing invoice.
func (s *invoiceService) Generate(ctx context.Context, userID uuid.UUID, orderNumber string) (*response.InvoiceResponse, error) {
	// 1. The order must be the caller's and settled
	order, err := s.findPaidOrder(ctx, userID, orderNumber)
	if err != nil {
		return nil, err
	}

	// 2. Idempotent per order
	existing, err := s.repo.Invoice.FindByOrder(ctx, order.ID)
	if err != nil {
		s.log.Error("Failed to check invoice", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("failed to generate invoice")
	}
	if existing != nil {
		resp := response.InvoiceToResponse(existing)
		return &resp, nil
	}

	invoice := &entity.Invoice{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		OrderID:       order.ID,
		InvoiceNumber: utils.GenerateInvoiceNumber(order.OrderNumber),
	}

	if err := s.repo.Invoice.Create(ctx, invoice); err != nil {
		s.log.Error("Failed to create invoice", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("failed to generate invoice")
	}

	// 3. Render the document; the record survives a failed render
	if path, err := s.renderPDF(ctx, order, invoice); err != nil {
		s.log.Warn("Failed to render invoice PDF",
			zap.Error(err), zap.String("invoice_number", invoice.InvoiceNumber))
	} else {
		invoice.PDFFile = &path
	}

	s.log.Info("Invoice generated",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("order_number", orderNumber))

	resp := response.InvoiceToResponse(invoice)
	return &resp, nil
}

func (s *invoiceService) List(ctx context.Context, userID uuid.UUID) ([]response.InvoiceResponse, error) {
	invoices, err := s.repo.Invoice.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list invoices", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list invoices")
	}

	result := make([]response.InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		result = append(result, response.InvoiceToResponse(invoice))
	}

	return result, nil
}

// PDFPath returns the on-disk location of the invoice document,
// rendering it on first access.
func (s *invoiceService) PDFPath(ctx context.Context, userID uuid.UUID, invoiceNumber string) (string, error) {
	invoice, err := s.repo.Invoice.FindByNumber(ctx, invoiceNumber)
	if err != nil {
		s.log.Error("Failed to find invoice", zap.Error(err), zap.String("invoice_number", invoiceNumber))
		return "", fmt.Errorf("failed to load invoice")
	}
	if invoice == nil {
		return "", fmt.Errorf("invoice not found")
	}

	order, err := s.repo.Order.FindByID(ctx, invoice.OrderID)
	if err != nil {
		s.log.Error("Failed to find invoice order", zap.Error(err), zap.String("invoice_number", invoiceNumber))
		return "", fmt.Errorf("failed to load invoice")
	}
	if order == nil || order.UserID != userID {
		return "", fmt.Errorf("invoice not found")
	}

	if invoice.PDFFile != nil {
		return filepath.Join(s.config.Media.Root, *invoice.PDFFile), nil
	}

	path, err := s.renderPDF(ctx, order, invoice)
	if err != nil {
		s.log.Error("Failed to render invoice PDF",
			zap.Error(err), zap.String("invoice_number", invoiceNumber))
		return "", fmt.Errorf("failed to render invoice")
	}

	return filepath.Join(s.config.Media.Root, path), nil
}

// ==================== HELPER METHODS ====================

func (s *invoiceService) findPaidOrder(ctx context.Context, userID uuid.UUID, orderNumber string) (*entity.Order, error) {
	order, err := s.repo.Order.FindByNumber(ctx, orderNumber)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil || order.UserID != userID {
		return nil, fmt.Errorf("order not found")
	}
	if order.PaymentStatus != entity.PaymentStatusPaid {
		return nil, fmt.Errorf("order is not paid")
	}
	return order, nil
}

// renderPDF writes the document and records its location.
func (s *invoiceService) renderPDF(ctx context.Context, order *entity.Order, invoice *entity.Invoice) (string, error) {
	items, err := s.repo.Order.FindItems(ctx, order.ID)
	if err != nil {
		return "", fmt.Errorf("load order items: %w", err)
	}

	data := pdfgen.InvoiceData{
		InvoiceNumber: invoice.InvoiceNumber,
		OrderNumber:   order.OrderNumber,
		IssuedAt:      invoice.CreatedAt,
		CustomerName:  fmt.Sprintf("%s %s", order.FirstName, order.LastName),
		CustomerEmail: order.Email,
		CustomerPhone: order.Phone,
		AddressLines: []string{
			order.AddressLine1,
			order.AddressLine2,
			fmt.Sprintf("%s - %s, %s", order.City, order.State, order.Country),
			order.PostalCode,
		},
		Subtotal: roundMoney(order.OrderTotal - order.Tax),
		Tax:      order.Tax,
		Total:    order.OrderTotal,
	}
	for _, item := range items {
		data.Items = append(data.Items, pdfgen.InvoiceLine{
			Title:    item.FoodTitle,
			Quantity: item.Quantity,
			Price:    item.Price,
			Amount:   item.Amount,
		})
	}

	path, err := pdfgen.WriteInvoicePDF(s.config.Media.Root, data)
	if err != nil {
		return "", err
	}

	if err := s.repo.Invoice.SetPDFFile(ctx, invoice.ID, path); err != nil {
		s.log.Warn("Failed to record invoice PDF path",
			zap.Error(err), zap.String("invoice_number", invoice.InvoiceNumber))
	}
	invoice.PDFFile = &path

	return path, nil
}
