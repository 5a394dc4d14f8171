package usecase

import (
	"context"
	"strings"
	"testing"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type invoiceTestEnv struct {
	orders   *fakeOrderRepo
	invoices *fakeInvoiceRepo
	service  InvoiceService
}

func newInvoiceTestEnv(t *testing.T) *invoiceTestEnv {
	env := &invoiceTestEnv{orders: newFakeOrderRepo(nil)}
	env.invoices = newFakeInvoiceRepo(env.orders)
	repo := &repository.Repository{
		Order:   env.orders,
		Invoice: env.invoices,
	}
	config := &utils.Config{Media: utils.MediaConfig{Root: t.TempDir()}}
	env.service = NewInvoiceService(repo, config, zap.NewNop())
	return env
}

// seedOrder stores a placed order with a single line item.
func (env *invoiceTestEnv) seedOrder(userID uuid.UUID, orderNumber string, paymentStatus entity.PaymentStatus) *entity.Order {
	order := &entity.Order{
		Base:          entity.Base{ID: uuid.New()},
		OrderNumber:   orderNumber,
		UserID:        userID,
		FirstName:     "Maria",
		LastName:      "Silva",
		Phone:         "555-0100",
		Email:         "maria@example.com",
		AddressLine1:  "12 Harbour Road",
		City:          "Porto",
		State:         "Porto",
		Country:       "PT",
		PostalCode:    "4000-123",
		OrderTotal:    33.0,
		Tax:           3.0,
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: paymentStatus,
		IsOrdered:     true,
	}
	env.orders.byNumber[order.OrderNumber] = order
	env.orders.items[order.ID] = []*entity.OrderItem{
		{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
			OrderID:      order.ID,
			FoodItemID:   uuid.New(),
			FoodTitle:    "Francesinha",
			Quantity:     2,
			Price:        15.0,
			Amount:       30.0,
		},
	}
	return order
}

func TestGenerateInvoiceRequiresPaidOrder(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()

	testCases := []struct {
		name          string
		paymentStatus entity.PaymentStatus
		caller        uuid.UUID
		orderNumber   string
		expectErr     string
	}{
		{
			name:          "unpaid order is refused",
			paymentStatus: entity.PaymentStatusPending,
			caller:        userID,
			orderNumber:   "2026090112345",
			expectErr:     "order is not paid",
		},
		{
			name:          "another user's order stays hidden",
			paymentStatus: entity.PaymentStatusPaid,
			caller:        otherID,
			orderNumber:   "2026090112345",
			expectErr:     "order not found",
		},
		{
			name:          "unknown order number",
			paymentStatus: entity.PaymentStatusPaid,
			caller:        userID,
			orderNumber:   "2026090199999",
			expectErr:     "order not found",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			env := newInvoiceTestEnv(t)
			env.seedOrder(userID, "2026090112345", tt.paymentStatus)

			_, err := env.service.Generate(context.Background(), tt.caller, tt.orderNumber)
			if err == nil || !strings.Contains(err.Error(), tt.expectErr) {
				t.Errorf("Generate() error = %v, expected to contain %q", err, tt.expectErr)
			}
			if len(env.invoices.invoices) != 0 {
				t.Errorf("Generate() stored %d invoices, expected 0", len(env.invoices.invoices))
			}
		})
	}
}

func TestGenerateInvoiceIdempotent(t *testing.T) {
	env := newInvoiceTestEnv(t)
	userID := uuid.New()
	env.seedOrder(userID, "2026090154321", entity.PaymentStatusPaid)

	first, err := env.service.Generate(context.Background(), userID, "2026090154321")
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}
	if !strings.HasPrefix(first.InvoiceNumber, "NF-") {
		t.Errorf("Generate() invoice number = %q, expected NF- prefix", first.InvoiceNumber)
	}

	second, err := env.service.Generate(context.Background(), userID, "2026090154321")
	if err != nil {
		t.Fatalf("Generate() second call returned error: %v", err)
	}

	if second.InvoiceNumber != first.InvoiceNumber {
		t.Errorf("Generate() second call invoice number = %q, expected %q", second.InvoiceNumber, first.InvoiceNumber)
	}
	if len(env.invoices.invoices) != 1 {
		t.Errorf("Generate() stored %d invoices, expected 1", len(env.invoices.invoices))
	}
}

func TestInvoicePDFPathOwnership(t *testing.T) {
	env := newInvoiceTestEnv(t)
	userID := uuid.New()
	env.seedOrder(userID, "2026090167890", entity.PaymentStatusPaid)

	resp, err := env.service.Generate(context.Background(), userID, "2026090167890")
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}

	if _, err := env.service.PDFPath(context.Background(), uuid.New(), resp.InvoiceNumber); err == nil ||
		!strings.Contains(err.Error(), "invoice not found") {
		t.Errorf("PDFPath() error = %v, expected to contain %q", err, "invoice not found")
	}

	path, err := env.service.PDFPath(context.Background(), userID, resp.InvoiceNumber)
	if err != nil {
		t.Fatalf("PDFPath() returned error: %v", err)
	}
	if path == "" {
		t.Error("PDFPath() returned an empty path")
	}
}
