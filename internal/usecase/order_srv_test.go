package usecase

import (
	"context"
	"strings"
	"testing"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func checkoutRequest(method string) *request.CheckoutRequest {
	return &request.CheckoutRequest{
		FirstName:     "Ana",
		LastName:      "Souza",
		Phone:         "11987654321",
		Email:         "ana@example.com",
		AddressLine1:  "Rua das Flores 100",
		City:          "Sao Paulo",
		State:         "SP",
		Country:       "Brazil",
		PostalCode:    "01001000",
		PaymentMethod: method,
	}
}

type orderTestEnv struct {
	cart     *fakeCartRepo
	taxes    *fakeTaxRepo
	orders   *fakeOrderRepo
	payments *fakePaymentRepo
	address  *fakeAddressRepo
	vendors  *fakeVendorRepo
	service  OrderService
}

func newOrderTestEnv() *orderTestEnv {
	cart := newFakeCartRepo()
	env := &orderTestEnv{
		cart:     cart,
		taxes:    &fakeTaxRepo{},
		orders:   newFakeOrderRepo(cart),
		payments: &fakePaymentRepo{},
		address:  newFakeAddressRepo(),
		vendors:  newFakeVendorRepo(),
	}
	repo := &repository.Repository{
		Cart:    env.cart,
		Tax:     env.taxes,
		Order:   env.orders,
		Payment: env.payments,
		Address: env.address,
		Vendor:  env.vendors,
	}
	env.service = NewOrderService(repo, zap.NewNop())
	return env
}

func TestCheckoutCash(t *testing.T) {
	env := newOrderTestEnv()
	userID := uuid.New()
	vendorID := uuid.New()

	env.cart.lines = []repository.CartLine{
		{CartItemID: uuid.New(), FoodItemID: uuid.New(), VendorID: vendorID, Title: "Feijoada", Price: 25.00, Quantity: 2},
		{CartItemID: uuid.New(), FoodItemID: uuid.New(), VendorID: vendorID, Title: "Guarana", Price: 5.00, Quantity: 2},
	}
	env.taxes.taxes = []*entity.Tax{
		{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, TaxType: "ICMS", Percentage: 10, IsActive: true},
	}

	resp, err := env.service.Checkout(context.Background(), userID, checkoutRequest("CASH"))
	if err != nil {
		t.Fatalf("Checkout() returned error: %v", err)
	}

	// Subtotal 60.00 plus 10% tax.
	if resp.OrderTotal != 66.00 {
		t.Errorf("Checkout() total = %v, expected 66.00", resp.OrderTotal)
	}
	if resp.Tax != 6.00 {
		t.Errorf("Checkout() tax = %v, expected 6.00", resp.Tax)
	}
	if len(resp.Items) != 2 {
		t.Errorf("Checkout() snapshotted %d items, expected 2", len(resp.Items))
	}

	order := env.orders.byNumber[resp.OrderNumber]
	if order == nil {
		t.Fatal("Checkout() did not persist the order")
	}
	// Cash orders are placed immediately, payment collected on delivery.
	if !order.IsOrdered {
		t.Error("cash checkout should place the order immediately")
	}
	if order.PaymentStatus != entity.PaymentStatusPending {
		t.Errorf("cash checkout payment status = %s, expected PENDING", order.PaymentStatus)
	}
	if len(env.payments.payments) != 1 {
		t.Fatalf("cash checkout recorded %d payments, expected 1", len(env.payments.payments))
	}
	if env.payments.payments[0].Status != entity.PaymentStatusPending {
		t.Errorf("cash payment status = %s, expected PENDING", env.payments.payments[0].Status)
	}

	// The cart is emptied by the checkout transaction.
	if lines, _ := env.cart.FindByUser(context.Background(), userID); len(lines) != 0 {
		t.Errorf("checkout left %d lines in the cart", len(lines))
	}
}

func TestCheckoutCardWaitsForPayment(t *testing.T) {
	env := newOrderTestEnv()
	userID := uuid.New()

	env.cart.lines = []repository.CartLine{
		{CartItemID: uuid.New(), FoodItemID: uuid.New(), VendorID: uuid.New(), Title: "Feijoada", Price: 25.00, Quantity: 1},
	}

	resp, err := env.service.Checkout(context.Background(), userID, checkoutRequest("CREDIT_CARD"))
	if err != nil {
		t.Fatalf("Checkout() returned error: %v", err)
	}

	order := env.orders.byNumber[resp.OrderNumber]
	if order.IsOrdered {
		t.Error("card checkout should hold the order until payment")
	}
	if len(env.payments.payments) != 0 {
		t.Errorf("card checkout recorded %d payments before paying", len(env.payments.payments))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newOrderTestEnv()

	_, err := env.service.Checkout(context.Background(), uuid.New(), checkoutRequest("CASH"))
	if err == nil || !strings.Contains(err.Error(), "cart is empty") {
		t.Errorf("Checkout() with empty cart = %v, expected cart is empty error", err)
	}
}

func TestCheckoutForeignAddress(t *testing.T) {
	env := newOrderTestEnv()
	userID := uuid.New()

	env.cart.lines = []repository.CartLine{
		{CartItemID: uuid.New(), FoodItemID: uuid.New(), VendorID: uuid.New(), Title: "Feijoada", Price: 25.00, Quantity: 1},
	}

	foreign := &entity.UserAddress{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		UserID:       uuid.New(),
	}
	env.address.byID[foreign.ID] = foreign

	req := checkoutRequest("CASH")
	id := foreign.ID.String()
	req.AddressID = &id

	_, err := env.service.Checkout(context.Background(), userID, req)
	if err == nil || !strings.Contains(err.Error(), "address not found") {
		t.Errorf("Checkout() with foreign address = %v, expected address not found", err)
	}
}

func TestPayConfirmsOrder(t *testing.T) {
	env := newOrderTestEnv()
	userID := uuid.New()

	env.cart.lines = []repository.CartLine{
		{CartItemID: uuid.New(), FoodItemID: uuid.New(), VendorID: uuid.New(), Title: "Feijoada", Price: 25.00, Quantity: 1},
	}
	placed, err := env.service.Checkout(context.Background(), userID, checkoutRequest("PIX"))
	if err != nil {
		t.Fatalf("Checkout() returned error: %v", err)
	}

	resp, err := env.service.Pay(context.Background(), userID, &request.PayOrderRequest{
		OrderNumber:   placed.OrderNumber,
		PaymentMethod: "PIX",
	})
	if err != nil {
		t.Fatalf("Pay() returned error: %v", err)
	}

	if resp.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("Pay() payment status = %s, expected PAID", resp.PaymentStatus)
	}
	if resp.Status != entity.OrderStatusConfirmed {
		t.Errorf("Pay() order status = %s, expected CONFIRMED", resp.Status)
	}

	order := env.orders.byNumber[placed.OrderNumber]
	if !order.IsOrdered {
		t.Error("Pay() should place the order")
	}
	if len(env.payments.payments) != 1 {
		t.Fatalf("Pay() recorded %d payments, expected 1", len(env.payments.payments))
	}
	payment := env.payments.payments[0]
	if payment.Status != entity.PaymentStatusPaid {
		t.Errorf("payment status = %s, expected PAID", payment.Status)
	}
	if payment.AmountPaid != order.OrderTotal {
		t.Errorf("payment amount = %v, expected order total %v", payment.AmountPaid, order.OrderTotal)
	}
	if !strings.HasPrefix(payment.PaymentID, "PIX_") {
		t.Errorf("payment reference = %q, expected PIX_ prefix", payment.PaymentID)
	}
}

func TestPayRejections(t *testing.T) {
	env := newOrderTestEnv()
	userID := uuid.New()

	env.cart.lines = []repository.CartLine{
		{CartItemID: uuid.New(), FoodItemID: uuid.New(), VendorID: uuid.New(), Title: "Feijoada", Price: 25.00, Quantity: 1},
	}
	placed, err := env.service.Checkout(context.Background(), userID, checkoutRequest("PIX"))
	if err != nil {
		t.Fatalf("Checkout() returned error: %v", err)
	}

	// Someone else's order number reads as not found.
	_, err = env.service.Pay(context.Background(), uuid.New(), &request.PayOrderRequest{
		OrderNumber:   placed.OrderNumber,
		PaymentMethod: "PIX",
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Pay() for foreign order = %v, expected not found", err)
	}

	if _, err := env.service.Pay(context.Background(), userID, &request.PayOrderRequest{
		OrderNumber:   placed.OrderNumber,
		PaymentMethod: "PIX",
	}); err != nil {
		t.Fatalf("Pay() returned error: %v", err)
	}

	// Paying twice is a conflict.
	_, err = env.service.Pay(context.Background(), userID, &request.PayOrderRequest{
		OrderNumber:   placed.OrderNumber,
		PaymentMethod: "PIX",
	})
	if err == nil || !strings.Contains(err.Error(), "already paid") {
		t.Errorf("second Pay() = %v, expected already paid", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	env := newOrderTestEnv()
	userID := uuid.New()
	vendorUserID := uuid.New()

	vendor := &entity.Vendor{
		Base:       entity.Base{ID: uuid.New()},
		UserID:     vendorUserID,
		Name:       "Trattoria",
		IsApproved: true,
	}
	env.vendors.byID[vendor.ID] = vendor

	env.cart.lines = []repository.CartLine{
		{CartItemID: uuid.New(), FoodItemID: uuid.New(), VendorID: vendor.ID, Title: "Feijoada", Price: 25.00, Quantity: 1},
	}
	placed, err := env.service.Checkout(context.Background(), userID, checkoutRequest("CASH"))
	if err != nil {
		t.Fatalf("Checkout() returned error: %v", err)
	}

	resp, err := env.service.UpdateStatus(context.Background(), vendorUserID, placed.OrderNumber, &request.UpdateOrderStatusRequest{
		Status: "CONFIRMED",
	})
	if err != nil {
		t.Fatalf("UpdateStatus() returned error: %v", err)
	}
	if resp.Status != entity.OrderStatusConfirmed {
		t.Errorf("UpdateStatus() status = %s, expected CONFIRMED", resp.Status)
	}

	// Skipping ahead in the flow is rejected.
	_, err = env.service.UpdateStatus(context.Background(), vendorUserID, placed.OrderNumber, &request.UpdateOrderStatusRequest{
		Status: "DELIVERED",
	})
	if err == nil || !strings.Contains(err.Error(), "cannot move order") {
		t.Errorf("UpdateStatus() skipping steps = %v, expected transition error", err)
	}

	// A restaurant not linked to the order cannot touch it.
	stranger := &entity.Vendor{
		Base:   entity.Base{ID: uuid.New()},
		UserID: uuid.New(),
	}
	env.vendors.byID[stranger.ID] = stranger
	_, err = env.service.UpdateStatus(context.Background(), stranger.UserID, placed.OrderNumber, &request.UpdateOrderStatusRequest{
		Status: "PREPARING",
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("UpdateStatus() by unrelated restaurant = %v, expected not found", err)
	}
}
