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

func TestRoundMoney(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "rounds down below half a cent", value: 10.004, expected: 10.00},
		{name: "rounds up above half a cent", value: 10.006, expected: 10.01},
		{name: "keeps exact cents", value: 3.14, expected: 3.14},
		{name: "handles zero", value: 0, expected: 0},
		{name: "truncates long fractions", value: 19.9999, expected: 20.00},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if result := roundMoney(tt.value); result != tt.expected {
				t.Errorf("roundMoney(%v) = %v, expected %v", tt.value, result, tt.expected)
			}
		})
	}
}

func TestTaxBreakdown(t *testing.T) {
	taxes := []*entity.Tax{
		{TaxType: "ICMS", Percentage: 10},
		{TaxType: "Service", Percentage: 5.5},
	}

	lines, total := taxBreakdown(100, taxes)

	if len(lines) != 2 {
		t.Fatalf("taxBreakdown() returned %d lines, expected 2", len(lines))
	}
	if lines[0].Amount != 10.00 {
		t.Errorf("ICMS amount = %v, expected 10.00", lines[0].Amount)
	}
	if lines[1].Amount != 5.50 {
		t.Errorf("Service amount = %v, expected 5.50", lines[1].Amount)
	}
	if total != 15.50 {
		t.Errorf("taxBreakdown() total = %v, expected 15.50", total)
	}
}

func TestTaxBreakdownNoTaxes(t *testing.T) {
	lines, total := taxBreakdown(42.50, nil)

	if len(lines) != 0 {
		t.Errorf("taxBreakdown() returned %d lines, expected none", len(lines))
	}
	if total != 0 {
		t.Errorf("taxBreakdown() total = %v, expected 0", total)
	}
}

func newCartServiceForTest(cart *fakeCartRepo, taxes *fakeTaxRepo, foods *fakeFoodRepo, vendors *fakeVendorRepo) CartService {
	repo := &repository.Repository{
		Cart:   cart,
		Tax:    taxes,
		Food:   foods,
		Vendor: vendors,
	}
	return NewCartService(repo, zap.NewNop())
}

func TestCartGetTotals(t *testing.T) {
	cart := newFakeCartRepo()
	cart.lines = []repository.CartLine{
		{CartItemID: uuid.New(), FoodItemID: uuid.New(), Title: "Margherita", Price: 12.50, Quantity: 2},
		{CartItemID: uuid.New(), FoodItemID: uuid.New(), Title: "Lemonade", Price: 5.00, Quantity: 1},
	}
	taxes := &fakeTaxRepo{taxes: []*entity.Tax{
		{TaxType: "ICMS", Percentage: 10, IsActive: true},
		{TaxType: "Old levy", Percentage: 50, IsActive: false},
	}}

	service := newCartServiceForTest(cart, taxes, newFakeFoodRepo(), newFakeVendorRepo())

	resp, err := service.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}

	if len(resp.Items) != 2 {
		t.Fatalf("Get() returned %d items, expected 2", len(resp.Items))
	}
	if resp.Subtotal != 30.00 {
		t.Errorf("Get() subtotal = %v, expected 30.00", resp.Subtotal)
	}
	// Only the active tax applies.
	if len(resp.Taxes) != 1 {
		t.Fatalf("Get() applied %d taxes, expected 1", len(resp.Taxes))
	}
	if resp.TaxTotal != 3.00 {
		t.Errorf("Get() tax total = %v, expected 3.00", resp.TaxTotal)
	}
	if resp.Total != 33.00 {
		t.Errorf("Get() total = %v, expected 33.00", resp.Total)
	}
}

func TestCartAdd(t *testing.T) {
	vendors := newFakeVendorRepo()
	vendor := &entity.Vendor{
		Base:       entity.Base{ID: uuid.New()},
		Name:       "Trattoria",
		IsApproved: true,
	}
	vendors.byID[vendor.ID] = vendor

	foods := newFakeFoodRepo()
	dish := &entity.FoodItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     vendor.ID,
		Title:        "Carbonara",
		Price:        18.00,
		IsAvailable:  true,
	}
	foods.byID[dish.ID] = dish

	service := newCartServiceForTest(newFakeCartRepo(), &fakeTaxRepo{}, foods, vendors)
	userID := uuid.New()

	first, err := service.Add(context.Background(), userID, &request.AddToCartRequest{FoodItemID: dish.ID.String()})
	if err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}
	if first.Quantity != 1 {
		t.Errorf("first Add() quantity = %d, expected 1", first.Quantity)
	}

	// Adding the same dish again bumps the quantity instead of creating
	// a second line.
	second, err := service.Add(context.Background(), userID, &request.AddToCartRequest{FoodItemID: dish.ID.String()})
	if err != nil {
		t.Fatalf("second Add() returned error: %v", err)
	}
	if second.Quantity != 2 {
		t.Errorf("second Add() quantity = %d, expected 2", second.Quantity)
	}
	if second.Amount != 36.00 {
		t.Errorf("second Add() amount = %v, expected 36.00", second.Amount)
	}
}

func TestCartAddRejections(t *testing.T) {
	vendors := newFakeVendorRepo()
	approved := &entity.Vendor{Base: entity.Base{ID: uuid.New()}, IsApproved: true}
	pending := &entity.Vendor{Base: entity.Base{ID: uuid.New()}, IsApproved: false}
	vendors.byID[approved.ID] = approved
	vendors.byID[pending.ID] = pending

	foods := newFakeFoodRepo()
	soldOut := &entity.FoodItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     approved.ID,
		IsAvailable:  false,
	}
	hiddenVendorDish := &entity.FoodItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     pending.ID,
		IsAvailable:  true,
	}
	foods.byID[soldOut.ID] = soldOut
	foods.byID[hiddenVendorDish.ID] = hiddenVendorDish

	service := newCartServiceForTest(newFakeCartRepo(), &fakeTaxRepo{}, foods, vendors)

	testCases := []struct {
		name        string
		foodItemID  string
		expectedErr string
	}{
		{name: "unknown dish", foodItemID: uuid.New().String(), expectedErr: "not available"},
		{name: "sold out dish", foodItemID: soldOut.ID.String(), expectedErr: "food item not available"},
		{name: "unapproved restaurant", foodItemID: hiddenVendorDish.ID.String(), expectedErr: "restaurant not available"},
		{name: "malformed id", foodItemID: "not-a-uuid", expectedErr: "validation failed"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Add(context.Background(), uuid.New(), &request.AddToCartRequest{FoodItemID: tt.foodItemID})
			if err == nil || !strings.Contains(err.Error(), tt.expectedErr) {
				t.Errorf("Add() = %v, expected error containing %q", err, tt.expectedErr)
			}
		})
	}
}

func TestCartDecreaseRemovesLastUnit(t *testing.T) {
	vendors := newFakeVendorRepo()
	vendor := &entity.Vendor{Base: entity.Base{ID: uuid.New()}, IsApproved: true}
	vendors.byID[vendor.ID] = vendor

	foods := newFakeFoodRepo()
	dish := &entity.FoodItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     vendor.ID,
		Title:        "Carbonara",
		Price:        18.00,
		IsAvailable:  true,
	}
	foods.byID[dish.ID] = dish

	service := newCartServiceForTest(newFakeCartRepo(), &fakeTaxRepo{}, foods, vendors)
	userID := uuid.New()

	if _, err := service.Add(context.Background(), userID, &request.AddToCartRequest{FoodItemID: dish.ID.String()}); err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	line, err := service.Decrease(context.Background(), userID, &request.DecreaseCartRequest{FoodItemID: dish.ID.String()})
	if err != nil {
		t.Fatalf("Decrease() returned error: %v", err)
	}
	if line != nil {
		t.Errorf("Decrease() of the last unit = %+v, expected removed line", line)
	}

	count, err := service.Count(context.Background(), userID)
	if err != nil {
		t.Fatalf("Count() returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("Count() after removal = %d, expected 0", count)
	}
}
