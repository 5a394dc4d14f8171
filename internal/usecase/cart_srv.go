package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/dto/response"
	"food-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService interface {
	Add(ctx context.Context, userID uuid.UUID, req *request.AddToCartRequest) (*response.CartLineResponse, error)
	Decrease(ctx context.Context, userID uuid.UUID, req *request.DecreaseCartRequest) (*response.CartLineResponse, error)
	RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) error
	Get(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log,
	}
}

func (s *cartService) Add(ctx context.Context, userID uuid.UUID, req *request.AddToCartRequest) (*response.CartLineResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add to cart validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	foodItemID, err := uuid.Parse(req.FoodItemID)
	if err != nil {
		return nil, fmt.Errorf("invalid food item id")
	}

	// 2. The dish must be orderable
	item, err := s.repo.Food.FindByID(ctx, foodItemID)
	if err != nil {
		s.log.Error("Failed to find food item", zap.Error(err), zap.String("id", req.FoodItemID))
		return nil, fmt.Errorf("failed to add to cart")
	}
	if item == nil || !item.IsAvailable {
		return nil, fmt.Errorf("food item not available")
	}

	vendor, err := s.repo.Vendor.FindByID(ctx, item.VendorID)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("id", item.VendorID.String()))
		return nil, fmt.Errorf("failed to add to cart")
	}
	if vendor == nil || !vendor.IsApproved {
		return nil, fmt.Errorf("restaurant not available")
	}

	// 3. Insert or bump quantity
	now := time.Now()
	saved, err := s.repo.Cart.Add(ctx, &entity.CartItem{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userID,
		FoodItemID: foodItemID,
		Quantity:   1,
	})
	if err != nil {
		s.log.Error("Failed to add to cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to add to cart")
	}

	return &response.CartLineResponse{
		CartItemID: saved.ID.String(),
		FoodItemID: item.ID.String(),
		Title:      item.Title,
		Price:      item.Price,
		Quantity:   saved.Quantity,
		Amount:     item.Price * float64(saved.Quantity),
	}, nil
}

// Decrease returns nil when the line was removed entirely.
func (s *cartService) Decrease(ctx context.Context, userID uuid.UUID, req *request.DecreaseCartRequest) (*response.CartLineResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Decrease cart validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	foodItemID, err := uuid.Parse(req.FoodItemID)
	if err != nil {
		return nil, fmt.Errorf("invalid food item id")
	}

	saved, err := s.repo.Cart.Decrease(ctx, userID, foodItemID)
	if err != nil {
		s.log.Error("Failed to decrease cart item", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update cart")
	}
	if saved == nil {
		return nil, nil
	}

	item, err := s.repo.Food.FindByID(ctx, foodItemID)
	if err != nil || item == nil {
		s.log.Error("Failed to find food item after decrease", zap.Error(err))
		return nil, fmt.Errorf("failed to update cart")
	}

	return &response.CartLineResponse{
		CartItemID: saved.ID.String(),
		FoodItemID: item.ID.String(),
		Title:      item.Title,
		Price:      item.Price,
		Quantity:   saved.Quantity,
		Amount:     item.Price * float64(saved.Quantity),
	}, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) error {
	if err := s.repo.Cart.DeleteItem(ctx, userID, cartItemID); err != nil {
		s.log.Error("Failed to remove cart item", zap.Error(err), zap.String("id", cartItemID.String()))
		return fmt.Errorf("cart item not found")
	}
	return nil
}

func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error) {
	lines, err := s.repo.Cart.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load cart")
	}

	taxes, err := s.repo.Tax.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to load taxes", zap.Error(err))
		return nil, fmt.Errorf("failed to load cart")
	}

	resp := &response.CartResponse{
		Items: make([]response.CartLineResponse, 0, len(lines)),
	}
	for _, line := range lines {
		resp.Items = append(resp.Items, response.CartLineToResponse(line))
		resp.Subtotal += line.Amount()
	}
	resp.Subtotal = roundMoney(resp.Subtotal)
	resp.Taxes, resp.TaxTotal = taxBreakdown(resp.Subtotal, taxes)
	resp.Total = roundMoney(resp.Subtotal + resp.TaxTotal)

	return resp, nil
}

func (s *cartService) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.repo.Cart.CountByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count cart", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("failed to count cart")
	}
	return count, nil
}

// ==================== HELPER METHODS ====================

// taxBreakdown applies each active percentage to the subtotal.
func taxBreakdown(subtotal float64, taxes []*entity.Tax) ([]response.TaxLineResponse, float64) {
	lines := make([]response.TaxLineResponse, 0, len(taxes))
	var total float64
	for _, tax := range taxes {
		amount := roundMoney(subtotal * tax.Percentage / 100)
		lines = append(lines, response.TaxLineResponse{
			TaxType:    tax.TaxType,
			Percentage: tax.Percentage,
			Amount:     amount,
		})
		total += amount
	}
	return lines, roundMoney(total)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
