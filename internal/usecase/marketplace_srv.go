package usecase

import (
	"context"
	"fmt"
	"time"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/dto/response"
	"food-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MarketplaceService interface {
	ListRestaurants(ctx context.Context, req *request.ListVendorsRequest, userID *uuid.UUID) (*response.PaginatedResponse[response.VendorResponse], error)
	RestaurantDetail(ctx context.Context, vendorSlug string) (*response.VendorDetailResponse, error)
	SearchFood(ctx context.Context, req *request.SearchRequest, userID *uuid.UUID) (*response.PaginatedResponse[response.FoodItemResponse], error)
	AddFavorite(ctx context.Context, userID, vendorID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, vendorID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]response.VendorResponse, error)
}

type marketplaceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMarketplaceService(repo *repository.Repository, log *zap.Logger) MarketplaceService {
	return &marketplaceService{
		repo: repo,
		log:  log,
	}
}

// ListRestaurants shows approved restaurants only. When a user is
// logged in, their favorites are flagged.
func (s *marketplaceService) ListRestaurants(ctx context.Context, req *request.ListVendorsRequest, userID *uuid.UUID) (*response.PaginatedResponse[response.VendorResponse], error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List restaurants validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	approved := true
	vendors, total, err := s.repo.Vendor.FindAll(ctx, repository.VendorFilter{
		Keyword:    req.Keyword,
		IsApproved: &approved,
		Offset:     req.Offset(),
		Limit:      req.Limit(),
	})
	if err != nil {
		s.log.Error("Failed to list restaurants", zap.Error(err))
		return nil, fmt.Errorf("failed to list restaurants")
	}

	data := make([]response.VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		item := response.VendorToResponse(vendor)
		if userID != nil {
			fav, err := s.repo.Favorite.Exists(ctx, *userID, vendor.ID)
			if err != nil {
				s.log.Warn("Failed to check favorite", zap.Error(err))
			}
			item.IsFavorite = fav
		}
		data = append(data, item)
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

// RestaurantDetail returns the public page: the restaurant, its owner
// profile and the menu grouped by category, available dishes only.
func (s *marketplaceService) RestaurantDetail(ctx context.Context, vendorSlug string) (*response.VendorDetailResponse, error) {
	vendor, err := s.repo.Vendor.FindBySlug(ctx, vendorSlug)
	if err != nil {
		s.log.Error("Failed to find restaurant", zap.Error(err), zap.String("slug", vendorSlug))
		return nil, fmt.Errorf("failed to load restaurant")
	}
	if vendor == nil || !vendor.IsApproved {
		return nil, fmt.Errorf("restaurant not found")
	}

	resp := &response.VendorDetailResponse{
		VendorResponse: response.VendorToResponse(vendor),
		Categories:     []response.CategoryResponse{},
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, vendor.UserID)
	if err != nil {
		s.log.Warn("Failed to load vendor profile", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
	} else if profile != nil {
		p := response.ProfileToResponse(profile)
		resp.Profile = &p
	}

	categories, err := s.repo.Category.FindByVendor(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to load menu", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to load restaurant")
	}

	for _, category := range categories {
		catResp := response.CategoryToResponse(category)

		items, err := s.repo.Food.FindByCategory(ctx, category.ID, true)
		if err != nil {
			s.log.Error("Failed to load category items", zap.Error(err), zap.String("category_id", category.ID.String()))
			return nil, fmt.Errorf("failed to load restaurant")
		}
		for _, item := range items {
			catResp.FoodItems = append(catResp.FoodItems, response.FoodItemToResponse(item))
		}

		resp.Categories = append(resp.Categories, catResp)
	}

	return resp, nil
}

// SearchFood matches dishes by title or restaurant name. Logged-in
// callers can narrow the results to their favorite restaurants.
func (s *marketplaceService) SearchFood(ctx context.Context, req *request.SearchRequest, userID *uuid.UUID) (*response.PaginatedResponse[response.FoodItemResponse], error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var favoritesOf *uuid.UUID
	if req.FavoritesOnly {
		if userID == nil {
			return nil, fmt.Errorf("login required to filter by favorites")
		}
		favoritesOf = userID
	}

	items, total, err := s.repo.Food.Search(ctx, req.Keyword, favoritesOf, req.Offset(), req.Limit())
	if err != nil {
		s.log.Error("Failed to search food", zap.Error(err), zap.String("keyword", req.Keyword))
		return nil, fmt.Errorf("failed to search")
	}

	data := make([]response.FoodItemResponse, 0, len(items))
	for _, item := range items {
		data = append(data, response.FoodItemToResponse(item))
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *marketplaceService) AddFavorite(ctx context.Context, userID, vendorID uuid.UUID) error {
	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to find restaurant", zap.Error(err), zap.String("id", vendorID.String()))
		return fmt.Errorf("failed to add favorite")
	}
	if vendor == nil || !vendor.IsApproved {
		return fmt.Errorf("restaurant not found")
	}

	favorite := &entity.FavoriteRestaurant{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:   userID,
		VendorID: vendorID,
	}

	if err := s.repo.Favorite.Add(ctx, favorite); err != nil {
		s.log.Error("Failed to add favorite", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to add favorite")
	}

	return nil
}

func (s *marketplaceService) RemoveFavorite(ctx context.Context, userID, vendorID uuid.UUID) error {
	if err := s.repo.Favorite.Remove(ctx, userID, vendorID); err != nil {
		s.log.Error("Failed to remove favorite", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("favorite not found")
	}
	return nil
}

func (s *marketplaceService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]response.VendorResponse, error) {
	vendors, err := s.repo.Favorite.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list favorites", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list favorites")
	}

	result := make([]response.VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		item := response.VendorToResponse(vendor)
		item.IsFavorite = true
		result = append(result, item)
	}

	return result, nil
}
