package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/dto/response"
	"food-marketplace/pkg/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

type MenuService interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
	CreateFoodItem(ctx context.Context, userID uuid.UUID, req *request.CreateFoodItemRequest) (*response.FoodItemResponse, error)
	ListFoodItems(ctx context.Context, userID uuid.UUID) ([]response.FoodItemResponse, error)
	UpdateFoodItem(ctx context.Context, userID, foodItemID uuid.UUID, req *request.UpdateFoodItemRequest) (*response.FoodItemResponse, error)
	DeleteFoodItem(ctx context.Context, userID, foodItemID uuid.UUID) error
}

type menuService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMenuService(repo *repository.Repository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log,
	}
}

func (s *menuService) CreateCategory(ctx context.Context, userID uuid.UUID, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := capitalizeName(req.Name)
	categorySlug, err := s.uniqueCategorySlug(ctx, vendor.ID, name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VendorID:    vendor.ID,
		Name:        name,
		Slug:        categorySlug,
		Description: req.Description,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category")
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *menuService) ListCategories(ctx context.Context, userID uuid.UUID) ([]response.CategoryResponse, error) {
	vendor, err := s.findVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.Category.FindByVendor(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to list categories")
	}

	result := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, response.CategoryToResponse(category))
	}

	return result, nil
}

func (s *menuService) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, category, err := s.findOwnCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	// 2. Renames re-slug the category
	name := capitalizeName(req.Name)
	if name != category.Name {
		categorySlug, err := s.uniqueCategorySlug(ctx, vendor.ID, name)
		if err != nil {
			return nil, err
		}
		category.Slug = categorySlug
	}

	category.Name = name
	category.Description = req.Description
	category.UpdatedAt = time.Now()

	if err := s.repo.Category.Update(ctx, category); err != nil {
		s.log.Error("Failed to update category", zap.Error(err), zap.String("id", categoryID.String()))
		return nil, fmt.Errorf("failed to update category")
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

// DeleteCategory refuses while dishes still reference the category.
func (s *menuService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	_, category, err := s.findOwnCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}

	items, err := s.repo.Food.FindByCategory(ctx, category.ID, false)
	if err != nil {
		s.log.Error("Failed to check category items", zap.Error(err), zap.String("id", categoryID.String()))
		return fmt.Errorf("failed to delete category")
	}
	if len(items) > 0 {
		return fmt.Errorf("category still has food items")
	}

	if err := s.repo.Category.Delete(ctx, category.ID); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("id", categoryID.String()))
		return fmt.Errorf("failed to delete category")
	}

	return nil
}

func (s *menuService) CreateFoodItem(ctx context.Context, userID uuid.UUID, req *request.CreateFoodItemRequest) (*response.FoodItemResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create food item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2. The category must belong to the same restaurant
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id")
	}
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("id", req.CategoryID))
		return nil, fmt.Errorf("failed to create food item")
	}
	if category == nil || category.VendorID != vendor.ID {
		return nil, fmt.Errorf("category not found")
	}

	foodSlug, err := s.uniqueFoodSlug(ctx, vendor.ID, req.Title)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.FoodItem{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VendorID:    vendor.ID,
		CategoryID:  categoryID,
		Title:       req.Title,
		Slug:        foodSlug,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	}

	if err := s.repo.Food.Create(ctx, item); err != nil {
		s.log.Error("Failed to create food item", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create food item")
	}

	resp := response.FoodItemToResponse(item)
	return &resp, nil
}

func (s *menuService) ListFoodItems(ctx context.Context, userID uuid.UUID) ([]response.FoodItemResponse, error) {
	vendor, err := s.findVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.Food.FindByVendor(ctx, vendor.ID, false)
	if err != nil {
		s.log.Error("Failed to list food items", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to list food items")
	}

	result := make([]response.FoodItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, response.FoodItemToResponse(item))
	}

	return result, nil
}

func (s *menuService) UpdateFoodItem(ctx context.Context, userID, foodItemID uuid.UUID, req *request.UpdateFoodItemRequest) (*response.FoodItemResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update food item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, item, err := s.findOwnFoodItem(ctx, userID, foodItemID)
	if err != nil {
		return nil, err
	}

	// 2. The category must belong to the same restaurant
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id")
	}
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("id", req.CategoryID))
		return nil, fmt.Errorf("failed to update food item")
	}
	if category == nil || category.VendorID != vendor.ID {
		return nil, fmt.Errorf("category not found")
	}

	// 3. Retitles re-slug the dish
	if req.Title != item.Title {
		foodSlug, err := s.uniqueFoodSlug(ctx, vendor.ID, req.Title)
		if err != nil {
			return nil, err
		}
		item.Slug = foodSlug
	}

	item.CategoryID = categoryID
	item.Title = req.Title
	item.Description = req.Description
	item.Price = req.Price
	item.ImageURL = req.ImageURL
	item.IsAvailable = req.IsAvailable
	item.UpdatedAt = time.Now()

	if err := s.repo.Food.Update(ctx, item); err != nil {
		s.log.Error("Failed to update food item", zap.Error(err), zap.String("id", foodItemID.String()))
		return nil, fmt.Errorf("failed to update food item")
	}

	resp := response.FoodItemToResponse(item)
	return &resp, nil
}

func (s *menuService) DeleteFoodItem(ctx context.Context, userID, foodItemID uuid.UUID) error {
	_, item, err := s.findOwnFoodItem(ctx, userID, foodItemID)
	if err != nil {
		return err
	}

	if err := s.repo.Food.Delete(ctx, item.ID); err != nil {
		s.log.Error("Failed to delete food item", zap.Error(err), zap.String("id", foodItemID.String()))
		return fmt.Errorf("failed to delete food item")
	}

	return nil
}

// ==================== HELPER METHODS ====================

// capitalizeName stores category names in "Starters" form: first letter
// upper, the rest lower.
func capitalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func (s *menuService) findVendor(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.repo.Vendor.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find restaurant")
	}
	if vendor == nil {
		return nil, fmt.Errorf("restaurant not found")
	}
	return vendor, nil
}

func (s *menuService) findOwnCategory(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Vendor, *entity.Category, error) {
	vendor, err := s.findVendor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("id", categoryID.String()))
		return nil, nil, fmt.Errorf("failed to find category")
	}
	if category == nil || category.VendorID != vendor.ID {
		return nil, nil, fmt.Errorf("category not found")
	}

	return vendor, category, nil
}

func (s *menuService) findOwnFoodItem(ctx context.Context, userID, foodItemID uuid.UUID) (*entity.Vendor, *entity.FoodItem, error) {
	vendor, err := s.findVendor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	item, err := s.repo.Food.FindByID(ctx, foodItemID)
	if err != nil {
		s.log.Error("Failed to find food item", zap.Error(err), zap.String("id", foodItemID.String()))
		return nil, nil, fmt.Errorf("failed to find food item")
	}
	if item == nil || item.VendorID != vendor.ID {
		return nil, nil, fmt.Errorf("food item not found")
	}

	return vendor, item, nil
}

func (s *menuService) uniqueCategorySlug(ctx context.Context, vendorID uuid.UUID, name string) (string, error) {
	base := slug.Make(name)

	candidate := base
	for i := 2; ; i++ {
		existing, err := s.repo.Category.FindBySlug(ctx, vendorID, candidate)
		if err != nil {
			s.log.Error("Failed to check category slug", zap.Error(err), zap.String("slug", candidate))
			return "", fmt.Errorf("failed to save category")
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *menuService) uniqueFoodSlug(ctx context.Context, vendorID uuid.UUID, title string) (string, error) {
	base := slug.Make(title)

	candidate := base
	for i := 2; ; i++ {
		existing, err := s.repo.Food.FindBySlug(ctx, vendorID, candidate)
		if err != nil {
			s.log.Error("Failed to check food slug", zap.Error(err), zap.String("slug", candidate))
			return "", fmt.Errorf("failed to save food item")
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
