package usecase

import (
	"context"
	"strings"
	"testing"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

type menuTestEnv struct {
	vendors    *fakeVendorRepo
	categories *fakeCategoryRepo
	foods      *fakeFoodRepo
	service    MenuService
}

func newMenuTestEnv() *menuTestEnv {
	env := &menuTestEnv{
		vendors:    newFakeVendorRepo(),
		categories: newFakeCategoryRepo(),
		foods:      newFakeFoodRepo(),
	}
	repo := &repository.Repository{
		Vendor:   env.vendors,
		Category: env.categories,
		Food:     env.foods,
	}
	env.service = NewMenuService(repo, zap.NewNop())
	return env
}

// seedRestaurant stores an approved vendor and returns it with its
// owner's user ID.
func (env *menuTestEnv) seedRestaurant(name string) (*entity.Vendor, uuid.UUID) {
	userID := uuid.New()
	vendor := &entity.Vendor{
		Base:       entity.Base{ID: uuid.New()},
		UserID:     userID,
		Name:       name,
		Slug:       slug.Make(name),
		IsApproved: true,
	}
	env.vendors.byID[vendor.ID] = vendor
	return vendor, userID
}

func (env *menuTestEnv) seedCategory(vendorID uuid.UUID, name string) *entity.Category {
	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     vendorID,
		Name:         name,
		Slug:         slug.Make(name),
	}
	env.categories.byID[category.ID] = category
	return category
}

func (env *menuTestEnv) seedDish(vendorID, categoryID uuid.UUID, title string, available bool) *entity.FoodItem {
	item := &entity.FoodItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     vendorID,
		CategoryID:   categoryID,
		Title:        title,
		Slug:         slug.Make(title),
		Price:        9.5,
		IsAvailable:  available,
	}
	env.foods.byID[item.ID] = item
	return item
}

func TestCreateCategoryCapitalizesName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase name", "desserts", "Desserts"},
		{"uppercase name", "DRINKS", "Drinks"},
		{"mixed case", "hOt Meals", "Hot meals"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			env := newMenuTestEnv()
			_, userID := env.seedRestaurant("Casa do Prato")

			resp, err := env.service.CreateCategory(context.Background(), userID, &request.CreateCategoryRequest{
				Name: tt.input,
			})
			if err != nil {
				t.Fatalf("CreateCategory() returned error: %v", err)
			}

			if resp.Name != tt.expected {
				t.Errorf("CreateCategory() name = %q, expected %q", resp.Name, tt.expected)
			}
			for _, stored := range env.categories.byID {
				if stored.Name != tt.expected {
					t.Errorf("stored category name = %q, expected %q", stored.Name, tt.expected)
				}
			}
		})
	}
}

func TestUpdateCategoryCapitalizesName(t *testing.T) {
	env := newMenuTestEnv()
	vendor, userID := env.seedRestaurant("Casa do Prato")
	category := env.seedCategory(vendor.ID, "Starters")

	resp, err := env.service.UpdateCategory(context.Background(), userID, category.ID, &request.UpdateCategoryRequest{
		Name: "sOUPS",
	})
	if err != nil {
		t.Fatalf("UpdateCategory() returned error: %v", err)
	}

	if resp.Name != "Soups" {
		t.Errorf("UpdateCategory() name = %q, expected %q", resp.Name, "Soups")
	}
	if resp.Slug != "soups" {
		t.Errorf("UpdateCategory() slug = %q, expected %q", resp.Slug, "soups")
	}
}

func TestCreateCategorySlugCollision(t *testing.T) {
	env := newMenuTestEnv()
	vendor, userID := env.seedRestaurant("Casa do Prato")
	env.seedCategory(vendor.ID, "Desserts")

	resp, err := env.service.CreateCategory(context.Background(), userID, &request.CreateCategoryRequest{
		Name: "desserts",
	})
	if err != nil {
		t.Fatalf("CreateCategory() returned error: %v", err)
	}

	if resp.Slug != "desserts-2" {
		t.Errorf("CreateCategory() slug = %q, expected %q", resp.Slug, "desserts-2")
	}
}

func TestMenuOwnershipIsolation(t *testing.T) {
	env := newMenuTestEnv()
	theirVendor, _ := env.seedRestaurant("Osteria Nova")
	theirCategory := env.seedCategory(theirVendor.ID, "Pasta")
	theirDish := env.seedDish(theirVendor.ID, theirCategory.ID, "Carbonara", true)

	_, callerID := env.seedRestaurant("Casa do Prato")

	testCases := []struct {
		name      string
		run       func() error
		expectErr string
	}{
		{
			name: "update another restaurant's category",
			run: func() error {
				_, err := env.service.UpdateCategory(context.Background(), callerID, theirCategory.ID, &request.UpdateCategoryRequest{Name: "Risotto"})
				return err
			},
			expectErr: "category not found",
		},
		{
			name: "delete another restaurant's category",
			run: func() error {
				return env.service.DeleteCategory(context.Background(), callerID, theirCategory.ID)
			},
			expectErr: "category not found",
		},
		{
			name: "create dish under another restaurant's category",
			run: func() error {
				_, err := env.service.CreateFoodItem(context.Background(), callerID, &request.CreateFoodItemRequest{
					CategoryID: theirCategory.ID.String(),
					Title:      "Lasagna",
					Price:      12.0,
				})
				return err
			},
			expectErr: "category not found",
		},
		{
			name: "update another restaurant's dish",
			run: func() error {
				_, err := env.service.UpdateFoodItem(context.Background(), callerID, theirDish.ID, &request.UpdateFoodItemRequest{
					CategoryID: theirCategory.ID.String(),
					Title:      "Carbonara",
					Price:      12.0,
				})
				return err
			},
			expectErr: "food item not found",
		},
		{
			name: "delete another restaurant's dish",
			run: func() error {
				return env.service.DeleteFoodItem(context.Background(), callerID, theirDish.ID)
			},
			expectErr: "food item not found",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if err == nil || !strings.Contains(err.Error(), tt.expectErr) {
				t.Errorf("error = %v, expected to contain %q", err, tt.expectErr)
			}
		})
	}
}

func TestDeleteCategoryWithDishes(t *testing.T) {
	env := newMenuTestEnv()
	vendor, userID := env.seedRestaurant("Casa do Prato")
	category := env.seedCategory(vendor.ID, "Mains")
	env.seedDish(vendor.ID, category.ID, "Feijoada", true)

	err := env.service.DeleteCategory(context.Background(), userID, category.ID)
	if err == nil || !strings.Contains(err.Error(), "still has food items") {
		t.Errorf("DeleteCategory() error = %v, expected to contain %q", err, "still has food items")
	}
	if _, ok := env.categories.byID[category.ID]; !ok {
		t.Error("DeleteCategory() removed a category that still has dishes")
	}
}

func TestListFoodItemsIncludesUnavailable(t *testing.T) {
	env := newMenuTestEnv()
	vendor, userID := env.seedRestaurant("Casa do Prato")
	category := env.seedCategory(vendor.ID, "Mains")
	env.seedDish(vendor.ID, category.ID, "Feijoada", true)
	env.seedDish(vendor.ID, category.ID, "Moqueca", false)

	items, err := env.service.ListFoodItems(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFoodItems() returned error: %v", err)
	}

	// The owner manages sold-out dishes too; only the public menu
	// hides them.
	if len(items) != 2 {
		t.Errorf("ListFoodItems() returned %d items, expected 2", len(items))
	}
}
