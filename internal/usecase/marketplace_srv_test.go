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

type marketplaceTestEnv struct {
	vendors    *fakeVendorRepo
	profiles   *fakeProfileRepo
	categories *fakeCategoryRepo
	foods      *fakeFoodRepo
	favorites  *fakeFavoriteRepo
	service    MarketplaceService
}

func newMarketplaceTestEnv() *marketplaceTestEnv {
	vendors := newFakeVendorRepo()
	env := &marketplaceTestEnv{
		vendors:    vendors,
		profiles:   newFakeProfileRepo(),
		categories: newFakeCategoryRepo(),
		foods:      newFakeFoodRepo(),
		favorites:  newFakeFavoriteRepo(vendors),
	}
	repo := &repository.Repository{
		Vendor:   env.vendors,
		Profile:  env.profiles,
		Category: env.categories,
		Food:     env.foods,
		Favorite: env.favorites,
	}
	env.service = NewMarketplaceService(repo, zap.NewNop())
	return env
}

func (env *marketplaceTestEnv) seedRestaurant(name, slugName string, approved bool) *entity.Vendor {
	vendor := &entity.Vendor{
		Base:       entity.Base{ID: uuid.New()},
		UserID:     uuid.New(),
		Name:       name,
		Slug:       slugName,
		IsApproved: approved,
	}
	env.vendors.byID[vendor.ID] = vendor
	return vendor
}

func TestListRestaurantsApprovedOnly(t *testing.T) {
	env := newMarketplaceTestEnv()
	env.seedRestaurant("Trattoria", "trattoria", true)
	env.seedRestaurant("Cantina", "cantina", false)

	resp, err := env.service.ListRestaurants(context.Background(), &request.ListVendorsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	}, nil)
	if err != nil {
		t.Fatalf("ListRestaurants() returned error: %v", err)
	}

	if len(resp.Data) != 1 {
		t.Fatalf("ListRestaurants() returned %d restaurants, expected 1", len(resp.Data))
	}
	if resp.Data[0].Name != "Trattoria" {
		t.Errorf("ListRestaurants() returned %q, expected the approved restaurant", resp.Data[0].Name)
	}
}

func TestListRestaurantsMarksFavorites(t *testing.T) {
	env := newMarketplaceTestEnv()
	liked := env.seedRestaurant("Trattoria", "trattoria", true)
	env.seedRestaurant("Cantina", "cantina", true)

	userID := uuid.New()
	if err := env.service.AddFavorite(context.Background(), userID, liked.ID); err != nil {
		t.Fatalf("AddFavorite() returned error: %v", err)
	}

	resp, err := env.service.ListRestaurants(context.Background(), &request.ListVendorsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	}, &userID)
	if err != nil {
		t.Fatalf("ListRestaurants() returned error: %v", err)
	}

	flagged := map[string]bool{}
	for _, v := range resp.Data {
		flagged[v.Name] = v.IsFavorite
	}
	if !flagged["Trattoria"] {
		t.Error("ListRestaurants() did not flag the favorited restaurant")
	}
	if flagged["Cantina"] {
		t.Error("ListRestaurants() flagged a restaurant the user never favorited")
	}
}

func TestRestaurantDetail(t *testing.T) {
	env := newMarketplaceTestEnv()
	vendor := env.seedRestaurant("Trattoria", "trattoria", true)

	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     vendor.ID,
		Name:         "Mains",
		Slug:         "mains",
	}
	env.categories.byID[category.ID] = category

	onMenu := &entity.FoodItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     vendor.ID,
		CategoryID:   category.ID,
		Title:        "Carbonara",
		Price:        18.00,
		IsAvailable:  true,
	}
	soldOut := &entity.FoodItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     vendor.ID,
		CategoryID:   category.ID,
		Title:        "Ossobuco",
		IsAvailable:  false,
	}
	env.foods.byID[onMenu.ID] = onMenu
	env.foods.byID[soldOut.ID] = soldOut

	resp, err := env.service.RestaurantDetail(context.Background(), "trattoria")
	if err != nil {
		t.Fatalf("RestaurantDetail() returned error: %v", err)
	}

	if resp.Name != "Trattoria" {
		t.Errorf("RestaurantDetail() name = %q", resp.Name)
	}
	if len(resp.Categories) != 1 {
		t.Fatalf("RestaurantDetail() returned %d categories, expected 1", len(resp.Categories))
	}
	// Sold-out dishes stay off the public menu.
	items := resp.Categories[0].FoodItems
	if len(items) != 1 {
		t.Fatalf("RestaurantDetail() listed %d dishes, expected 1", len(items))
	}
	if items[0].Title != "Carbonara" {
		t.Errorf("RestaurantDetail() dish = %q, expected Carbonara", items[0].Title)
	}
}

func TestRestaurantDetailHidesUnapproved(t *testing.T) {
	env := newMarketplaceTestEnv()
	env.seedRestaurant("Cantina", "cantina", false)

	testCases := []struct {
		name string
		slug string
	}{
		{name: "unapproved restaurant", slug: "cantina"},
		{name: "unknown slug", slug: "no-such-place"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.service.RestaurantDetail(context.Background(), tt.slug)
			if err == nil || !strings.Contains(err.Error(), "restaurant not found") {
				t.Errorf("RestaurantDetail(%q) = %v, expected not found", tt.slug, err)
			}
		})
	}
}

func TestAddFavoriteUnapprovedRestaurant(t *testing.T) {
	env := newMarketplaceTestEnv()
	hidden := env.seedRestaurant("Cantina", "cantina", false)

	err := env.service.AddFavorite(context.Background(), uuid.New(), hidden.ID)
	if err == nil || !strings.Contains(err.Error(), "restaurant not found") {
		t.Errorf("AddFavorite() for unapproved restaurant = %v, expected not found", err)
	}
}

func TestFavoritesRoundTrip(t *testing.T) {
	env := newMarketplaceTestEnv()
	vendor := env.seedRestaurant("Trattoria", "trattoria", true)
	userID := uuid.New()

	if err := env.service.AddFavorite(context.Background(), userID, vendor.ID); err != nil {
		t.Fatalf("AddFavorite() returned error: %v", err)
	}

	favorites, err := env.service.ListFavorites(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFavorites() returned error: %v", err)
	}
	if len(favorites) != 1 || favorites[0].Name != "Trattoria" {
		t.Fatalf("ListFavorites() = %+v, expected the favorited restaurant", favorites)
	}
	if !favorites[0].IsFavorite {
		t.Error("ListFavorites() entries should carry the favorite flag")
	}

	if err := env.service.RemoveFavorite(context.Background(), userID, vendor.ID); err != nil {
		t.Fatalf("RemoveFavorite() returned error: %v", err)
	}
	favorites, err = env.service.ListFavorites(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListFavorites() returned error: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("ListFavorites() after removal returned %d entries", len(favorites))
	}
}

func TestSearchFood(t *testing.T) {
	env := newMarketplaceTestEnv()
	vendor := env.seedRestaurant("Trattoria", "trattoria", true)

	dish := &entity.FoodItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     vendor.ID,
		Title:        "Carbonara",
		IsAvailable:  true,
	}
	env.foods.byID[dish.ID] = dish

	resp, err := env.service.SearchFood(context.Background(), &request.SearchRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Keyword:          "carbo",
	}, nil)
	if err != nil {
		t.Fatalf("SearchFood() returned error: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Title != "Carbonara" {
		t.Errorf("SearchFood() = %+v, expected Carbonara", resp.Data)
	}

	// The favorites filter needs a logged-in caller.
	_, err = env.service.SearchFood(context.Background(), &request.SearchRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Keyword:          "carbo",
		FavoritesOnly:    true,
	}, nil)
	if err == nil || !strings.Contains(err.Error(), "login required") {
		t.Errorf("SearchFood() favorites filter without login = %v, expected login required", err)
	}

	// An empty keyword is rejected.
	_, err = env.service.SearchFood(context.Background(), &request.SearchRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	}, nil)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("SearchFood() without keyword = %v, expected validation error", err)
	}
}
