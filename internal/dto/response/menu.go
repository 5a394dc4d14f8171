package response

import (
	"time"

	"food-marketplace/internal/data/entity"
)

type CategoryResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description *string            `json:"description,omitempty"`
	FoodItems   []FoodItemResponse `json:"food_items,omitempty"`
}

type FoodItemResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	VendorID    string    `json:"vendor_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
	}
}

func FoodItemToResponse(item *entity.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:          item.ID.String(),
		CategoryID:  item.CategoryID.String(),
		VendorID:    item.VendorID.String(),
		Title:       item.Title,
		Slug:        item.Slug,
		Description: item.Description,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
	}
}
