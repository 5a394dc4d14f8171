package entity

import "github.com/google/uuid"

type FoodItem struct {
	BaseNoDelete
	VendorID    uuid.UUID `db:"vendor_id"`
	CategoryID  uuid.UUID `db:"category_id"`
	Title       string    `db:"title"`
	Slug        string    `db:"slug"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	ImageURL    *string   `db:"image_url"`
	IsAvailable bool      `db:"is_available"`
}
