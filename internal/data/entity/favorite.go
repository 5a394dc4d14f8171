package entity

import "github.com/google/uuid"

// FavoriteRestaurant is unique per (user, vendor).
type FavoriteRestaurant struct {
	BaseSimple
	UserID   uuid.UUID `db:"user_id"`
	VendorID uuid.UUID `db:"vendor_id"`
}
