package entity

import "github.com/google/uuid"

// Vendor is a restaurant tenant. Menu items stay hidden from the
// marketplace until an admin approves the restaurant.
type Vendor struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	ProfileID   uuid.UUID `db:"profile_id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	LicensePath *string   `db:"license_path"`
	IsApproved  bool      `db:"is_approved"`
}
