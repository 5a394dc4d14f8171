package entity

import "github.com/google/uuid"

type AddressType string

const (
	AddressTypeHome  AddressType = "HOME"
	AddressTypeWork  AddressType = "WORK"
	AddressTypeOther AddressType = "OTHER"
)

// UserAddress is a delivery address. Exactly one address per user is
// the default at any time.
type UserAddress struct {
	BaseNoDelete
	UserID       uuid.UUID   `db:"user_id"`
	AddressType  AddressType `db:"address_type"`
	AddressLine1 string      `db:"address_line1"`
	AddressLine2 string      `db:"address_line2"`
	City         string      `db:"city"`
	State        string      `db:"state"`
	Country      string      `db:"country"`
	PostalCode   string      `db:"postal_code"`
	Latitude     *float64    `db:"latitude"`
	Longitude    *float64    `db:"longitude"`
	IsDefault    bool        `db:"is_default"`
}
