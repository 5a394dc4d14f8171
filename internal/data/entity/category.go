package entity

import "github.com/google/uuid"

type Category struct {
	BaseNoDelete
	VendorID    uuid.UUID `db:"vendor_id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description *string   `db:"description"`
}
