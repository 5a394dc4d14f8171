package entity

import "github.com/google/uuid"

type UserProfile struct {
	BaseNoDelete
	UserID         uuid.UUID `db:"user_id"`
	ProfilePicture *string   `db:"profile_picture"`
	CoverPhoto     *string   `db:"cover_photo"`
	Address        *string   `db:"address"`
	Country        *string   `db:"country"`
	State          *string   `db:"state"`
	City           *string   `db:"city"`
	PostalCode     *string   `db:"postal_code"`
	Latitude       *string   `db:"latitude"`
	Longitude      *string   `db:"longitude"`
}
