package response

import (
	"time"

	"food-marketplace/internal/data/entity"
)

type UserResponse struct {
	ID            string           `json:"id"`
	Email         string           `json:"email"`
	Username      string           `json:"username"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Phone         *string          `json:"phone,omitempty"`
	Role          *entity.UserRole `json:"role,omitempty"`
	EmailVerified bool             `json:"email_verified"`
	CreatedAt     time.Time        `json:"created_at"`
}

type ProfileResponse struct {
	ID             string   `json:"id"`
	ProfilePicture *string  `json:"profile_picture,omitempty"`
	CoverPhoto     *string  `json:"cover_photo,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Country        *string  `json:"country,omitempty"`
	State          *string  `json:"state,omitempty"`
	City           *string  `json:"city,omitempty"`
	PostalCode     *string `json:"postal_code,omitempty"`
	Latitude       *string `json:"latitude,omitempty"`
	Longitude      *string `json:"longitude,omitempty"`
}

type AddressResponse struct {
	ID           string             `json:"id"`
	AddressType  entity.AddressType `json:"address_type"`
	AddressLine1 string             `json:"address_line1"`
	AddressLine2 string             `json:"address_line2"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	Country      string             `json:"country"`
	PostalCode   string             `json:"postal_code"`
	Latitude     *float64           `json:"latitude,omitempty"`
	Longitude    *float64           `json:"longitude,omitempty"`
	IsDefault    bool               `json:"is_default"`
	CreatedAt    time.Time          `json:"created_at"`
}

type CustomerDashboardResponse struct {
	TotalOrders int64             `json:"total_orders"`
	Recent      []OrderResponse   `json:"recent_orders"`
	Favorites   []VendorResponse  `json:"favorite_restaurants"`
	Addresses   []AddressResponse `json:"addresses"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}

func ProfileToResponse(profile *entity.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:             profile.ID.String(),
		ProfilePicture: profile.ProfilePicture,
		CoverPhoto:     profile.CoverPhoto,
		Address:        profile.Address,
		Country:        profile.Country,
		State:          profile.State,
		City:           profile.City,
		PostalCode:     profile.PostalCode,
		Latitude:       profile.Latitude,
		Longitude:      profile.Longitude,
	}
}

func AddressToResponse(address *entity.UserAddress) AddressResponse {
	return AddressResponse{
		ID:           address.ID.String(),
		AddressType:  address.AddressType,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		Country:      address.Country,
		PostalCode:   address.PostalCode,
		Latitude:     address.Latitude,
		Longitude:    address.Longitude,
		IsDefault:    address.IsDefault,
		CreatedAt:    address.CreatedAt,
	}
}
