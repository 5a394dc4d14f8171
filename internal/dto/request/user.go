package request

type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
}

type UpdateProfileRequest struct {
	ProfilePicture *string `json:"profile_picture,omitempty"`
	CoverPhoto     *string `json:"cover_photo,omitempty"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=250"`
	Country        *string `json:"country,omitempty" validate:"omitempty,max=50"`
	State          *string `json:"state,omitempty" validate:"omitempty,max=50"`
	City           *string `json:"city,omitempty" validate:"omitempty,max=50"`
	PostalCode     *string `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	Latitude       *string `json:"latitude,omitempty" validate:"omitempty,max=20"`
	Longitude      *string `json:"longitude,omitempty" validate:"omitempty,max=20"`
}

type CreateAddressRequest struct {
	AddressType  string   `json:"address_type" validate:"required,oneof=HOME WORK OTHER"`
	AddressLine1 string   `json:"address_line1" validate:"required,max=250"`
	AddressLine2 string   `json:"address_line2" validate:"max=250"`
	City         string   `json:"city" validate:"required,max=50"`
	State        string   `json:"state" validate:"required,max=50"`
	Country      string   `json:"country" validate:"required,max=50"`
	PostalCode   string   `json:"postal_code" validate:"required,max=10"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	IsDefault    bool     `json:"is_default"`
}

type UpdateAddressRequest struct {
	AddressType  string   `json:"address_type" validate:"required,oneof=HOME WORK OTHER"`
	AddressLine1 string   `json:"address_line1" validate:"required,max=250"`
	AddressLine2 string   `json:"address_line2" validate:"max=250"`
	City         string   `json:"city" validate:"required,max=50"`
	State        string   `json:"state" validate:"required,max=50"`
	Country      string   `json:"country" validate:"required,max=50"`
	PostalCode   string   `json:"postal_code" validate:"required,max=10"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}
