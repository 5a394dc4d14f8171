package request

type RegisterVendorRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	LicensePath *string `json:"license_path,omitempty" validate:"omitempty,max=250"`
}

type UpdateVendorRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	LicensePath *string `json:"license_path,omitempty" validate:"omitempty,max=250"`
}

type ListVendorsRequest struct {
	PaginatedRequest
	Keyword    string `json:"keyword" validate:"max=100"`
	IsApproved *bool  `json:"is_approved,omitempty"`
}
