package response

import (
	"time"

	"food-marketplace/internal/data/entity"
)

type VendorResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	LicensePath *string   `json:"license_path,omitempty"`
	IsApproved  bool      `json:"is_approved"`
	IsFavorite  bool      `json:"is_favorite,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type VendorDetailResponse struct {
	VendorResponse
	Profile    *ProfileResponse   `json:"profile,omitempty"`
	Categories []CategoryResponse `json:"categories"`
}

type VendorDashboardResponse struct {
	Vendor         VendorResponse  `json:"vendor"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   float64         `json:"total_revenue"`
	CurrentRevenue float64         `json:"current_month_revenue"`
	Recent         []OrderResponse `json:"recent_orders"`
}

func VendorToResponse(vendor *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID:          vendor.ID.String(),
		Name:        vendor.Name,
		Slug:        vendor.Slug,
		LicensePath: vendor.LicensePath,
		IsApproved:  vendor.IsApproved,
		CreatedAt:   vendor.CreatedAt,
	}
}
