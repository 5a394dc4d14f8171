package usecase

import (
	"context"
	"fmt"
	"time"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/dto/response"
	"food-marketplace/pkg/mailer"
	"food-marketplace/pkg/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

type VendorService interface {
	Register(ctx context.Context, userID uuid.UUID, req *request.RegisterVendorRequest) (*response.VendorResponse, error)
	MyVendor(ctx context.Context, userID uuid.UUID) (*response.VendorResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *request.UpdateVendorRequest) (*response.VendorResponse, error)
	ListAdmin(ctx context.Context, req *request.ListVendorsRequest) (*response.PaginatedResponse[response.VendorResponse], error)
	AdminDetail(ctx context.Context, vendorID uuid.UUID) (*response.VendorResponse, error)
	AdminUpdate(ctx context.Context, vendorID uuid.UUID, req *request.UpdateVendorRequest) (*response.VendorResponse, error)
	AdminDelete(ctx context.Context, vendorID uuid.UUID) error
	SetApproval(ctx context.Context, vendorID uuid.UUID, approved bool) (*response.VendorResponse, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*response.VendorDashboardResponse, error)
}

type vendorService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewVendorService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) VendorService {
	return &vendorService{
		repo: repo,
		mail: mail,
		log:  log,
	}
}

// Register opens a restaurant for a vendor account. The restaurant
// stays off the marketplace until an admin approves it.
func (s *vendorService) Register(ctx context.Context, userID uuid.UUID, req *request.RegisterVendorRequest) (*response.VendorResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register vendor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. The account must carry the vendor role
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	if user.Role == nil || *user.Role != entity.RoleVendor {
		return nil, fmt.Errorf("account is not a vendor account")
	}

	// 3. One restaurant per account
	existing, err := s.repo.Vendor.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check vendor", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to register restaurant")
	}
	if existing != nil {
		return nil, fmt.Errorf("restaurant already registered")
	}

	// 4. The profile record anchors the restaurant's public page
	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to register restaurant")
	}
	if profile == nil {
		return nil, fmt.Errorf("complete your profile first")
	}

	vendorSlug, err := s.uniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	vendor := &entity.Vendor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		ProfileID:   profile.ID,
		Name:        req.Name,
		Slug:        vendorSlug,
		LicensePath: req.LicensePath,
		IsApproved:  false,
	}

	if err := s.repo.Vendor.Create(ctx, vendor); err != nil {
		s.log.Error("Failed to create vendor", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to register restaurant")
	}

	s.log.Info("Restaurant registered",
		zap.String("vendor_id", vendor.ID.String()),
		zap.String("name", vendor.Name))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) MyVendor(ctx context.Context, userID uuid.UUID) (*response.VendorResponse, error) {
	vendor, err := s.findOwnVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) Update(ctx context.Context, userID uuid.UUID, req *request.UpdateVendorRequest) (*response.VendorResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update vendor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findOwnVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2. Renames re-slug the restaurant
	if req.Name != vendor.Name {
		vendorSlug, err := s.uniqueSlug(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		vendor.Slug = vendorSlug
	}

	vendor.Name = req.Name
	vendor.LicensePath = req.LicensePath
	vendor.UpdatedAt = time.Now()

	if err := s.repo.Vendor.Update(ctx, vendor); err != nil {
		s.log.Error("Failed to update vendor", zap.Error(err), zap.String("id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to update restaurant")
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) ListAdmin(ctx context.Context, req *request.ListVendorsRequest) (*response.PaginatedResponse[response.VendorResponse], error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List vendors validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendors, total, err := s.repo.Vendor.FindAll(ctx, repository.VendorFilter{
		Keyword:    req.Keyword,
		IsApproved: req.IsApproved,
		Offset:     req.Offset(),
		Limit:      req.Limit(),
	})
	if err != nil {
		s.log.Error("Failed to list vendors", zap.Error(err))
		return nil, fmt.Errorf("failed to list restaurants")
	}

	data := make([]response.VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		data = append(data, response.VendorToResponse(vendor))
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *vendorService) AdminDetail(ctx context.Context, vendorID uuid.UUID) (*response.VendorResponse, error) {
	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("id", vendorID.String()))
		return nil, fmt.Errorf("failed to find restaurant")
	}
	if vendor == nil {
		return nil, fmt.Errorf("restaurant not found")
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) AdminUpdate(ctx context.Context, vendorID uuid.UUID, req *request.UpdateVendorRequest) (*response.VendorResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin update vendor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("id", vendorID.String()))
		return nil, fmt.Errorf("failed to find restaurant")
	}
	if vendor == nil {
		return nil, fmt.Errorf("restaurant not found")
	}

	// 2. Renames re-slug the restaurant
	if req.Name != vendor.Name {
		vendorSlug, err := s.uniqueSlug(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		vendor.Slug = vendorSlug
	}

	vendor.Name = req.Name
	vendor.LicensePath = req.LicensePath
	vendor.UpdatedAt = time.Now()

	if err := s.repo.Vendor.Update(ctx, vendor); err != nil {
		s.log.Error("Failed to update vendor", zap.Error(err), zap.String("id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to update restaurant")
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) AdminDelete(ctx context.Context, vendorID uuid.UUID) error {
	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("id", vendorID.String()))
		return fmt.Errorf("failed to find restaurant")
	}
	if vendor == nil {
		return fmt.Errorf("restaurant not found")
	}

	if err := s.repo.Vendor.Delete(ctx, vendorID); err != nil {
		s.log.Error("Failed to delete vendor", zap.Error(err), zap.String("id", vendorID.String()))
		return fmt.Errorf("failed to delete restaurant")
	}

	s.log.Info("Restaurant removed by admin", zap.String("vendor_id", vendorID.String()))
	return nil
}

// SetApproval flips the marketplace listing switch and mails the owner
// the verdict.
func (s *vendorService) SetApproval(ctx context.Context, vendorID uuid.UUID, approved bool) (*response.VendorResponse, error) {
	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("id", vendorID.String()))
		return nil, fmt.Errorf("failed to find restaurant")
	}
	if vendor == nil {
		return nil, fmt.Errorf("restaurant not found")
	}

	if err := s.repo.Vendor.SetApproval(ctx, vendorID, approved); err != nil {
		s.log.Error("Failed to set approval", zap.Error(err), zap.String("id", vendorID.String()))
		return nil, fmt.Errorf("failed to update restaurant")
	}
	vendor.IsApproved = approved

	// Notify the owner (async)
	owner, err := s.repo.User.FindByID(ctx, vendor.UserID)
	if err != nil || owner == nil {
		s.log.Warn("Could not load vendor owner for notification",
			zap.Error(err), zap.String("vendor_id", vendorID.String()))
	} else {
		go s.sendApprovalEmail(owner.Email, vendor.Name, approved)
	}

	s.log.Info("Vendor approval changed",
		zap.String("vendor_id", vendorID.String()),
		zap.Bool("approved", approved))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) Dashboard(ctx context.Context, userID uuid.UUID) (*response.VendorDashboardResponse, error) {
	vendor, err := s.findOwnVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.Order.StatsForVendor(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to load vendor stats", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to load dashboard")
	}

	orders, _, err := s.repo.Order.FindByVendor(ctx, vendor.ID, 0, 5)
	if err != nil {
		s.log.Error("Failed to load vendor orders", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to load dashboard")
	}

	resp := &response.VendorDashboardResponse{
		Vendor:         response.VendorToResponse(vendor),
		TotalOrders:    stats.TotalOrders,
		TotalRevenue:   stats.TotalRevenue,
		CurrentRevenue: stats.CurrentRevenue,
		Recent:         make([]response.OrderResponse, 0, len(orders)),
	}
	for _, order := range orders {
		resp.Recent = append(resp.Recent, response.OrderToResponse(order))
	}

	return resp, nil
}

// ==================== HELPER METHODS ====================

func (s *vendorService) findOwnVendor(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.repo.Vendor.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find restaurant")
	}
	if vendor == nil {
		return nil, fmt.Errorf("restaurant not found")
	}
	return vendor, nil
}

// uniqueSlug appends a numeric suffix until the slug is free.
func (s *vendorService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)

	candidate := base
	for i := 2; ; i++ {
		existing, err := s.repo.Vendor.FindBySlug(ctx, candidate)
		if err != nil {
			s.log.Error("Failed to check slug", zap.Error(err), zap.String("slug", candidate))
			return "", fmt.Errorf("failed to register restaurant")
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *vendorService) sendApprovalEmail(email, vendorName string, approved bool) {
	if err := s.mail.SendVendorApproval(email, vendorName, approved); err != nil {
		s.log.Error("Failed to send approval email",
			zap.Error(err), zap.String("email", email))
	}
}
