package usecase

import (
	"context"
	"fmt"
	"time"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/dto/response"
	"food-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error)
	CompleteProfile(ctx context.Context, userID uuid.UUID, req *request.CompleteProfileRequest) (*response.UserResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	CreateAddress(ctx context.Context, userID uuid.UUID, req *request.CreateAddressRequest) (*response.AddressResponse, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]response.AddressResponse, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, req *request.UpdateAddressRequest) (*response.AddressResponse, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error
	Dashboard(ctx context.Context, userID uuid.UUID) (*response.CustomerDashboardResponse, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load and patch
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update account")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// CompleteProfile picks the account type after the first login. The
// role is set once; a blank profile record is provisioned alongside.
func (s *userService) CompleteProfile(ctx context.Context, userID uuid.UUID, req *request.CompleteProfileRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Complete profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load user; the role cannot be changed once chosen
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != nil {
		return nil, fmt.Errorf("account type already chosen")
	}

	role := entity.UserRole(req.Role)
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Role = &role
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to complete profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update account")
	}

	// 3. Provision the profile record if missing
	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update account")
	}
	if profile == nil {
		now := time.Now()
		profile = &entity.UserProfile{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID: userID,
		}
		if err := s.repo.Profile.Create(ctx, profile); err != nil {
			s.log.Error("Failed to create profile", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, fmt.Errorf("failed to update account")
		}
	}

	s.log.Info("Profile completed",
		zap.String("user_id", userID.String()),
		zap.String("role", req.Role))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load profile")
	}
	if profile == nil {
		return nil, fmt.Errorf("profile not found")
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load and patch
	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load profile")
	}
	if profile == nil {
		return nil, fmt.Errorf("profile not found")
	}

	if req.ProfilePicture != nil {
		profile.ProfilePicture = req.ProfilePicture
	}
	if req.CoverPhoto != nil {
		profile.CoverPhoto = req.CoverPhoto
	}
	if req.Address != nil {
		profile.Address = req.Address
	}
	if req.Country != nil {
		profile.Country = req.Country
	}
	if req.State != nil {
		profile.State = req.State
	}
	if req.City != nil {
		profile.City = req.City
	}
	if req.PostalCode != nil {
		profile.PostalCode = req.PostalCode
	}
	if req.Latitude != nil {
		profile.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		profile.Longitude = req.Longitude
	}
	profile.UpdatedAt = time.Now()

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *userService) CreateAddress(ctx context.Context, userID uuid.UUID, req *request.CreateAddressRequest) (*response.AddressResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create address validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	address := &entity.UserAddress{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       userID,
		AddressType:  entity.AddressType(req.AddressType),
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsDefault:    req.IsDefault,
	}

	if err := s.repo.Address.Create(ctx, address); err != nil {
		s.log.Error("Failed to create address", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create address")
	}

	resp := response.AddressToResponse(address)
	return &resp, nil
}

func (s *userService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]response.AddressResponse, error) {
	addresses, err := s.repo.Address.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list addresses", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list addresses")
	}

	result := make([]response.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		result = append(result, response.AddressToResponse(address))
	}

	return result, nil
}

func (s *userService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, req *request.UpdateAddressRequest) (*response.AddressResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update address validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Ownership check
	address, err := s.repo.Address.FindByID(ctx, addressID)
	if err != nil {
		s.log.Error("Failed to load address", zap.Error(err), zap.String("id", addressID.String()))
		return nil, fmt.Errorf("failed to load address")
	}
	if address == nil || address.UserID != userID {
		return nil, fmt.Errorf("address not found")
	}

	address.AddressType = entity.AddressType(req.AddressType)
	address.AddressLine1 = req.AddressLine1
	address.AddressLine2 = req.AddressLine2
	address.City = req.City
	address.State = req.State
	address.Country = req.Country
	address.PostalCode = req.PostalCode
	address.Latitude = req.Latitude
	address.Longitude = req.Longitude
	address.UpdatedAt = time.Now()

	if err := s.repo.Address.Update(ctx, address); err != nil {
		s.log.Error("Failed to update address", zap.Error(err), zap.String("id", addressID.String()))
		return nil, fmt.Errorf("failed to update address")
	}

	resp := response.AddressToResponse(address)
	return &resp, nil
}

func (s *userService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if err := s.repo.Address.Delete(ctx, addressID, userID); err != nil {
		s.log.Error("Failed to delete address", zap.Error(err), zap.String("id", addressID.String()))
		return fmt.Errorf("address not found")
	}
	return nil
}

func (s *userService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if err := s.repo.Address.SetDefault(ctx, addressID, userID); err != nil {
		s.log.Error("Failed to set default address", zap.Error(err), zap.String("id", addressID.String()))
		return fmt.Errorf("address not found")
	}
	return nil
}

func (s *userService) Dashboard(ctx context.Context, userID uuid.UUID) (*response.CustomerDashboardResponse, error) {
	orders, total, err := s.repo.Order.FindByUser(ctx, userID, 0, 5)
	if err != nil {
		s.log.Error("Failed to load dashboard orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load dashboard")
	}

	favorites, err := s.repo.Favorite.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load dashboard favorites", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load dashboard")
	}

	addresses, err := s.repo.Address.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load dashboard addresses", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load dashboard")
	}

	resp := &response.CustomerDashboardResponse{
		TotalOrders: total,
		Recent:      make([]response.OrderResponse, 0, len(orders)),
		Favorites:   make([]response.VendorResponse, 0, len(favorites)),
		Addresses:   make([]response.AddressResponse, 0, len(addresses)),
	}
	for _, order := range orders {
		resp.Recent = append(resp.Recent, response.OrderToResponse(order))
	}
	for _, vendor := range favorites {
		resp.Favorites = append(resp.Favorites, response.VendorToResponse(vendor))
	}
	for _, address := range addresses {
		resp.Addresses = append(resp.Addresses, response.AddressToResponse(address))
	}

	return resp, nil
}

// DeleteAccount soft-deletes the user and kills every open session.
func (s *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.User.Delete(ctx, userID); err != nil {
		s.log.Error("Failed to delete account", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to delete account")
	}

	if err := s.repo.Session.RevokeAllForUser(ctx, userID); err != nil {
		s.log.Warn("Failed to revoke sessions after delete",
			zap.Error(err), zap.String("user_id", userID.String()))
	}

	s.log.Info("Account deleted", zap.String("user_id", userID.String()))
	return nil
}

func (s *userService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}
