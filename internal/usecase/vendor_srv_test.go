package usecase

import (
	"context"
	"strings"
	"testing"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type vendorTestEnv struct {
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	vendors  *fakeVendorRepo
	mail     *fakeMailer
	service  VendorService
}

func newVendorTestEnv() *vendorTestEnv {
	env := &vendorTestEnv{
		users:    newFakeUserRepo(),
		profiles: newFakeProfileRepo(),
		vendors:  newFakeVendorRepo(),
		mail:     &fakeMailer{},
	}
	repo := &repository.Repository{
		User:    env.users,
		Profile: env.profiles,
		Vendor:  env.vendors,
	}
	env.service = NewVendorService(repo, env.mail, zap.NewNop())
	return env
}

// seedVendorAccount stores a user with the given role and, optionally,
// a completed profile.
func (env *vendorTestEnv) seedVendorAccount(role entity.UserRole, withProfile bool) *entity.User {
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Email:    "owner@example.com",
		Username: "owner",
		Role:     &role,
		IsActive: true,
	}
	env.users.byEmail[user.Email] = user

	if withProfile {
		env.profiles.byUserID[user.ID] = &entity.UserProfile{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
			UserID:       user.ID,
		}
	}
	return user
}

func TestRegisterVendor(t *testing.T) {
	env := newVendorTestEnv()
	user := env.seedVendorAccount(entity.RoleVendor, true)

	resp, err := env.service.Register(context.Background(), user.ID, &request.RegisterVendorRequest{
		Name: "Trattoria da Nonna",
	})
	if err != nil {
		t.Fatalf("Register() returned error: %v", err)
	}

	if resp.Slug != "trattoria-da-nonna" {
		t.Errorf("Register() slug = %q, expected %q", resp.Slug, "trattoria-da-nonna")
	}
	// New restaurants wait for an admin before going live.
	if resp.IsApproved {
		t.Error("Register() should leave the restaurant unapproved")
	}

	stored, _ := env.vendors.FindByUserID(context.Background(), user.ID)
	if stored == nil {
		t.Fatal("Register() did not persist the restaurant")
	}
	if stored.Name != "Trattoria da Nonna" {
		t.Errorf("stored name = %q", stored.Name)
	}
}

func TestRegisterVendorRejections(t *testing.T) {
	testCases := []struct {
		name        string
		setup       func(env *vendorTestEnv) uuid.UUID
		reqName     string
		expectedErr string
	}{
		{
			name: "customer account",
			setup: func(env *vendorTestEnv) uuid.UUID {
				return env.seedVendorAccount(entity.RoleCustomer, true).ID
			},
			reqName:     "Trattoria",
			expectedErr: "not a vendor account",
		},
		{
			name: "missing profile",
			setup: func(env *vendorTestEnv) uuid.UUID {
				return env.seedVendorAccount(entity.RoleVendor, false).ID
			},
			reqName:     "Trattoria",
			expectedErr: "complete your profile first",
		},
		{
			name: "second restaurant on the same account",
			setup: func(env *vendorTestEnv) uuid.UUID {
				user := env.seedVendorAccount(entity.RoleVendor, true)
				env.vendors.byID[uuid.New()] = &entity.Vendor{
					Base:   entity.Base{ID: uuid.New()},
					UserID: user.ID,
					Name:   "Trattoria",
					Slug:   "trattoria",
				}
				return user.ID
			},
			reqName:     "Second Place",
			expectedErr: "restaurant already registered",
		},
		{
			name: "name too short",
			setup: func(env *vendorTestEnv) uuid.UUID {
				return env.seedVendorAccount(entity.RoleVendor, true).ID
			},
			reqName:     "T",
			expectedErr: "validation failed",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			env := newVendorTestEnv()
			userID := tt.setup(env)

			_, err := env.service.Register(context.Background(), userID, &request.RegisterVendorRequest{
				Name: tt.reqName,
			})
			if err == nil || !strings.Contains(err.Error(), tt.expectedErr) {
				t.Errorf("Register() = %v, expected error containing %q", err, tt.expectedErr)
			}
		})
	}
}

func TestRegisterVendorSlugCollision(t *testing.T) {
	env := newVendorTestEnv()
	user := env.seedVendorAccount(entity.RoleVendor, true)

	// Another restaurant already owns the plain slug.
	env.vendors.byID[uuid.New()] = &entity.Vendor{
		Base:   entity.Base{ID: uuid.New()},
		UserID: uuid.New(),
		Name:   "Trattoria",
		Slug:   "trattoria",
	}

	resp, err := env.service.Register(context.Background(), user.ID, &request.RegisterVendorRequest{
		Name: "Trattoria",
	})
	if err != nil {
		t.Fatalf("Register() returned error: %v", err)
	}
	if resp.Slug != "trattoria-2" {
		t.Errorf("Register() slug = %q, expected %q", resp.Slug, "trattoria-2")
	}
}

func TestSetApproval(t *testing.T) {
	env := newVendorTestEnv()
	user := env.seedVendorAccount(entity.RoleVendor, true)

	vendor := &entity.Vendor{
		Base:       entity.Base{ID: uuid.New()},
		UserID:     user.ID,
		Name:       "Trattoria",
		Slug:       "trattoria",
		IsApproved: false,
	}
	env.vendors.byID[vendor.ID] = vendor

	resp, err := env.service.SetApproval(context.Background(), vendor.ID, true)
	if err != nil {
		t.Fatalf("SetApproval() returned error: %v", err)
	}
	if !resp.IsApproved {
		t.Error("SetApproval(true) did not approve the restaurant")
	}
	if !vendor.IsApproved {
		t.Error("SetApproval(true) did not persist the approval")
	}

	resp, err = env.service.SetApproval(context.Background(), vendor.ID, false)
	if err != nil {
		t.Fatalf("SetApproval() returned error: %v", err)
	}
	if resp.IsApproved {
		t.Error("SetApproval(false) did not revoke the approval")
	}
}

func TestSetApprovalUnknownVendor(t *testing.T) {
	env := newVendorTestEnv()

	_, err := env.service.SetApproval(context.Background(), uuid.New(), true)
	if err == nil || !strings.Contains(err.Error(), "restaurant not found") {
		t.Errorf("SetApproval() for unknown restaurant = %v, expected not found", err)
	}
}

func TestUpdateVendorRename(t *testing.T) {
	env := newVendorTestEnv()
	user := env.seedVendorAccount(entity.RoleVendor, true)

	vendor := &entity.Vendor{
		Base:       entity.Base{ID: uuid.New()},
		UserID:     user.ID,
		Name:       "Trattoria",
		Slug:       "trattoria",
		IsApproved: true,
	}
	env.vendors.byID[vendor.ID] = vendor

	resp, err := env.service.Update(context.Background(), user.ID, &request.UpdateVendorRequest{
		Name: "Osteria Nova",
	})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if resp.Name != "Osteria Nova" {
		t.Errorf("Update() name = %q", resp.Name)
	}
	// A rename takes a fresh slug.
	if resp.Slug != "osteria-nova" {
		t.Errorf("Update() slug = %q, expected %q", resp.Slug, "osteria-nova")
	}
}
