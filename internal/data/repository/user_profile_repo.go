package repository

import (
	"context"
	"fmt"

	"food-marketplace/internal/data/entity"
	"food-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	Update(ctx context.Context, profile *entity.UserProfile) error
}

type userProfileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserProfileRepository(db database.PgxIface, log *zap.Logger) UserProfileRepository {
	return &userProfileRepository{
		db:  db,
		log: log.With(zap.String("repository", "user_profile")),
	}
}

func (r *userProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, user_id, profile_picture, cover_photo, address,
		                           country, state, city, postal_code, latitude, longitude,
		                           created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.ProfilePicture,
		profile.CoverPhoto,
		profile.Address,
		profile.Country,
		profile.State,
		profile.City,
		profile.PostalCode,
		profile.Latitude,
		profile.Longitude,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *userProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	query := `
		SELECT id, user_id, profile_picture, cover_photo, address, country, state,
		       city, postal_code, latitude, longitude, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile entity.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.ProfilePicture,
		&profile.CoverPhoto,
		&profile.Address,
		&profile.Country,
		&profile.State,
		&profile.City,
		&profile.PostalCode,
		&profile.Latitude,
		&profile.Longitude,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find profile for user %s: %w", userID.String(), err)
	}

	return &profile, nil
}

func (r *userProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET profile_picture = $2, cover_photo = $3, address = $4, country = $5,
		    state = $6, city = $7, postal_code = $8, latitude = $9, longitude = $10,
		    updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.ProfilePicture,
		profile.CoverPhoto,
		profile.Address,
		profile.Country,
		profile.State,
		profile.City,
		profile.PostalCode,
		profile.Latitude,
		profile.Longitude,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user profile",
			zap.Error(err),
			zap.String("profile_id", profile.ID.String()),
		)
		return fmt.Errorf("update profile %s: %w", profile.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", profile.ID.String())
	}

	return nil
}
