package repository

import (
	"context"
	"fmt"

	"food-marketplace/internal/data/entity"
	"food-marketplace/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *entity.FavoriteRestaurant) error
	Remove(ctx context.Context, userID, vendorID uuid.UUID) error
	Exists(ctx context.Context, userID, vendorID uuid.UUID) (bool, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

// Add is idempotent: favoriting twice is a no-op.
func (r *favoriteRepository) Add(ctx context.Context, favorite *entity.FavoriteRestaurant) error {
	query := `
		INSERT INTO favorite_restaurants (id, user_id, vendor_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, vendor_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.VendorID,
		favorite.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", favorite.UserID.String()),
			zap.String("vendor_id", favorite.VendorID.String()),
		)
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, vendorID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM favorite_restaurants WHERE user_id = $1 AND vendor_id = $2`,
		userID, vendorID)
	if err != nil {
		r.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("vendor_id", vendorID.String()),
		)
		return fmt.Errorf("remove favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("favorite not found")
	}

	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, vendorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorite_restaurants WHERE user_id = $1 AND vendor_id = $2)`,
		userID, vendorID,
	).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check favorite", zap.Error(err))
		return false, fmt.Errorf("check favorite: %w", err)
	}

	return exists, nil
}

func (r *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error) {
	query := `
		SELECT v.id, v.user_id, v.profile_id, v.name, v.slug, v.license_path,
		       v.is_approved, v.created_at, v.updated_at, v.deleted_at
		FROM favorite_restaurants fr
		JOIN vendors v ON v.id = fr.vendor_id AND v.deleted_at IS NULL
		WHERE fr.user_id = $1
		ORDER BY fr.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list favorites", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list favorites for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var vendors []*entity.Vendor
	for rows.Next() {
		var vendor entity.Vendor
		err := rows.Scan(
			&vendor.ID,
			&vendor.UserID,
			&vendor.ProfileID,
			&vendor.Name,
			&vendor.Slug,
			&vendor.LicensePath,
			&vendor.IsApproved,
			&vendor.CreatedAt,
			&vendor.UpdatedAt,
			&vendor.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		vendors = append(vendors, &vendor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorite rows: %w", err)
	}

	return vendors, nil
}
