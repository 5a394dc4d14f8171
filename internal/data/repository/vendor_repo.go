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

// VendorFilter narrows admin and marketplace vendor listings.
type VendorFilter struct {
	Keyword    string
	IsApproved *bool
	Offset     int
	Limit      int
}

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Vendor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)
	FindAll(ctx context.Context, filter VendorFilter) ([]*entity.Vendor, int64, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vendorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVendorRepository(db database.PgxIface, log *zap.Logger) VendorRepository {
	return &vendorRepository{
		db:  db,
		log: log.With(zap.String("repository", "vendor")),
	}
}

const vendorColumns = `id, user_id, profile_id, name, slug, license_path, is_approved,
	created_at, updated_at, deleted_at`

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, user_id, profile_id, name, slug, license_path,
		                     is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.UserID,
		vendor.ProfileID,
		vendor.Name,
		vendor.Slug,
		vendor.LicensePath,
		vendor.IsApproved,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vendor",
			zap.Error(err),
			zap.String("name", vendor.Name),
		)
		return fmt.Errorf("create vendor %s: %w", vendor.Name, err)
	}

	return nil
}

func (r *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(ctx, query, id.String(), id)
}

func (r *vendorRepository) FindBySlug(ctx context.Context, slug string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE slug = $1 AND deleted_at IS NULL`
	return r.scanOne(ctx, query, slug, slug)
}

func (r *vendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE user_id = $1 AND deleted_at IS NULL`
	return r.scanOne(ctx, query, userID.String(), userID)
}

// FindAll lists vendors with optional keyword and approval filters and
// returns the unpaginated total for the same filter.
func (r *vendorRepository) FindAll(ctx context.Context, filter VendorFilter) ([]*entity.Vendor, int64, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if filter.Keyword != "" {
		where += fmt.Sprintf(` AND name ILIKE '%%' || $%d || '%%'`, argPos)
		args = append(args, filter.Keyword)
		argPos++
	}
	if filter.IsApproved != nil {
		where += fmt.Sprintf(` AND is_approved = $%d`, argPos)
		args = append(args, *filter.IsApproved)
		argPos++
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vendors`+where, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count vendors", zap.Error(err))
		return nil, 0, fmt.Errorf("count vendors: %w", err)
	}

	query := `SELECT ` + vendorColumns + ` FROM vendors` + where +
		fmt.Sprintf(` ORDER BY created_at DESC OFFSET $%d LIMIT $%d`, argPos, argPos+1)
	args = append(args, filter.Offset, filter.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list vendors", zap.Error(err))
		return nil, 0, fmt.Errorf("list vendors: %w", err)
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
			return nil, 0, fmt.Errorf("scan vendor row: %w", err)
		}
		vendors = append(vendors, &vendor)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate vendor rows: %w", err)
	}

	return vendors, total, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $2, slug = $3, license_path = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.Slug,
		vendor.LicensePath,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update vendor",
			zap.Error(err),
			zap.String("id", vendor.ID.String()),
		)
		return fmt.Errorf("update vendor %s: %w", vendor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s not found", vendor.ID.String())
	}

	return nil
}

func (r *vendorRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	query := `UPDATE vendors SET is_approved = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, approved)
	if err != nil {
		r.log.Error("Failed to set vendor approval",
			zap.Error(err),
			zap.String("id", id.String()),
			zap.Bool("approved", approved),
		)
		return fmt.Errorf("set approval for vendor %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s not found", id.String())
	}

	return nil
}

func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE vendors SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete vendor", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete vendor %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s not found", id.String())
	}

	return nil
}

func (r *vendorRepository) scanOne(ctx context.Context, query, key string, arg any) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.db.QueryRow(ctx, query, arg).Scan(
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

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("find vendor by %s: %w", key, err)
	}

	return &vendor, nil
}
