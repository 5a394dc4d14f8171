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

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, vendorID uuid.UUID, slug string) (*entity.Category, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, vendor_id, name, slug, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.VendorID,
		category.Name,
		category.Slug,
		category.Description,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	query := `
		SELECT id, vendor_id, name, slug, description, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.VendorID,
		&category.Name,
		&category.Slug,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find category %s: %w", id.String(), err)
	}

	return &category, nil
}

// FindBySlug is scoped to a vendor: slugs are only unique per
// restaurant.
func (r *categoryRepository) FindBySlug(ctx context.Context, vendorID uuid.UUID, slug string) (*entity.Category, error) {
	query := `
		SELECT id, vendor_id, name, slug, description, created_at, updated_at
		FROM categories
		WHERE vendor_id = $1 AND slug = $2
	`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, vendorID, slug).Scan(
		&category.ID,
		&category.VendorID,
		&category.Name,
		&category.Slug,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by slug",
			zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find category by slug %s: %w", slug, err)
	}

	return &category, nil
}

func (r *categoryRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Category, error) {
	query := `
		SELECT id, vendor_id, name, slug, description, created_at, updated_at
		FROM categories
		WHERE vendor_id = $1
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query, vendorID)
	if err != nil {
		r.log.Error("Failed to list categories",
			zap.Error(err), zap.String("vendor_id", vendorID.String()))
		return nil, fmt.Errorf("list categories for vendor %s: %w", vendorID.String(), err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(
			&category.ID,
			&category.VendorID,
			&category.Name,
			&category.Slug,
			&category.Description,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.Description,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err), zap.String("id", category.ID.String()))
		return fmt.Errorf("update category %s: %w", category.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", category.ID.String())
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete category", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete category %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", id.String())
	}

	return nil
}
