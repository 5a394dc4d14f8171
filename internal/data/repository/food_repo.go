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

type FoodItemRepository interface {
	Create(ctx context.Context, item *entity.FoodItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error)
	FindBySlug(ctx context.Context, vendorID uuid.UUID, slug string) (*entity.FoodItem, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, availableOnly bool) ([]*entity.FoodItem, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID, availableOnly bool) ([]*entity.FoodItem, error)
	Search(ctx context.Context, keyword string, favoritesOf *uuid.UUID, offset, limit int) ([]*entity.FoodItem, int64, error)
	Update(ctx context.Context, item *entity.FoodItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type foodItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFoodItemRepository(db database.PgxIface, log *zap.Logger) FoodItemRepository {
	return &foodItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "food_item")),
	}
}

const foodColumns = `id, vendor_id, category_id, title, slug, description, price,
	image_url, is_available, created_at, updated_at`

func (r *foodItemRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	query := `
		INSERT INTO food_items (id, vendor_id, category_id, title, slug, description,
		                        price, image_url, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.VendorID,
		item.CategoryID,
		item.Title,
		item.Slug,
		item.Description,
		item.Price,
		item.ImageURL,
		item.IsAvailable,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create food item",
			zap.Error(err),
			zap.String("title", item.Title),
		)
		return fmt.Errorf("create food item %s: %w", item.Title, err)
	}

	return nil
}

func (r *foodItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM food_items WHERE id = $1`
	return r.scanOne(ctx, query, id.String(), id)
}

func (r *foodItemRepository) FindBySlug(ctx context.Context, vendorID uuid.UUID, slug string) (*entity.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM food_items WHERE vendor_id = $1 AND slug = $2`

	var item entity.FoodItem
	err := r.db.QueryRow(ctx, query, vendorID, slug).Scan(
		&item.ID,
		&item.VendorID,
		&item.CategoryID,
		&item.Title,
		&item.Slug,
		&item.Description,
		&item.Price,
		&item.ImageURL,
		&item.IsAvailable,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find food item by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find food item by slug %s: %w", slug, err)
	}

	return &item, nil
}

func (r *foodItemRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, availableOnly bool) ([]*entity.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM food_items WHERE vendor_id = $1`
	if availableOnly {
		query += ` AND is_available = true`
	}
	query += ` ORDER BY title ASC`

	return r.scanMany(ctx, query, vendorID)
}

func (r *foodItemRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, availableOnly bool) ([]*entity.FoodItem, error) {
	query := `SELECT ` + foodColumns + ` FROM food_items WHERE category_id = $1`
	if availableOnly {
		query += ` AND is_available = true`
	}
	query += ` ORDER BY title ASC`

	return r.scanMany(ctx, query, categoryID)
}

// Search matches available dishes of approved restaurants by dish title
// or restaurant name. When favoritesOf is set, results are limited to
// that user's favorite restaurants.
func (r *foodItemRepository) Search(ctx context.Context, keyword string, favoritesOf *uuid.UUID, offset, limit int) ([]*entity.FoodItem, int64, error) {
	where := `
		FROM food_items f
		JOIN vendors v ON v.id = f.vendor_id AND v.is_approved = true AND v.deleted_at IS NULL
		WHERE f.is_available = true
		  AND (f.title ILIKE '%' || $1 || '%' OR v.name ILIKE '%' || $1 || '%')
	`
	args := []any{keyword}
	if favoritesOf != nil {
		where += ` AND EXISTS (
			SELECT 1 FROM favorite_restaurants fr
			WHERE fr.vendor_id = v.id AND fr.user_id = $2
		)`
		args = append(args, *favoritesOf)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count food search", zap.Error(err), zap.String("keyword", keyword))
		return nil, 0, fmt.Errorf("count food search %s: %w", keyword, err)
	}

	query := `
		SELECT f.id, f.vendor_id, f.category_id, f.title, f.slug, f.description,
		       f.price, f.image_url, f.is_available, f.created_at, f.updated_at` +
		where +
		fmt.Sprintf(` ORDER BY f.title ASC OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search food items", zap.Error(err), zap.String("keyword", keyword))
		return nil, 0, fmt.Errorf("search food items %s: %w", keyword, err)
	}
	defer rows.Close()

	items, err := collectFoodRows(rows)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *foodItemRepository) Update(ctx context.Context, item *entity.FoodItem) error {
	query := `
		UPDATE food_items
		SET category_id = $2, title = $3, slug = $4, description = $5, price = $6,
		    image_url = $7, is_available = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.CategoryID,
		item.Title,
		item.Slug,
		item.Description,
		item.Price,
		item.ImageURL,
		item.IsAvailable,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update food item",
			zap.Error(err), zap.String("id", item.ID.String()))
		return fmt.Errorf("update food item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("food item %s not found", item.ID.String())
	}

	return nil
}

func (r *foodItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM food_items WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete food item", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete food item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("food item %s not found", id.String())
	}

	return nil
}

func (r *foodItemRepository) scanOne(ctx context.Context, query, key string, arg any) (*entity.FoodItem, error) {
	var item entity.FoodItem
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&item.ID,
		&item.VendorID,
		&item.CategoryID,
		&item.Title,
		&item.Slug,
		&item.Description,
		&item.Price,
		&item.ImageURL,
		&item.IsAvailable,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find food item", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("find food item by %s: %w", key, err)
	}

	return &item, nil
}

func (r *foodItemRepository) scanMany(ctx context.Context, query string, arg any) ([]*entity.FoodItem, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		r.log.Error("Failed to list food items", zap.Error(err))
		return nil, fmt.Errorf("list food items: %w", err)
	}
	defer rows.Close()

	return collectFoodRows(rows)
}

func collectFoodRows(rows pgx.Rows) ([]*entity.FoodItem, error) {
	var items []*entity.FoodItem
	for rows.Next() {
		var item entity.FoodItem
		err := rows.Scan(
			&item.ID,
			&item.VendorID,
			&item.CategoryID,
			&item.Title,
			&item.Slug,
			&item.Description,
			&item.Price,
			&item.ImageURL,
			&item.IsAvailable,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan food item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food item rows: %w", err)
	}

	return items, nil
}
