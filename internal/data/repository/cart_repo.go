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

// CartLine joins a cart row with its dish for totals and display.
type CartLine struct {
	CartItemID uuid.UUID
	FoodItemID uuid.UUID
	VendorID   uuid.UUID
	Title      string
	Price      float64
	Quantity   int
}

func (l CartLine) Amount() float64 {
	return l.Price * float64(l.Quantity)
}

type CartRepository interface {
	Add(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)
	Decrease(ctx context.Context, userID, foodItemID uuid.UUID) (*entity.CartItem, error)
	DeleteItem(ctx context.Context, userID, cartItemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]CartLine, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

// Add inserts the line or bumps its quantity in one statement, so
// double-clicks cannot race into duplicate rows.
func (r *cartRepository) Add(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	query := `
		INSERT INTO cart_items (id, user_id, food_item_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, food_item_id)
		DO UPDATE SET quantity = cart_items.quantity + 1, updated_at = NOW()
		RETURNING id, user_id, food_item_id, quantity, created_at, updated_at
	`

	var saved entity.CartItem
	err := r.db.QueryRow(ctx, query,
		item.ID,
		item.UserID,
		item.FoodItemID,
		item.Quantity,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.FoodItemID,
		&saved.Quantity,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to add cart item",
			zap.Error(err),
			zap.String("user_id", item.UserID.String()),
			zap.String("food_item_id", item.FoodItemID.String()),
		)
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	return &saved, nil
}

// Decrease drops the quantity by one and removes the row once it hits
// zero. Returns nil when the line no longer exists.
func (r *cartRepository) Decrease(ctx context.Context, userID, foodItemID uuid.UUID) (*entity.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = quantity - 1, updated_at = NOW()
		WHERE user_id = $1 AND food_item_id = $2
		RETURNING id, user_id, food_item_id, quantity, created_at, updated_at
	`

	var item entity.CartItem
	err := r.db.QueryRow(ctx, query, userID, foodItemID).Scan(
		&item.ID,
		&item.UserID,
		&item.FoodItemID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to decrease cart item",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("decrease cart item: %w", err)
	}

	if item.Quantity <= 0 {
		if _, err := r.db.Exec(ctx,
			`DELETE FROM cart_items WHERE id = $1`, item.ID); err != nil {
			return nil, fmt.Errorf("remove empty cart line: %w", err)
		}
		return nil, nil
	}

	return &item, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, userID, cartItemID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, cartItemID, userID)
	if err != nil {
		r.log.Error("Failed to delete cart item",
			zap.Error(err), zap.String("id", cartItemID.String()))
		return fmt.Errorf("delete cart item %s: %w", cartItemID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cart item %s not found", cartItemID.String())
	}

	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error("Failed to clear cart", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("clear cart for user %s: %w", userID.String(), err)
	}

	return nil
}

func (r *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]CartLine, error) {
	query := `
		SELECT c.id, c.food_item_id, f.vendor_id, f.title, f.price, c.quantity
		FROM cart_items c
		JOIN food_items f ON f.id = c.food_item_id
		WHERE c.user_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list cart for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var lines []CartLine
	for rows.Next() {
		var line CartLine
		err := rows.Scan(
			&line.CartItemID,
			&line.FoodItemID,
			&line.VendorID,
			&line.Title,
			&line.Price,
			&line.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart rows: %w", err)
	}

	return lines, nil
}

func (r *cartRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count cart", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("count cart for user %s: %w", userID.String(), err)
	}

	return count, nil
}
