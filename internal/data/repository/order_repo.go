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

// VendorOrderStats feeds the restaurant dashboard.
type VendorOrderStats struct {
	TotalOrders    int64
	TotalRevenue   float64
	CurrentRevenue float64
}

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *entity.Order, vendorIDs []uuid.UUID, items []*entity.OrderItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error)
	FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	FindItemsForVendor(ctx context.Context, orderID, vendorID uuid.UUID) ([]*entity.OrderItem, error)
	BelongsToVendor(ctx context.Context, orderID, vendorID uuid.UUID) (bool, error)
	Update(ctx context.Context, order *entity.Order) error
	StatsForVendor(ctx context.Context, vendorID uuid.UUID) (*VendorOrderStats, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, order_number, user_id, address_id, first_name, last_name,
	phone, email, address_line1, address_line2, city, state, country, postal_code,
	order_note, order_total, tax, status, payment_status, payment_method, is_ordered,
	created_at, updated_at, deleted_at`

// CreateWithItems writes the order, its vendor links and its item
// snapshots, then empties the cart, all in a single transaction.
func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order, vendorIDs []uuid.UUID, items []*entity.OrderItem) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO orders (id, order_number, user_id, address_id, first_name, last_name,
			                    phone, email, address_line1, address_line2, city, state,
			                    country, postal_code, order_note, order_total, tax, status,
			                    payment_status, payment_method, is_ordered, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			        $16, $17, $18, $19, $20, $21, $22, $23)`,
			order.ID,
			order.OrderNumber,
			order.UserID,
			order.AddressID,
			order.FirstName,
			order.LastName,
			order.Phone,
			order.Email,
			order.AddressLine1,
			order.AddressLine2,
			order.City,
			order.State,
			order.Country,
			order.PostalCode,
			order.OrderNote,
			order.OrderTotal,
			order.Tax,
			order.Status,
			order.PaymentStatus,
			order.PaymentMethod,
			order.IsOrdered,
			order.CreatedAt,
			order.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, vendorID := range vendorIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO order_vendors (order_id, vendor_id) VALUES ($1, $2)`,
				order.ID, vendorID,
			); err != nil {
				return fmt.Errorf("link order vendor %s: %w", vendorID.String(), err)
			}
		}

		for _, item := range items {
			if _, err := tx.Exec(ctx, `
				INSERT INTO order_items (id, order_id, food_item_id, food_title, quantity,
				                         price, amount, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				item.ID,
				item.OrderID,
				item.FoodItemID,
				item.FoodTitle,
				item.Quantity,
				item.Price,
				item.Amount,
				item.CreatedAt,
				item.UpdatedAt,
			); err != nil {
				return fmt.Errorf("insert order item %s: %w", item.FoodTitle, err)
			}
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM cart_items WHERE user_id = $1`, order.UserID,
		); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		return nil
	})

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order %s: %w", order.OrderNumber, err)
	}

	r.log.Info("Order created",
		zap.String("order_number", order.OrderNumber),
		zap.Int("items", len(items)),
	)
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(ctx, query, id.String(), id)
}

func (r *orderRepository) FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1 AND deleted_at IS NULL`
	return r.scanOne(ctx, query, orderNumber, orderNumber)
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1 AND is_ordered = true AND deleted_at IS NULL`,
		userID,
	).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, 0, fmt.Errorf("count orders for user %s: %w", userID.String(), err)
	}

	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE user_id = $1 AND is_ordered = true AND deleted_at IS NULL
		ORDER BY created_at DESC OFFSET $2 LIMIT $3`

	orders, err := r.scanMany(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// FindByVendor pages through the orders containing at least one dish of
// the restaurant, via the order_vendors link table.
func (r *orderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM orders o
		JOIN order_vendors ov ON ov.order_id = o.id
		WHERE ov.vendor_id = $1 AND o.is_ordered = true AND o.deleted_at IS NULL`,
		vendorID,
	).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count vendor orders",
			zap.Error(err), zap.String("vendor_id", vendorID.String()))
		return nil, 0, fmt.Errorf("count orders for vendor %s: %w", vendorID.String(), err)
	}

	query := `
		SELECT o.id, o.order_number, o.user_id, o.address_id, o.first_name, o.last_name,
		       o.phone, o.email, o.address_line1, o.address_line2, o.city, o.state,
		       o.country, o.postal_code, o.order_note, o.order_total, o.tax, o.status,
		       o.payment_status, o.payment_method, o.is_ordered, o.created_at,
		       o.updated_at, o.deleted_at
		FROM orders o
		JOIN order_vendors ov ON ov.order_id = o.id
		WHERE ov.vendor_id = $1 AND o.is_ordered = true AND o.deleted_at IS NULL
		ORDER BY o.created_at DESC OFFSET $2 LIMIT $3`

	orders, err := r.scanMany(ctx, query, vendorID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, food_item_id, food_title, quantity, price, amount,
		       created_at, updated_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at ASC
	`

	return r.scanItems(ctx, query, orderID)
}

// FindItemsForVendor narrows the order's items to those sold by one
// restaurant, for the per-vendor order view.
func (r *orderRepository) FindItemsForVendor(ctx context.Context, orderID, vendorID uuid.UUID) ([]*entity.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.food_item_id, oi.food_title, oi.quantity,
		       oi.price, oi.amount, oi.created_at, oi.updated_at
		FROM order_items oi
		JOIN food_items f ON f.id = oi.food_item_id
		WHERE oi.order_id = $1 AND f.vendor_id = $2
		ORDER BY oi.created_at ASC
	`

	return r.scanItems(ctx, query, orderID, vendorID)
}

func (r *orderRepository) BelongsToVendor(ctx context.Context, orderID, vendorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM order_vendors WHERE order_id = $1 AND vendor_id = $2)`,
		orderID, vendorID,
	).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check order vendor", zap.Error(err))
		return false, fmt.Errorf("check order vendor: %w", err)
	}

	return exists, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = $2, payment_status = $3, payment_method = $4, is_ordered = $5,
		    order_note = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		order.ID,
		order.Status,
		order.PaymentStatus,
		order.PaymentMethod,
		order.IsOrdered,
		order.OrderNote,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err), zap.String("order_number", order.OrderNumber))
		return fmt.Errorf("update order %s: %w", order.OrderNumber, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", order.OrderNumber)
	}

	return nil
}

// StatsForVendor sums the restaurant's share of paid orders: lifetime
// revenue plus the current month.
func (r *orderRepository) StatsForVendor(ctx context.Context, vendorID uuid.UUID) (*VendorOrderStats, error) {
	query := `
		SELECT COUNT(DISTINCT o.id),
		       COALESCE(SUM(oi.amount), 0),
		       COALESCE(SUM(oi.amount) FILTER (WHERE o.created_at >= date_trunc('month', NOW())), 0)
		FROM orders o
		JOIN order_vendors ov ON ov.order_id = o.id
		JOIN order_items oi ON oi.order_id = o.id
		JOIN food_items f ON f.id = oi.food_item_id AND f.vendor_id = ov.vendor_id
		WHERE ov.vendor_id = $1 AND o.payment_status = 'PAID' AND o.deleted_at IS NULL
	`

	var stats VendorOrderStats
	err := r.db.QueryRow(ctx, query, vendorID).Scan(
		&stats.TotalOrders,
		&stats.TotalRevenue,
		&stats.CurrentRevenue,
	)
	if err != nil {
		r.log.Error("Failed to load vendor stats",
			zap.Error(err), zap.String("vendor_id", vendorID.String()))
		return nil, fmt.Errorf("load stats for vendor %s: %w", vendorID.String(), err)
	}

	return &stats, nil
}

func (r *orderRepository) scanOne(ctx context.Context, query, key string, arg any) (*entity.Order, error) {
	var order entity.Order
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.UserID,
		&order.AddressID,
		&order.FirstName,
		&order.LastName,
		&order.Phone,
		&order.Email,
		&order.AddressLine1,
		&order.AddressLine2,
		&order.City,
		&order.State,
		&order.Country,
		&order.PostalCode,
		&order.OrderNote,
		&order.OrderTotal,
		&order.Tax,
		&order.Status,
		&order.PaymentStatus,
		&order.PaymentMethod,
		&order.IsOrdered,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("find order by %s: %w", key, err)
	}

	return &order, nil
}

func (r *orderRepository) scanMany(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.UserID,
			&order.AddressID,
			&order.FirstName,
			&order.LastName,
			&order.Phone,
			&order.Email,
			&order.AddressLine1,
			&order.AddressLine2,
			&order.City,
			&order.State,
			&order.Country,
			&order.PostalCode,
			&order.OrderNote,
			&order.OrderTotal,
			&order.Tax,
			&order.Status,
			&order.PaymentStatus,
			&order.PaymentMethod,
			&order.IsOrdered,
			&order.CreatedAt,
			&order.UpdatedAt,
			&order.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) scanItems(ctx context.Context, query string, args ...any) ([]*entity.OrderItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list order items", zap.Error(err))
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.FoodItemID,
			&item.FoodTitle,
			&item.Quantity,
			&item.Price,
			&item.Amount,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}
