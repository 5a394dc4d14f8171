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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, order_id, payment_id, method, amount_paid, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.UserID,
		payment.OrderID,
		payment.PaymentID,
		payment.Method,
		payment.AmountPaid,
		payment.Status,
		payment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("payment_id", payment.PaymentID),
			zap.String("order_id", payment.OrderID.String()),
		)
		return fmt.Errorf("create payment %s: %w", payment.PaymentID, err)
	}

	return nil
}

func (r *paymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, user_id, order_id, payment_id, method, amount_paid, status, created_at
		FROM payments
		WHERE order_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.OrderID,
		&payment.PaymentID,
		&payment.Method,
		&payment.AmountPaid,
		&payment.Status,
		&payment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment", zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, fmt.Errorf("find payment for order %s: %w", orderID.String(), err)
	}

	return &payment, nil
}
