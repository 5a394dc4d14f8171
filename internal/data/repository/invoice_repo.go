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

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)
	FindByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error)
	SetPDFFile(ctx context.Context, id uuid.UUID, pdfFile string) error
}

type invoiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvoiceRepository(db database.PgxIface, log *zap.Logger) InvoiceRepository {
	return &invoiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "invoice")),
	}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, order_id, invoice_number, pdf_file, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		invoice.ID,
		invoice.OrderID,
		invoice.InvoiceNumber,
		invoice.PDFFile,
		invoice.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create invoice",
			zap.Error(err),
			zap.String("invoice_number", invoice.InvoiceNumber),
		)
		return fmt.Errorf("create invoice %s: %w", invoice.InvoiceNumber, err)
	}

	return nil
}

func (r *invoiceRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	query := `
		SELECT id, order_id, invoice_number, pdf_file, created_at
		FROM invoices
		WHERE order_id = $1
	`

	return r.scanOne(ctx, query, orderID.String(), orderID)
}

func (r *invoiceRepository) FindByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	query := `
		SELECT id, order_id, invoice_number, pdf_file, created_at
		FROM invoices
		WHERE invoice_number = $1
	`

	return r.scanOne(ctx, query, invoiceNumber, invoiceNumber)
}

func (r *invoiceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	query := `
		SELECT i.id, i.order_id, i.invoice_number, i.pdf_file, i.created_at
		FROM invoices i
		JOIN orders o ON o.id = i.order_id
		WHERE o.user_id = $1
		ORDER BY i.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list invoices", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list invoices for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		var invoice entity.Invoice
		err := rows.Scan(
			&invoice.ID,
			&invoice.OrderID,
			&invoice.InvoiceNumber,
			&invoice.PDFFile,
			&invoice.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) SetPDFFile(ctx context.Context, id uuid.UUID, pdfFile string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE invoices SET pdf_file = $2 WHERE id = $1`, id, pdfFile)
	if err != nil {
		r.log.Error("Failed to set invoice PDF", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("set pdf for invoice %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s not found", id.String())
	}

	return nil
}

func (r *invoiceRepository) scanOne(ctx context.Context, query, key string, arg any) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&invoice.ID,
		&invoice.OrderID,
		&invoice.InvoiceNumber,
		&invoice.PDFFile,
		&invoice.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find invoice", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("find invoice by %s: %w", key, err)
	}

	return &invoice, nil
}
