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

type TaxRepository interface {
	Create(ctx context.Context, tax *entity.Tax) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tax, error)
	FindAll(ctx context.Context) ([]*entity.Tax, error)
	FindActive(ctx context.Context) ([]*entity.Tax, error)
	Update(ctx context.Context, tax *entity.Tax) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taxRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTaxRepository(db database.PgxIface, log *zap.Logger) TaxRepository {
	return &taxRepository{
		db:  db,
		log: log.With(zap.String("repository", "tax")),
	}
}

func (r *taxRepository) Create(ctx context.Context, tax *entity.Tax) error {
	query := `
		INSERT INTO taxes (id, tax_type, percentage, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		tax.ID,
		tax.TaxType,
		tax.Percentage,
		tax.IsActive,
		tax.CreatedAt,
		tax.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tax", zap.Error(err), zap.String("tax_type", tax.TaxType))
		return fmt.Errorf("create tax %s: %w", tax.TaxType, err)
	}

	return nil
}

func (r *taxRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tax, error) {
	query := `
		SELECT id, tax_type, percentage, is_active, created_at, updated_at
		FROM taxes
		WHERE id = $1
	`

	var tax entity.Tax
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tax.ID,
		&tax.TaxType,
		&tax.Percentage,
		&tax.IsActive,
		&tax.CreatedAt,
		&tax.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tax", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find tax %s: %w", id.String(), err)
	}

	return &tax, nil
}

func (r *taxRepository) FindAll(ctx context.Context) ([]*entity.Tax, error) {
	return r.scanMany(ctx, `
		SELECT id, tax_type, percentage, is_active, created_at, updated_at
		FROM taxes
		ORDER BY tax_type ASC
	`)
}

func (r *taxRepository) FindActive(ctx context.Context) ([]*entity.Tax, error) {
	return r.scanMany(ctx, `
		SELECT id, tax_type, percentage, is_active, created_at, updated_at
		FROM taxes
		WHERE is_active = true
		ORDER BY tax_type ASC
	`)
}

func (r *taxRepository) Update(ctx context.Context, tax *entity.Tax) error {
	query := `
		UPDATE taxes
		SET tax_type = $2, percentage = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		tax.ID,
		tax.TaxType,
		tax.Percentage,
		tax.IsActive,
		tax.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update tax", zap.Error(err), zap.String("id", tax.ID.String()))
		return fmt.Errorf("update tax %s: %w", tax.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tax %s not found", tax.ID.String())
	}

	return nil
}

func (r *taxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM taxes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete tax", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete tax %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tax %s not found", id.String())
	}

	return nil
}

func (r *taxRepository) scanMany(ctx context.Context, query string) ([]*entity.Tax, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list taxes", zap.Error(err))
		return nil, fmt.Errorf("list taxes: %w", err)
	}
	defer rows.Close()

	var taxes []*entity.Tax
	for rows.Next() {
		var tax entity.Tax
		err := rows.Scan(
			&tax.ID,
			&tax.TaxType,
			&tax.Percentage,
			&tax.IsActive,
			&tax.CreatedAt,
			&tax.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan tax row: %w", err)
		}
		taxes = append(taxes, &tax)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tax rows: %w", err)
	}

	return taxes, nil
}
