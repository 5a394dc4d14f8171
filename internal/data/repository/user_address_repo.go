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

type UserAddressRepository interface {
	Create(ctx context.Context, address *entity.UserAddress) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserAddress, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserAddress, error)
	FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.UserAddress, error)
	Update(ctx context.Context, address *entity.UserAddress) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	SetDefault(ctx context.Context, id, userID uuid.UUID) error
}

type userAddressRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserAddressRepository(db database.PgxIface, log *zap.Logger) UserAddressRepository {
	return &userAddressRepository{
		db:  db,
		log: log.With(zap.String("repository", "user_address")),
	}
}

const addressColumns = `id, user_id, address_type, address_line1, address_line2,
	city, state, country, postal_code, latitude, longitude, is_default,
	created_at, updated_at`

// Create inserts the address. The first address of a user becomes the
// default; an address created as default demotes the previous one. All
// inside one transaction so concurrent writes cannot leave two defaults.
func (r *userAddressRepository) Create(ctx context.Context, address *entity.UserAddress) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var count int64
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM user_addresses WHERE user_id = $1`,
			address.UserID,
		).Scan(&count); err != nil {
			return fmt.Errorf("count addresses: %w", err)
		}

		if count == 0 {
			address.IsDefault = true
		}

		if address.IsDefault {
			if _, err := tx.Exec(ctx,
				`UPDATE user_addresses SET is_default = false, updated_at = NOW() WHERE user_id = $1 AND is_default = true`,
				address.UserID,
			); err != nil {
				return fmt.Errorf("clear default addresses: %w", err)
			}
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO user_addresses (id, user_id, address_type, address_line1, address_line2,
			                            city, state, country, postal_code, latitude, longitude,
			                            is_default, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			address.ID,
			address.UserID,
			address.AddressType,
			address.AddressLine1,
			address.AddressLine2,
			address.City,
			address.State,
			address.Country,
			address.PostalCode,
			address.Latitude,
			address.Longitude,
			address.IsDefault,
			address.CreatedAt,
			address.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert address: %w", err)
		}

		return nil
	})

	if err != nil {
		r.log.Error("Failed to create address",
			zap.Error(err),
			zap.String("user_id", address.UserID.String()),
		)
		return fmt.Errorf("create address for user %s: %w", address.UserID.String(), err)
	}

	return nil
}

func (r *userAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserAddress, error) {
	query := `SELECT ` + addressColumns + ` FROM user_addresses WHERE id = $1`

	var address entity.UserAddress
	err := r.db.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.UserID,
		&address.AddressType,
		&address.AddressLine1,
		&address.AddressLine2,
		&address.City,
		&address.State,
		&address.Country,
		&address.PostalCode,
		&address.Latitude,
		&address.Longitude,
		&address.IsDefault,
		&address.CreatedAt,
		&address.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find address", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find address %s: %w", id.String(), err)
	}

	return &address, nil
}

func (r *userAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserAddress, error) {
	query := `SELECT ` + addressColumns + ` FROM user_addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list addresses", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list addresses for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var addresses []*entity.UserAddress
	for rows.Next() {
		var address entity.UserAddress
		err := rows.Scan(
			&address.ID,
			&address.UserID,
			&address.AddressType,
			&address.AddressLine1,
			&address.AddressLine2,
			&address.City,
			&address.State,
			&address.Country,
			&address.PostalCode,
			&address.Latitude,
			&address.Longitude,
			&address.IsDefault,
			&address.CreatedAt,
			&address.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		addresses = append(addresses, &address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address rows: %w", err)
	}

	return addresses, nil
}

func (r *userAddressRepository) FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.UserAddress, error) {
	query := `SELECT ` + addressColumns + ` FROM user_addresses
		WHERE user_id = $1 AND is_default = true
		LIMIT 1`

	var address entity.UserAddress
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&address.ID,
		&address.UserID,
		&address.AddressType,
		&address.AddressLine1,
		&address.AddressLine2,
		&address.City,
		&address.State,
		&address.Country,
		&address.PostalCode,
		&address.Latitude,
		&address.Longitude,
		&address.IsDefault,
		&address.CreatedAt,
		&address.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find default address",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find default address for user %s: %w", userID.String(), err)
	}

	return &address, nil
}

func (r *userAddressRepository) Update(ctx context.Context, address *entity.UserAddress) error {
	query := `
		UPDATE user_addresses
		SET address_type = $3, address_line1 = $4, address_line2 = $5, city = $6,
		    state = $7, country = $8, postal_code = $9, latitude = $10, longitude = $11,
		    updated_at = $12
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		address.ID,
		address.UserID,
		address.AddressType,
		address.AddressLine1,
		address.AddressLine2,
		address.City,
		address.State,
		address.Country,
		address.PostalCode,
		address.Latitude,
		address.Longitude,
		address.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update address",
			zap.Error(err), zap.String("id", address.ID.String()))
		return fmt.Errorf("update address %s: %w", address.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("address %s not found", address.ID.String())
	}

	return nil
}

func (r *userAddressRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM user_addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.log.Error("Failed to delete address", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete address %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("address %s not found", id.String())
	}

	return nil
}

// SetDefault promotes one address and demotes the rest transactionally.
func (r *userAddressRepository) SetDefault(ctx context.Context, id, userID uuid.UUID) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE user_addresses SET is_default = false, updated_at = NOW() WHERE user_id = $1 AND is_default = true`,
			userID,
		); err != nil {
			return fmt.Errorf("clear default addresses: %w", err)
		}

		result, err := tx.Exec(ctx,
			`UPDATE user_addresses SET is_default = true, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
			id, userID,
		)
		if err != nil {
			return fmt.Errorf("set default address: %w", err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("address %s not found", id.String())
		}

		return nil
	})

	if err != nil {
		r.log.Error("Failed to set default address",
			zap.Error(err),
			zap.String("id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return err
	}

	return nil
}
