package repository

import (
	"context"
	"fmt"
	"time"

	"food-marketplace/internal/data/entity"
	"food-marketplace/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OTP) error
	FindLatestByEmail(ctx context.Context, email string) (*entity.OTP, error)
	IncrementAttempts(ctx context.Context, id uuid.UUID, maxAttempts int, lockout time.Duration) (*entity.OTP, error)
	MarkAsUsed(ctx context.Context, id uuid.UUID) error
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

// Create stores a new code and invalidates any earlier unused codes for
// the same email inside one transaction, so only the latest code can
// verify.
func (r *otpRepository) Create(ctx context.Context, otp *entity.OTP) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE otps SET is_used = true WHERE email = $1 AND is_used = false`,
			otp.Email,
		); err != nil {
			return fmt.Errorf("invalidate previous codes: %w", err)
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO otps (id, email, code_hash, expires_at, attempts, blocked_until, is_used, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			otp.ID,
			otp.Email,
			otp.CodeHash,
			otp.ExpiresAt,
			otp.Attempts,
			otp.BlockedUntil,
			otp.IsUsed,
			otp.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert code: %w", err)
		}

		return nil
	})

	if err != nil {
		r.log.Error("Failed to create OTP", zap.Error(err), zap.String("email", otp.Email))
		return fmt.Errorf("create otp for %s: %w", otp.Email, err)
	}

	return nil
}

func (r *otpRepository) FindLatestByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	query := `
		SELECT id, email, code_hash, expires_at, attempts, blocked_until, is_used, created_at
		FROM otps
		WHERE email = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, email).Scan(
		&otp.ID,
		&otp.Email,
		&otp.CodeHash,
		&otp.ExpiresAt,
		&otp.Attempts,
		&otp.BlockedUntil,
		&otp.IsUsed,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find otp for %s: %w", email, err)
	}

	return &otp, nil
}

// IncrementAttempts bumps the attempt counter in a single statement so
// concurrent verifications cannot lose updates. Once the counter
// reaches maxAttempts the row is blocked for the lockout window.
func (r *otpRepository) IncrementAttempts(ctx context.Context, id uuid.UUID, maxAttempts int, lockout time.Duration) (*entity.OTP, error) {
	query := `
		UPDATE otps
		SET attempts = attempts + 1,
		    blocked_until = CASE
		        WHEN attempts + 1 >= $2 THEN NOW() + $3::interval
		        ELSE blocked_until
		    END
		WHERE id = $1
		RETURNING id, email, code_hash, expires_at, attempts, blocked_until, is_used, created_at
	`

	interval := fmt.Sprintf("%d minutes", int(lockout.Minutes()))

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, id, maxAttempts, interval).Scan(
		&otp.ID,
		&otp.Email,
		&otp.CodeHash,
		&otp.ExpiresAt,
		&otp.Attempts,
		&otp.BlockedUntil,
		&otp.IsUsed,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to increment OTP attempts", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("increment attempts for otp %s: %w", id.String(), err)
	}

	return &otp, nil
}

func (r *otpRepository) MarkAsUsed(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`UPDATE otps SET is_used = true WHERE id = $1 AND is_used = false`, id)
	if err != nil {
		r.log.Error("Failed to mark OTP as used", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("mark otp %s as used: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("otp %s not found or already used", id.String())
	}

	return nil
}
