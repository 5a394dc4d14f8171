package entity

import (
	"time"
)

// OTP is keyed by email, not user ID: the code can be requested before
// the account exists. The code itself is stored bcrypt-hashed.
type OTP struct {
	BaseSimple
	Email        string     `db:"email"`
	CodeHash     string     `db:"code_hash"`
	ExpiresAt    time.Time  `db:"expires_at"`
	Attempts     int        `db:"attempts"`
	BlockedUntil *time.Time `db:"blocked_until"`
	IsUsed       bool       `db:"is_used"`
}
