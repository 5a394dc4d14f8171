package response

import (
	"time"

	"food-marketplace/internal/data/entity"
)

type AuthResponse struct {
	UserID        string           `json:"user_id"`
	Token         string           `json:"token"`
	ExpiresAt     time.Time        `json:"expires_at"`
	Email         string           `json:"email"`
	Username      string           `json:"username"`
	Role          *entity.UserRole `json:"role,omitempty"`
	EmailVerified bool             `json:"email_verified"`
	NewUser       bool             `json:"new_user"`
}

type OTPRequestedResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func AuthToResponse(user *entity.User, session *entity.Session, newUser bool) AuthResponse {
	resp := AuthResponse{
		UserID:        user.ID.String(),
		Email:         user.Email,
		Username:      user.Username,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
		NewUser:       newUser,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
