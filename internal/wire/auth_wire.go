package wire

import (
	"food-marketplace/internal/adaptor"
	"food-marketplace/internal/data/repository"
	"food-marketplace/pkg/middleware"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/otp", authHandler.RequestOTP)
	r.Post("/api/auth/otp/verify", authHandler.VerifyOTP)
	r.Post("/api/auth/google", authHandler.GoogleLogin)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/auth/logout", authHandler.Logout)
}
