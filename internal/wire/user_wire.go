package wire

import (
	"food-marketplace/internal/adaptor"
	"food-marketplace/internal/data/repository"
	"food-marketplace/pkg/middleware"
	"food-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/users/me", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", userHandler.Me)
		r.Put("/", userHandler.Update)
		r.Delete("/", userHandler.DeleteAccount)
		r.Post("/complete", userHandler.CompleteProfile)

		r.Get("/profile", userHandler.GetProfile)
		r.Put("/profile", userHandler.UpdateProfile)

		r.Get("/dashboard", userHandler.Dashboard)

		r.Post("/addresses", userHandler.CreateAddress)
		r.Get("/addresses", userHandler.ListAddresses)
		r.Put("/addresses/{id}", userHandler.UpdateAddress)
		r.Delete("/addresses/{id}", userHandler.DeleteAddress)
		r.Post("/addresses/{id}/default", userHandler.SetDefaultAddress)
	})
}
