package usecase

import (
	"food-marketplace/internal/data/repository"
	"food-marketplace/pkg/mailer"
	"food-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Vendor      VendorService
	Menu        MenuService
	Cart        CartService
	Marketplace MarketplaceService
	Order       OrderService
	Invoice     InvoiceService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, mail, log),
		User:        NewUserService(repo, log),
		Vendor:      NewVendorService(repo, mail, log),
		Menu:        NewMenuService(repo, log),
		Cart:        NewCartService(repo, log),
		Marketplace: NewMarketplaceService(repo, log),
		Order:       NewOrderService(repo, log),
		Invoice:     NewInvoiceService(repo, config, log),
	}
}
