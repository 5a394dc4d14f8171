package repository

import (
	"food-marketplace/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Profile  UserProfileRepository
	Address  UserAddressRepository
	Session  SessionRepository
	OTP      OTPRepository
	Vendor   VendorRepository
	Category CategoryRepository
	Food     FoodItemRepository
	Cart     CartRepository
	Favorite FavoriteRepository
	Tax      TaxRepository
	Order    OrderRepository
	Payment  PaymentRepository
	Invoice  InvoiceRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Profile:  NewUserProfileRepository(db, log),
		Address:  NewUserAddressRepository(db, log),
		Session:  NewSessionRepository(db, log),
		OTP:      NewOTPRepository(db, log),
		Vendor:   NewVendorRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Food:     NewFoodItemRepository(db, log),
		Cart:     NewCartRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
		Tax:      NewTaxRepository(db, log),
		Order:    NewOrderRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
		Invoice:  NewInvoiceRepository(db, log),
	}
}
