package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory stand-ins for the pgx-backed repositories. Each fake only
// carries the state the service under test touches.

type fakeOTPRepo struct {
	latest      *entity.OTP
	created     []*entity.OTP
	usedIDs     []uuid.UUID
	incremented int
}

func (f *fakeOTPRepo) Create(ctx context.Context, otp *entity.OTP) error {
	f.created = append(f.created, otp)
	f.latest = otp
	return nil
}

func (f *fakeOTPRepo) FindLatestByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	if f.latest == nil || f.latest.Email != email {
		return nil, nil
	}
	return f.latest, nil
}

func (f *fakeOTPRepo) IncrementAttempts(ctx context.Context, id uuid.UUID, maxAttempts int, lockout time.Duration) (*entity.OTP, error) {
	f.incremented++
	if f.latest == nil || f.latest.ID != id {
		return nil, nil
	}
	f.latest.Attempts++
	if f.latest.Attempts >= maxAttempts {
		blocked := time.Now().Add(lockout)
		f.latest.BlockedUntil = &blocked
	}
	return f.latest, nil
}

func (f *fakeOTPRepo) MarkAsUsed(ctx context.Context, id uuid.UUID) error {
	f.usedIDs = append(f.usedIDs, id)
	if f.latest != nil && f.latest.ID == id {
		f.latest.IsUsed = true
	}
	return nil
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	created []*entity.User
	updated []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.created = append(f.created, user)
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.updated = append(f.updated, user)
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
		}
	}
	return nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
	revoked  []uuid.UUID
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	for _, s := range f.sessions {
		if s.Token == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token uuid.UUID) error {
	f.revoked = append(f.revoked, token)
	return nil
}

func (f *fakeSessionRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	for _, s := range f.sessions {
		if s.UserID == userID {
			f.revoked = append(f.revoked, s.Token)
		}
	}
	return nil
}

type fakeCartRepo struct {
	lines []repository.CartLine
	items map[uuid.UUID]*entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[uuid.UUID]*entity.CartItem)}
}

func (f *fakeCartRepo) Add(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	for _, existing := range f.items {
		if existing.UserID == item.UserID && existing.FoodItemID == item.FoodItemID {
			existing.Quantity++
			return existing, nil
		}
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeCartRepo) Decrease(ctx context.Context, userID, foodItemID uuid.UUID) (*entity.CartItem, error) {
	for id, existing := range f.items {
		if existing.UserID == userID && existing.FoodItemID == foodItemID {
			existing.Quantity--
			if existing.Quantity <= 0 {
				delete(f.items, id)
				return nil, nil
			}
			return existing, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) DeleteItem(ctx context.Context, userID, cartItemID uuid.UUID) error {
	delete(f.items, cartItemID)
	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	f.items = make(map[uuid.UUID]*entity.CartItem)
	f.lines = nil
	return nil
}

func (f *fakeCartRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]repository.CartLine, error) {
	return f.lines, nil
}

func (f *fakeCartRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.UserID == userID {
			count += int64(item.Quantity)
		}
	}
	return count, nil
}

type fakeTaxRepo struct {
	taxes []*entity.Tax
}

func (f *fakeTaxRepo) Create(ctx context.Context, tax *entity.Tax) error {
	f.taxes = append(f.taxes, tax)
	return nil
}

func (f *fakeTaxRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tax, error) {
	for _, tax := range f.taxes {
		if tax.ID == id {
			return tax, nil
		}
	}
	return nil, nil
}

func (f *fakeTaxRepo) FindAll(ctx context.Context) ([]*entity.Tax, error) {
	return f.taxes, nil
}

func (f *fakeTaxRepo) FindActive(ctx context.Context) ([]*entity.Tax, error) {
	var active []*entity.Tax
	for _, tax := range f.taxes {
		if tax.IsActive {
			active = append(active, tax)
		}
	}
	return active, nil
}

func (f *fakeTaxRepo) Update(ctx context.Context, tax *entity.Tax) error { return nil }

func (f *fakeTaxRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeFoodRepo struct {
	byID map[uuid.UUID]*entity.FoodItem
}

func newFakeFoodRepo() *fakeFoodRepo {
	return &fakeFoodRepo{byID: make(map[uuid.UUID]*entity.FoodItem)}
}

func (f *fakeFoodRepo) Create(ctx context.Context, item *entity.FoodItem) error {
	f.byID[item.ID] = item
	return nil
}

func (f *fakeFoodRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	return f.byID[id], nil
}

func (f *fakeFoodRepo) FindBySlug(ctx context.Context, vendorID uuid.UUID, slug string) (*entity.FoodItem, error) {
	for _, item := range f.byID {
		if item.VendorID == vendorID && item.Slug == slug {
			return item, nil
		}
	}
	return nil, nil
}

func (f *fakeFoodRepo) FindByVendor(ctx context.Context, vendorID uuid.UUID, availableOnly bool) ([]*entity.FoodItem, error) {
	var items []*entity.FoodItem
	for _, item := range f.byID {
		if item.VendorID == vendorID && (!availableOnly || item.IsAvailable) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeFoodRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID, availableOnly bool) ([]*entity.FoodItem, error) {
	var items []*entity.FoodItem
	for _, item := range f.byID {
		if item.CategoryID == categoryID && (!availableOnly || item.IsAvailable) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeFoodRepo) Search(ctx context.Context, keyword string, favoritesOf *uuid.UUID, offset, limit int) ([]*entity.FoodItem, int64, error) {
	var result []*entity.FoodItem
	for _, item := range f.byID {
		if item.IsAvailable && strings.Contains(strings.ToLower(item.Title), strings.ToLower(keyword)) {
			result = append(result, item)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeFoodRepo) Update(ctx context.Context, item *entity.FoodItem) error {
	f.byID[item.ID] = item
	return nil
}

func (f *fakeFoodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeVendorRepo struct {
	byID map[uuid.UUID]*entity.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{byID: make(map[uuid.UUID]*entity.Vendor)}
}

func (f *fakeVendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	f.byID[vendor.ID] = vendor
	return nil
}

func (f *fakeVendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return f.byID[id], nil
}

func (f *fakeVendorRepo) FindBySlug(ctx context.Context, slug string) (*entity.Vendor, error) {
	for _, v := range f.byID {
		if v.Slug == slug {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	for _, v := range f.byID {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendorRepo) FindAll(ctx context.Context, filter repository.VendorFilter) ([]*entity.Vendor, int64, error) {
	var result []*entity.Vendor
	for _, v := range f.byID {
		if filter.IsApproved != nil && v.IsApproved != *filter.IsApproved {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(filter.Keyword)) {
			continue
		}
		result = append(result, v)
	}
	return result, int64(len(result)), nil
}

func (f *fakeVendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	f.byID[vendor.ID] = vendor
	return nil
}

func (f *fakeVendorRepo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	if v, ok := f.byID[id]; ok {
		v.IsApproved = approved
	}
	return nil
}

func (f *fakeVendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

// fakeMailer records outbound mail. OTP sends happen on a goroutine,
// so access is guarded.
type fakeMailer struct {
	mu        sync.Mutex
	otpSends  int
	approvals int
}

func (f *fakeMailer) SendOTP(to, code string, expiryMinutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.otpSends++
	return nil
}

func (f *fakeMailer) SendVendorApproval(to, vendorName string, approved bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approvals++
	return nil
}

type fakeAddressRepo struct {
	byID map[uuid.UUID]*entity.UserAddress
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{byID: make(map[uuid.UUID]*entity.UserAddress)}
}

func (f *fakeAddressRepo) Create(ctx context.Context, address *entity.UserAddress) error {
	f.byID[address.ID] = address
	return nil
}

func (f *fakeAddressRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserAddress, error) {
	return f.byID[id], nil
}

func (f *fakeAddressRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserAddress, error) {
	var result []*entity.UserAddress
	for _, a := range f.byID {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAddressRepo) FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.UserAddress, error) {
	for _, a := range f.byID {
		if a.UserID == userID && a.IsDefault {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAddressRepo) Update(ctx context.Context, address *entity.UserAddress) error {
	f.byID[address.ID] = address
	return nil
}

func (f *fakeAddressRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeAddressRepo) SetDefault(ctx context.Context, id, userID uuid.UUID) error {
	for _, a := range f.byID {
		if a.UserID == userID {
			a.IsDefault = a.ID == id
		}
	}
	return nil
}

// fakeOrderRepo mirrors the transactional cart clear of the real
// repository when it is handed the cart fake.
type fakeOrderRepo struct {
	byNumber    map[string]*entity.Order
	items       map[uuid.UUID][]*entity.OrderItem
	vendorLinks map[uuid.UUID][]uuid.UUID
	cart        *fakeCartRepo
}

func newFakeOrderRepo(cart *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		byNumber:    make(map[string]*entity.Order),
		items:       make(map[uuid.UUID][]*entity.OrderItem),
		vendorLinks: make(map[uuid.UUID][]uuid.UUID),
		cart:        cart,
	}
}

func (f *fakeOrderRepo) CreateWithItems(ctx context.Context, order *entity.Order, vendorIDs []uuid.UUID, items []*entity.OrderItem) error {
	f.byNumber[order.OrderNumber] = order
	f.items[order.ID] = items
	f.vendorLinks[order.ID] = vendorIDs
	if f.cart != nil {
		f.cart.Clear(ctx, order.UserID)
	}
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for _, o := range f.byNumber {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return f.byNumber[orderNumber], nil
}

func (f *fakeOrderRepo) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error) {
	var result []*entity.Order
	for _, o := range f.byNumber {
		if o.UserID == userID && o.IsOrdered {
			result = append(result, o)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeOrderRepo) FindByVendor(ctx context.Context, vendorID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error) {
	var result []*entity.Order
	for _, o := range f.byNumber {
		for _, linked := range f.vendorLinks[o.ID] {
			if linked == vendorID {
				result = append(result, o)
			}
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeOrderRepo) FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) FindItemsForVendor(ctx context.Context, orderID, vendorID uuid.UUID) ([]*entity.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) BelongsToVendor(ctx context.Context, orderID, vendorID uuid.UUID) (bool, error) {
	for _, linked := range f.vendorLinks[orderID] {
		if linked == vendorID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	f.byNumber[order.OrderNumber] = order
	return nil
}

func (f *fakeOrderRepo) StatsForVendor(ctx context.Context, vendorID uuid.UUID) (*repository.VendorOrderStats, error) {
	return &repository.VendorOrderStats{}, nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) FindByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	for i := len(f.payments) - 1; i >= 0; i-- {
		if f.payments[i].OrderID == orderID {
			return f.payments[i], nil
		}
	}
	return nil, nil
}

type fakeProfileRepo struct {
	byUserID map[uuid.UUID]*entity.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUserID: make(map[uuid.UUID]*entity.UserProfile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.UserProfile) error {
	f.byUserID[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	return f.byUserID[userID], nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.UserProfile) error {
	f.byUserID[profile.UserID] = profile
	return nil
}

type fakeCategoryRepo struct {
	byID map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.byID[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return f.byID[id], nil
}

func (f *fakeCategoryRepo) FindBySlug(ctx context.Context, vendorID uuid.UUID, slug string) (*entity.Category, error) {
	for _, c := range f.byID {
		if c.VendorID == vendorID && c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, c := range f.byID {
		if c.VendorID == vendorID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	f.byID[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeFavoriteRepo struct {
	favorites map[uuid.UUID][]uuid.UUID
	vendors   *fakeVendorRepo
}

func newFakeFavoriteRepo(vendors *fakeVendorRepo) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{
		favorites: make(map[uuid.UUID][]uuid.UUID),
		vendors:   vendors,
	}
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, favorite *entity.FavoriteRestaurant) error {
	f.favorites[favorite.UserID] = append(f.favorites[favorite.UserID], favorite.VendorID)
	return nil
}

func (f *fakeFavoriteRepo) Remove(ctx context.Context, userID, vendorID uuid.UUID) error {
	kept := f.favorites[userID][:0]
	for _, id := range f.favorites[userID] {
		if id != vendorID {
			kept = append(kept, id)
		}
	}
	f.favorites[userID] = kept
	return nil
}

func (f *fakeFavoriteRepo) Exists(ctx context.Context, userID, vendorID uuid.UUID) (bool, error) {
	for _, id := range f.favorites[userID] {
		if id == vendorID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoriteRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vendor, error) {
	var result []*entity.Vendor
	for _, id := range f.favorites[userID] {
		if v, ok := f.vendors.byID[id]; ok {
			result = append(result, v)
		}
	}
	return result, nil
}

// fakeInvoiceRepo resolves the owning user through the order fake,
// like the real repository's join.
type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	orders   *fakeOrderRepo
}

func newFakeInvoiceRepo(orders *fakeOrderRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{orders: orders}
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	f.invoices = append(f.invoices, invoice)
	return nil
}

func (f *fakeInvoiceRepo) FindByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.OrderID == orderID {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) FindByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.InvoiceNumber == invoiceNumber {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	var result []*entity.Invoice
	for _, inv := range f.invoices {
		for _, o := range f.orders.byNumber {
			if o.ID == inv.OrderID && o.UserID == userID {
				result = append(result, inv)
			}
		}
	}
	return result, nil
}

func (f *fakeInvoiceRepo) SetPDFFile(ctx context.Context, id uuid.UUID, pdfFile string) error {
	for _, inv := range f.invoices {
		if inv.ID == id {
			path := pdfFile
			inv.PDFFile = &path
		}
	}
	return nil
}
