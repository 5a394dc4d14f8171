package usecase

import (
	"context"
	"fmt"
	"time"

	"food-marketplace/internal/data/entity"
	"food-marketplace/internal/data/repository"
	"food-marketplace/internal/dto/request"
	"food-marketplace/internal/dto/response"
	"food-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	Checkout(ctx context.Context, userID uuid.UUID, req *request.CheckoutRequest) (*response.OrderResponse, error)
	Pay(ctx context.Context, userID uuid.UUID, req *request.PayOrderRequest) (*response.OrderResponse, error)
	MyOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	OrderDetail(ctx context.Context, userID uuid.UUID, orderNumber string) (*response.OrderResponse, error)
	VendorOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	VendorOrderDetail(ctx context.Context, userID uuid.UUID, orderNumber string) (*response.OrderResponse, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, orderNumber string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
	CreateTax(ctx context.Context, req *request.CreateTaxRequest) (*response.TaxResponse, error)
	ListTaxes(ctx context.Context) ([]response.TaxResponse, error)
	UpdateTax(ctx context.Context, taxID uuid.UUID, req *request.UpdateTaxRequest) (*response.TaxResponse, error)
	DeleteTax(ctx context.Context, taxID uuid.UUID) error
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log,
	}
}

// Checkout snapshots the cart into an order. Cash orders are placed
// immediately with payment pending on delivery; card and PIX orders
// wait for the payment step.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID, req *request.CheckoutRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. The cart must not be empty
	lines, err := s.repo.Cart.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to checkout")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	// 3. Optional saved address must belong to the user
	var addressID *uuid.UUID
	if req.AddressID != nil {
		id, err := uuid.Parse(*req.AddressID)
		if err != nil {
			return nil, fmt.Errorf("invalid address id")
		}
		address, err := s.repo.Address.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to load address", zap.Error(err), zap.String("id", id.String()))
			return nil, fmt.Errorf("failed to checkout")
		}
		if address == nil || address.UserID != userID {
			return nil, fmt.Errorf("address not found")
		}
		addressID = &id
	}

	// 4. Totals over the snapshot prices
	var subtotal float64
	vendorSet := map[uuid.UUID]bool{}
	for _, line := range lines {
		subtotal += line.Amount()
		vendorSet[line.VendorID] = true
	}
	subtotal = roundMoney(subtotal)

	taxes, err := s.repo.Tax.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to load taxes", zap.Error(err))
		return nil, fmt.Errorf("failed to checkout")
	}
	_, taxTotal := taxBreakdown(subtotal, taxes)

	method := entity.PaymentMethod(req.PaymentMethod)
	isCash := method == entity.PaymentMethodCash

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderNumber:   utils.GenerateOrderNumber(),
		UserID:        userID,
		AddressID:     addressID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Email:         req.Email,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		PostalCode:    req.PostalCode,
		OrderNote:     req.OrderNote,
		OrderTotal:    roundMoney(subtotal + taxTotal),
		Tax:           taxTotal,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: method,
		IsOrdered:     isCash,
	}

	vendorIDs := make([]uuid.UUID, 0, len(vendorSet))
	for id := range vendorSet {
		vendorIDs = append(vendorIDs, id)
	}

	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, &entity.OrderItem{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			OrderID:    order.ID,
			FoodItemID: line.FoodItemID,
			FoodTitle:  line.Title,
			Quantity:   line.Quantity,
			Price:      line.Price,
			Amount:     roundMoney(line.Amount()),
		})
	}

	// 5. Order, vendor links, item snapshots and cart clear in one tx
	if err := s.repo.Order.CreateWithItems(ctx, order, vendorIDs, items); err != nil {
		return nil, fmt.Errorf("failed to checkout")
	}

	// 6. Cash on delivery records a pending payment up front
	if isCash {
		payment := &entity.Payment{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			UserID:     userID,
			OrderID:    order.ID,
			PaymentID:  utils.GeneratePaymentID(string(method)),
			Method:     method,
			AmountPaid: order.OrderTotal,
			Status:     entity.PaymentStatusPending,
		}
		if err := s.repo.Payment.Create(ctx, payment); err != nil {
			s.log.Warn("Failed to record cash payment",
				zap.Error(err), zap.String("order_number", order.OrderNumber))
		}
	}

	s.log.Info("Checkout complete",
		zap.String("order_number", order.OrderNumber),
		zap.String("user_id", userID.String()),
		zap.Float64("order_total", order.OrderTotal))

	return s.orderWithDetails(ctx, order)
}

// Pay settles a card or PIX order and confirms it.
func (s *orderService) Pay(ctx context.Context, userID uuid.UUID, req *request.PayOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Pay validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load and check the order
	order, err := s.findOwnOrder(ctx, userID, req.OrderNumber)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == entity.PaymentStatusPaid {
		return nil, fmt.Errorf("order already paid")
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, fmt.Errorf("order is cancelled")
	}

	method := entity.PaymentMethod(req.PaymentMethod)

	// 3. Record the payment
	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:     userID,
		OrderID:    order.ID,
		PaymentID:  utils.GeneratePaymentID(string(method)),
		Method:     method,
		AmountPaid: order.OrderTotal,
		Status:     entity.PaymentStatusPaid,
	}
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to record payment", zap.Error(err), zap.String("order_number", order.OrderNumber))
		return nil, fmt.Errorf("failed to process payment")
	}

	// 4. Place and confirm the order
	order.PaymentStatus = entity.PaymentStatusPaid
	order.PaymentMethod = method
	order.Status = entity.OrderStatusConfirmed
	order.IsOrdered = true
	order.UpdatedAt = time.Now()

	if err := s.repo.Order.Update(ctx, order); err != nil {
		s.log.Error("Failed to confirm order", zap.Error(err), zap.String("order_number", order.OrderNumber))
		return nil, fmt.Errorf("failed to process payment")
	}

	s.log.Info("Order paid",
		zap.String("order_number", order.OrderNumber),
		zap.String("payment_id", payment.PaymentID))

	return s.orderWithDetails(ctx, order)
}

func (s *orderService) MyOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("My orders validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	orders, total, err := s.repo.Order.FindByUser(ctx, userID, req.Offset(), req.Limit())
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list orders")
	}

	data := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		data = append(data, response.OrderToResponse(order))
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *orderService) OrderDetail(ctx context.Context, userID uuid.UUID, orderNumber string) (*response.OrderResponse, error) {
	order, err := s.findOwnOrder(ctx, userID, orderNumber)
	if err != nil {
		return nil, err
	}

	return s.orderWithDetails(ctx, order)
}

func (s *orderService) VendorOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Vendor orders validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, total, err := s.repo.Order.FindByVendor(ctx, vendor.ID, req.Offset(), req.Limit())
	if err != nil {
		s.log.Error("Failed to list vendor orders", zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("failed to list orders")
	}

	data := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		data = append(data, response.OrderToResponse(order))
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

// VendorOrderDetail shows only the restaurant's own lines of a shared
// order.
func (s *orderService) VendorOrderDetail(ctx context.Context, userID uuid.UUID, orderNumber string) (*response.OrderResponse, error) {
	vendor, err := s.findVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, err := s.findVendorOrder(ctx, vendor.ID, orderNumber)
	if err != nil {
		return nil, err
	}

	resp := response.OrderToResponse(order)
	resp.NextStatuses = order.NextStatuses()

	items, err := s.repo.Order.FindItemsForVendor(ctx, order.ID, vendor.ID)
	if err != nil {
		s.log.Error("Failed to load vendor order items", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("failed to load order")
	}
	for _, item := range items {
		resp.Items = append(resp.Items, response.OrderItemToResponse(item))
	}

	return &resp, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, userID uuid.UUID, orderNumber string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, err := s.findVendorOrder(ctx, vendor.ID, orderNumber)
	if err != nil {
		return nil, err
	}

	// 2. Only forward transitions are allowed
	next := entity.OrderStatus(req.Status)
	if !order.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot move order from %s to %s", order.Status, next)
	}

	order.Status = next
	order.UpdatedAt = time.Now()

	if err := s.repo.Order.Update(ctx, order); err != nil {
		s.log.Error("Failed to update order status", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("failed to update order")
	}

	s.log.Info("Order status updated",
		zap.String("order_number", orderNumber),
		zap.String("status", string(next)))

	resp := response.OrderToResponse(order)
	resp.NextStatuses = order.NextStatuses()
	return &resp, nil
}

func (s *orderService) CreateTax(ctx context.Context, req *request.CreateTaxRequest) (*response.TaxResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create tax validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	tax := &entity.Tax{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TaxType:    req.TaxType,
		Percentage: req.Percentage,
		IsActive:   req.IsActive,
	}

	if err := s.repo.Tax.Create(ctx, tax); err != nil {
		s.log.Error("Failed to create tax", zap.Error(err), zap.String("tax_type", req.TaxType))
		return nil, fmt.Errorf("failed to create tax")
	}

	resp := response.TaxToResponse(tax)
	return &resp, nil
}

func (s *orderService) ListTaxes(ctx context.Context) ([]response.TaxResponse, error) {
	taxes, err := s.repo.Tax.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list taxes", zap.Error(err))
		return nil, fmt.Errorf("failed to list taxes")
	}

	result := make([]response.TaxResponse, 0, len(taxes))
	for _, tax := range taxes {
		result = append(result, response.TaxToResponse(tax))
	}

	return result, nil
}

func (s *orderService) UpdateTax(ctx context.Context, taxID uuid.UUID, req *request.UpdateTaxRequest) (*response.TaxResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update tax validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tax, err := s.repo.Tax.FindByID(ctx, taxID)
	if err != nil {
		s.log.Error("Failed to find tax", zap.Error(err), zap.String("id", taxID.String()))
		return nil, fmt.Errorf("failed to find tax")
	}
	if tax == nil {
		return nil, fmt.Errorf("tax not found")
	}

	tax.TaxType = req.TaxType
	tax.Percentage = req.Percentage
	tax.IsActive = req.IsActive
	tax.UpdatedAt = time.Now()

	if err := s.repo.Tax.Update(ctx, tax); err != nil {
		s.log.Error("Failed to update tax", zap.Error(err), zap.String("id", taxID.String()))
		return nil, fmt.Errorf("failed to update tax")
	}

	resp := response.TaxToResponse(tax)
	return &resp, nil
}

func (s *orderService) DeleteTax(ctx context.Context, taxID uuid.UUID) error {
	if err := s.repo.Tax.Delete(ctx, taxID); err != nil {
		s.log.Error("Failed to delete tax", zap.Error(err), zap.String("id", taxID.String()))
		return fmt.Errorf("tax not found")
	}
	return nil
}

// ==================== HELPER METHODS ====================

func (s *orderService) findOwnOrder(ctx context.Context, userID uuid.UUID, orderNumber string) (*entity.Order, error) {
	order, err := s.repo.Order.FindByNumber(ctx, orderNumber)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil || order.UserID != userID {
		return nil, fmt.Errorf("order not found")
	}
	return order, nil
}

func (s *orderService) findVendorOrder(ctx context.Context, vendorID uuid.UUID, orderNumber string) (*entity.Order, error) {
	order, err := s.repo.Order.FindByNumber(ctx, orderNumber)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	belongs, err := s.repo.Order.BelongsToVendor(ctx, order.ID, vendorID)
	if err != nil {
		s.log.Error("Failed to check order vendor", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("failed to find order")
	}
	if !belongs {
		return nil, fmt.Errorf("order not found")
	}

	return order, nil
}

func (s *orderService) findVendor(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.repo.Vendor.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find vendor", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find restaurant")
	}
	if vendor == nil {
		return nil, fmt.Errorf("restaurant not found")
	}
	return vendor, nil
}

func (s *orderService) orderWithDetails(ctx context.Context, order *entity.Order) (*response.OrderResponse, error) {
	resp := response.OrderToResponse(order)

	items, err := s.repo.Order.FindItems(ctx, order.ID)
	if err != nil {
		s.log.Error("Failed to load order items", zap.Error(err), zap.String("order_number", order.OrderNumber))
		return nil, fmt.Errorf("failed to load order")
	}
	for _, item := range items {
		resp.Items = append(resp.Items, response.OrderItemToResponse(item))
	}

	payment, err := s.repo.Payment.FindByOrder(ctx, order.ID)
	if err != nil {
		s.log.Warn("Failed to load payment", zap.Error(err), zap.String("order_number", order.OrderNumber))
	} else if payment != nil {
		p := response.PaymentToResponse(payment)
		resp.Payment = &p
	}

	return &resp, nil
}
