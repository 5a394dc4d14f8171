package response

import (
	"time"

	"food-marketplace/internal/data/entity"
)

type OrderResponse struct {
	ID            string                `json:"id"`
	OrderNumber   string                `json:"order_number"`
	FirstName     string                `json:"first_name"`
	LastName      string                `json:"last_name"`
	Phone         string                `json:"phone"`
	Email         string                `json:"email"`
	AddressLine1  string                `json:"address_line1"`
	AddressLine2  string                `json:"address_line2,omitempty"`
	City          string                `json:"city"`
	State         string                `json:"state"`
	Country       string                `json:"country"`
	PostalCode    string                `json:"postal_code"`
	OrderNote     string                `json:"order_note,omitempty"`
	OrderTotal    float64               `json:"order_total"`
	Tax           float64               `json:"tax"`
	Status        entity.OrderStatus    `json:"status"`
	PaymentStatus entity.PaymentStatus  `json:"payment_status"`
	PaymentMethod entity.PaymentMethod  `json:"payment_method"`
	CreatedAt     time.Time             `json:"created_at"`
	Items         []OrderItemResponse   `json:"items,omitempty"`
	Payment       *PaymentResponse      `json:"payment,omitempty"`
	NextStatuses  []entity.OrderStatus  `json:"next_statuses,omitempty"`
}

type OrderItemResponse struct {
	ID        string  `json:"id"`
	FoodTitle string  `json:"food_title"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Amount    float64 `json:"amount"`
}

type PaymentResponse struct {
	ID         string               `json:"id"`
	PaymentID  string               `json:"payment_id"`
	Method     entity.PaymentMethod `json:"method"`
	AmountPaid float64              `json:"amount_paid"`
	Status     entity.PaymentStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

type TaxResponse struct {
	ID         string  `json:"id"`
	TaxType    string  `json:"tax_type"`
	Percentage float64 `json:"percentage"`
	IsActive   bool    `json:"is_active"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID.String(),
		OrderNumber:   order.OrderNumber,
		FirstName:     order.FirstName,
		LastName:      order.LastName,
		Phone:         order.Phone,
		Email:         order.Email,
		AddressLine1:  order.AddressLine1,
		AddressLine2:  order.AddressLine2,
		City:          order.City,
		State:         order.State,
		Country:       order.Country,
		PostalCode:    order.PostalCode,
		OrderNote:     order.OrderNote,
		OrderTotal:    order.OrderTotal,
		Tax:           order.Tax,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
	}
}

func OrderItemToResponse(item *entity.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID.String(),
		FoodTitle: item.FoodTitle,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Amount:    item.Amount,
	}
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         payment.ID.String(),
		PaymentID:  payment.PaymentID,
		Method:     payment.Method,
		AmountPaid: payment.AmountPaid,
		Status:     payment.Status,
		CreatedAt:  payment.CreatedAt,
	}
}

func TaxToResponse(tax *entity.Tax) TaxResponse {
	return TaxResponse{
		ID:         tax.ID.String(),
		TaxType:    tax.TaxType,
		Percentage: tax.Percentage,
		IsActive:   tax.IsActive,
	}
}
