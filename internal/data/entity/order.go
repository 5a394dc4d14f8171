package entity

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusOnTheWay  OrderStatus = "ON_THE_WAY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Order snapshots the contact and delivery fields at checkout time so
// later profile or address edits do not rewrite order history.
type Order struct {
	Base
	OrderNumber   string        `db:"order_number"`
	UserID        uuid.UUID     `db:"user_id"`
	AddressID     *uuid.UUID    `db:"address_id"`
	FirstName     string        `db:"first_name"`
	LastName      string        `db:"last_name"`
	Phone         string        `db:"phone"`
	Email         string        `db:"email"`
	AddressLine1  string        `db:"address_line1"`
	AddressLine2  string        `db:"address_line2"`
	City          string        `db:"city"`
	State         string        `db:"state"`
	Country       string        `db:"country"`
	PostalCode    string        `db:"postal_code"`
	OrderNote     string        `db:"order_note"`
	OrderTotal    float64       `db:"order_total"`
	Tax           float64       `db:"tax"`
	Status        OrderStatus   `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	PaymentMethod PaymentMethod `db:"payment_method"`
	IsOrdered     bool          `db:"is_ordered"`
}

// NextStatuses returns the statuses an order may move to from its
// current status.
func (o *Order) NextStatuses() []OrderStatus {
	switch o.Status {
	case OrderStatusPending:
		return []OrderStatus{OrderStatusConfirmed, OrderStatusCancelled}
	case OrderStatusConfirmed:
		return []OrderStatus{OrderStatusPreparing, OrderStatusCancelled}
	case OrderStatusPreparing:
		return []OrderStatus{OrderStatusReady}
	case OrderStatusReady:
		return []OrderStatus{OrderStatusOnTheWay}
	case OrderStatusOnTheWay:
		return []OrderStatus{OrderStatusDelivered}
	default:
		return nil
	}
}

// CanTransitionTo reports whether the status change is allowed.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	for _, s := range o.NextStatuses() {
		if s == next {
			return true
		}
	}
	return false
}
