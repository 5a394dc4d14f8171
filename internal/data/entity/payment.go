package entity

import "github.com/google/uuid"

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodCash       PaymentMethod = "CASH"
)

type Payment struct {
	BaseSimple
	UserID     uuid.UUID     `db:"user_id"`
	OrderID    uuid.UUID     `db:"order_id"`
	PaymentID  string        `db:"payment_id"`
	Method     PaymentMethod `db:"method"`
	AmountPaid float64       `db:"amount_paid"`
	Status     PaymentStatus `db:"status"`
}
