package request

type CheckoutRequest struct {
	AddressID     *string `json:"address_id,omitempty" validate:"omitempty,uuid4"`
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	LastName      string  `json:"last_name" validate:"max=100"`
	Phone         string  `json:"phone" validate:"required,min=10,max=15"`
	Email         string  `json:"email" validate:"required,email"`
	AddressLine1  string  `json:"address_line1" validate:"required,max=250"`
	AddressLine2  string  `json:"address_line2" validate:"max=250"`
	City          string  `json:"city" validate:"required,max=50"`
	State         string  `json:"state" validate:"required,max=50"`
	Country       string  `json:"country" validate:"required,max=50"`
	PostalCode    string  `json:"postal_code" validate:"required,max=10"`
	OrderNote     string  `json:"order_note" validate:"max=500"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=CREDIT_CARD DEBIT_CARD PIX CASH"`
}

type PayOrderRequest struct {
	OrderNumber   string `json:"order_number" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=CREDIT_CARD DEBIT_CARD PIX"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED PREPARING READY ON_THE_WAY DELIVERED CANCELLED"`
}

type CreateTaxRequest struct {
	TaxType    string  `json:"tax_type" validate:"required,min=2,max=50"`
	Percentage float64 `json:"percentage" validate:"required,gt=0,max=100"`
	IsActive   bool    `json:"is_active"`
}

type UpdateTaxRequest struct {
	TaxType    string  `json:"tax_type" validate:"required,min=2,max=50"`
	Percentage float64 `json:"percentage" validate:"required,gt=0,max=100"`
	IsActive   bool    `json:"is_active"`
}
