package entity

// Tax is a percentage applied over the cart subtotal at checkout.
type Tax struct {
	BaseNoDelete
	TaxType    string  `db:"tax_type"`
	Percentage float64 `db:"percentage"`
	IsActive   bool    `db:"is_active"`
}
