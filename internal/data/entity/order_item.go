package entity

import "github.com/google/uuid"

// OrderItem snapshots title, price and amount at order time so menu
// edits do not change past orders.
type OrderItem struct {
	BaseNoDelete
	OrderID    uuid.UUID `db:"order_id"`
	FoodItemID uuid.UUID `db:"food_item_id"`
	FoodTitle  string    `db:"food_title"`
	Quantity   int       `db:"quantity"`
	Price      float64   `db:"price"`
	Amount     float64   `db:"amount"`
}
