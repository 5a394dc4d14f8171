package entity

import "github.com/google/uuid"

// CartItem holds one (user, food item) pair with its quantity.
type CartItem struct {
	BaseNoDelete
	UserID     uuid.UUID `db:"user_id"`
	FoodItemID uuid.UUID `db:"food_item_id"`
	Quantity   int       `db:"quantity"`
}
