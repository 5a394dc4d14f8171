package request

type AddToCartRequest struct {
	FoodItemID string `json:"food_item_id" validate:"required,uuid4"`
}

type DecreaseCartRequest struct {
	FoodItemID string `json:"food_item_id" validate:"required,uuid4"`
}
