package response

import "food-marketplace/internal/data/repository"

type CartLineResponse struct {
	CartItemID string  `json:"cart_item_id"`
	FoodItemID string  `json:"food_item_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Amount     float64 `json:"amount"`
}

type CartResponse struct {
	Items    []CartLineResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Taxes    []TaxLineResponse  `json:"taxes"`
	TaxTotal float64            `json:"tax_total"`
	Total    float64            `json:"total"`
}

type TaxLineResponse struct {
	TaxType    string  `json:"tax_type"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

func CartLineToResponse(line repository.CartLine) CartLineResponse {
	return CartLineResponse{
		CartItemID: line.CartItemID.String(),
		FoodItemID: line.FoodItemID.String(),
		Title:      line.Title,
		Price:      line.Price,
		Quantity:   line.Quantity,
		Amount:     line.Amount(),
	}
}
