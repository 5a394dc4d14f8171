package request

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=250"`
}

type UpdateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=250"`
}

type CreateFoodItemRequest struct {
	CategoryID  string  `json:"category_id" validate:"required,uuid4"`
	Title       string  `json:"title" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,max=250"`
	IsAvailable bool    `json:"is_available"`
}

type UpdateFoodItemRequest struct {
	CategoryID  string  `json:"category_id" validate:"required,uuid4"`
	Title       string  `json:"title" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,max=250"`
	IsAvailable bool    `json:"is_available"`
}

type SearchRequest struct {
	PaginatedRequest
	Keyword       string `json:"keyword" validate:"required,min=1,max=100"`
	FavoritesOnly bool   `json:"favorites_only"`
}
