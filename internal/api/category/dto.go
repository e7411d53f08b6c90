package category

import "time"

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CategoryDetailResponse struct {
	Message  string           `json:"message,omitempty"`
	Category CategoryResponse `json:"category"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
