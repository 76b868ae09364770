package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateCategoryRequest entrada para actualizar una categoría; los campos ausentes no se tocan.
type UpdateCategoryRequest struct {
	Name        *string        `json:"name"`
	Description NullableString `json:"description"`
	IsActive    *bool          `json:"is_active"`
}

// ListCategoriesRequest parámetros de búsqueda paginada.
type ListCategoriesRequest struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	Sort    string `query:"sort"`
	SortDir string `query:"sort_dir"`
	Filter  string `query:"filter"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListResponse página de categorías.
type CategoryListResponse = PaginationOutput[CategoryResponse]
