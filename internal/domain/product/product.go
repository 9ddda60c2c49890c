package product

import (
	"errors"
	"time"
)

const (
	SortByPrice    = "price"
	SortByQuantity = "quantity"
)

type Product struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("product not found")

type CreateProductRequest struct {
	ProductName string  `json:"productName" binding:"required,min=2,max=160"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    *int    `json:"quantity" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"required,max=80"`
}

// Partial update: nil fields keep their stored value.
type UpdateProductRequest struct {
	ProductName *string  `json:"productName" binding:"omitempty,min=2,max=160"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Category    *string  `json:"category" binding:"omitempty,max=80"`
}

// Optional list filters; nil/empty means no constraint. Search matches the
// product name case-insensitively as a substring. Sort is empty or one of the
// SortBy constants. Anything else keeps store order.
type ListProductsFilter struct {
	Search   *string
	Category *string
	Sort     string
}
