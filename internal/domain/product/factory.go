package product

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateProductRequest) Product {
	now := time.Now().UTC()

	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	return Product{
		ID:          uuid.NewString(),
		ProductName: req.ProductName,
		Price:       req.Price,
		Quantity:    quantity,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p Product) Apply(req UpdateProductRequest) Product {
	if req.ProductName != nil {
		p.ProductName = *req.ProductName
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	p.UpdatedAt = time.Now().UTC()

	return p
}
