package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/stackboard/stackboard/internal/domain/product"
)

type ProductsRepo struct {
	mu    sync.RWMutex
	items map[string]product.Product
	order []string
}

func NewProductsRepo() *ProductsRepo {
	return &ProductsRepo{items: make(map[string]product.Product)}
}

func (r *ProductsRepo) Create(ctx context.Context, req product.CreateProductRequest) (product.Product, error) {
	p := product.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[p.ID] = p
	r.order = append(r.order, p.ID)
	r.mu.Unlock()

	return p, nil
}

func (r *ProductsRepo) List(ctx context.Context, filter product.ListProductsFilter) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]product.Product, 0, len(r.order))

	for _, id := range r.order {
		p, ok := r.items[id]
		if !ok {
			continue
		}

		if filter.Search != nil && !strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(*filter.Search)) {
			continue
		}

		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}

		out = append(out, p)
	}

	switch filter.Sort {
	case product.SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case product.SortByQuantity:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	}

	return out, nil
}

// TotalStockValue sums price*quantity over every record; filters never apply.
func (r *ProductsRepo) TotalStockValue(ctx context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, p := range r.items {
		total += p.Price * float64(p.Quantity)
	}

	return total, nil
}

func (r *ProductsRepo) Update(ctx context.Context, id string, req product.UpdateProductRequest) (product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return product.Product{}, product.ErrNotFound
	}

	p = p.Apply(req)
	r.items[id] = p

	return p, nil
}

func (r *ProductsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return product.ErrNotFound
	}
	delete(r.items, id)

	return nil
}
