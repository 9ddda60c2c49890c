package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stackboard/stackboard/internal/cache"
	"github.com/stackboard/stackboard/internal/domain/product"
)

type ProductsStore interface {
	Create(ctx context.Context, req product.CreateProductRequest) (product.Product, error)
	List(ctx context.Context, filter product.ListProductsFilter) ([]product.Product, error)
	TotalStockValue(ctx context.Context) (float64, error)
	Update(ctx context.Context, id string, req product.UpdateProductRequest) (product.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductsHandler struct {
	repo   ProductsStore
	totals *cache.Totals
}

// totals may be nil; the handler then always asks the repo.
func NewProductsHandler(repo ProductsStore, totals *cache.Totals) *ProductsHandler {
	return &ProductsHandler{repo: repo, totals: totals}
}

func (h *ProductsHandler) CreateProduct(ctx *gin.Context) {
	var req product.CreateProductRequest
	if !BindJSON(ctx, &req) {
		return
	}

	p, err := h.repo.Create(ctx.Request.Context(), req)
	if err != nil {
		RespondInternal(ctx, "Could not create product")
		return
	}

	h.totals.Invalidate(ctx.Request.Context(), cache.KeyProductStockValue)

	ctx.JSON(http.StatusCreated, gin.H{
		"message":    "Product is created",
		"newProduct": p,
	})
}

func (h *ProductsHandler) ListProducts(ctx *gin.Context) {
	var filter product.ListProductsFilter

	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}
	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}

	// sort is a closed set; unrecognised values keep store order
	switch sort := ctx.Query("sort"); sort {
	case product.SortByPrice, product.SortByQuantity:
		filter.Sort = sort
	}

	products, err := h.repo.List(ctx.Request.Context(), filter)
	if err != nil {
		RespondInternal(ctx, "Could not list products")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

// TotalStockValue always covers the whole collection, even while the list
// view is filtered. The clients rely on that.
func (h *ProductsHandler) TotalStockValue(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	if total, ok := h.totals.Get(rctx, cache.KeyProductStockValue); ok {
		ctx.JSON(http.StatusOK, gin.H{"totalStockValue": total})
		return
	}

	total, err := h.repo.TotalStockValue(rctx)
	if err != nil {
		RespondInternal(ctx, "Could not compute total stock value")
		return
	}

	h.totals.Set(rctx, cache.KeyProductStockValue, total)

	ctx.JSON(http.StatusOK, gin.H{"totalStockValue": total})
}

func (h *ProductsHandler) UpdateProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	var req product.UpdateProductRequest
	if !BindJSON(ctx, &req) {
		return
	}

	p, err := h.repo.Update(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			RespondNotFound(ctx, "Product not found")
			return
		}
		RespondInternal(ctx, "Could not update product")
		return
	}

	h.totals.Invalidate(ctx.Request.Context(), cache.KeyProductStockValue)

	ctx.JSON(http.StatusOK, p)
}

func (h *ProductsHandler) DeleteProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.repo.Delete(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			RespondNotFound(ctx, "Product not found")
			return
		}
		RespondInternal(ctx, "Could not delete product")
		return
	}

	h.totals.Invalidate(ctx.Request.Context(), cache.KeyProductStockValue)

	ctx.JSON(http.StatusOK, gin.H{"message": "Product is deleted"})
}
