package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackboard/stackboard/internal/domain/product"
	"github.com/stackboard/stackboard/internal/observability"
)

type ProductsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewProductsRepo(pool *pgxpool.Pool, prom *observability.Prom) *ProductsRepo {
	return &ProductsRepo{pool: pool, prom: prom}
}

func (r *ProductsRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

// escapeLike neutralizes LIKE metacharacters so a search term only ever
// matches itself as a substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *ProductsRepo) Create(ctx context.Context, req product.CreateProductRequest) (product.Product, error) {
	p := product.NewFromCreateRequest(req)

	err := r.observe("products.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO products (id, product_name, price, quantity, category, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID, p.ProductName, p.Price, p.Quantity, p.Category, p.CreatedAt, p.UpdatedAt)
		return err
	})

	if err != nil {
		return product.Product{}, err
	}

	return p, nil
}

func (r *ProductsRepo) List(ctx context.Context, filter product.ListProductsFilter) ([]product.Product, error) {
	baseQuery := `SELECT id, product_name, price, quantity, category, created_at, updated_at FROM products`

	var conds []string
	var args []interface{}
	pos := 1

	if filter.Search != nil {
		conds = append(conds, fmt.Sprintf(`product_name ILIKE '%%' || $%d || '%%' ESCAPE '\'`, pos))
		args = append(args, escapeLike(*filter.Search))
		pos++
	}

	if filter.Category != nil {
		conds = append(conds, fmt.Sprintf("category = $%d", pos))
		args = append(args, *filter.Category)
		pos++
	}

	query := baseQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	// unknown sort values keep store order; the handler has already narrowed
	// Sort to the closed set, but guard here anyway since it lands in SQL
	switch filter.Sort {
	case product.SortByPrice:
		query += " ORDER BY price ASC, created_at, id"
	case product.SortByQuantity:
		query += " ORDER BY quantity ASC, created_at, id"
	default:
		query += " ORDER BY created_at, id"
	}

	var out []product.Product

	err := r.observe("products.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]product.Product, 0)

		for rows.Next() {
			var p product.Product
			if err := rows.Scan(&p.ID, &p.ProductName, &p.Price, &p.Quantity, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
				return err
			}
			out = append(out, p)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

// TotalStockValue sums price*quantity over every product regardless of filters.
func (r *ProductsRepo) TotalStockValue(ctx context.Context) (float64, error) {
	var total float64

	err := r.observe("products.total_stock_value", func() error {
		return r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(price * quantity), 0) FROM products`).Scan(&total)
	})

	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *ProductsRepo) Update(ctx context.Context, id string, req product.UpdateProductRequest) (product.Product, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	pos := 2

	set := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, pos))
		args = append(args, val)
		pos++
	}

	if req.ProductName != nil {
		set("product_name", *req.ProductName)
	}
	if req.Price != nil {
		set("price", *req.Price)
	}
	if req.Quantity != nil {
		set("quantity", *req.Quantity)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}

	query := `UPDATE products SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING id, product_name, price, quantity, category, created_at, updated_at`

	var p product.Product

	err := r.observe("products.update", func() error {
		return r.pool.QueryRow(ctx, query, args...).Scan(
			&p.ID, &p.ProductName, &p.Price, &p.Quantity, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrNotFound
		}
		return product.Product{}, err
	}

	return p, nil
}

func (r *ProductsRepo) Delete(ctx context.Context, id string) error {
	var tag pgconn.CommandTag

	err := r.observe("products.delete", func() error {
		t, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
		tag = t
		return err
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}

	return nil
}
