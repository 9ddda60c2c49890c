package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackboard/stackboard/internal/domain/expense"
	"github.com/stackboard/stackboard/internal/observability"
)

type ExpensesRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewExpensesRepo(pool *pgxpool.Pool, prom *observability.Prom) *ExpensesRepo {
	return &ExpensesRepo{pool: pool, prom: prom}
}

func (r *ExpensesRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *ExpensesRepo) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.Expense, error) {
	e := expense.NewFromCreateRequest(req)

	err := r.observe("expenses.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO expenses (id, title, amount, category, spent_on, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5::date, $6, $7)`,
			e.ID, e.Title, e.Amount, e.Category, e.Date, e.CreatedAt, e.UpdatedAt)
		return err
	})

	if err != nil {
		return expense.Expense{}, err
	}

	return e, nil
}

func (r *ExpensesRepo) List(ctx context.Context, filter expense.ListExpensesFilter) ([]expense.Expense, error) {
	baseQuery := `SELECT id, title, amount, category, spent_on, created_at, updated_at FROM expenses`

	var conds []string
	var args []interface{}
	pos := 1

	if filter.Category != nil {
		conds = append(conds, fmt.Sprintf("category = $%d", pos))
		args = append(args, *filter.Category)
		pos++
	}

	// the date range only applies as a pair; the handler enforces that
	if filter.From != nil && filter.To != nil {
		conds = append(conds, fmt.Sprintf("spent_on >= $%d", pos))
		args = append(args, *filter.From)
		pos++

		conds = append(conds, fmt.Sprintf("spent_on <= $%d", pos))
		args = append(args, *filter.To)
		pos++
	}

	query := baseQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, id"

	var out []expense.Expense

	err := r.observe("expenses.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]expense.Expense, 0)

		for rows.Next() {
			var e expense.Expense
			var spentOn time.Time

			if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Category, &spentOn, &e.CreatedAt, &e.UpdatedAt); err != nil {
				return err
			}
			e.Date = spentOn.Format(expense.DateLayout)
			out = append(out, e)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

// Total sums amount over every expense record regardless of filters.
func (r *ExpensesRepo) Total(ctx context.Context) (float64, error) {
	var total float64

	err := r.observe("expenses.total", func() error {
		return r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	})

	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *ExpensesRepo) Update(ctx context.Context, id string, req expense.UpdateExpenseRequest) (expense.Expense, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	pos := 2

	set := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, pos))
		args = append(args, val)
		pos++
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Amount != nil {
		set("amount", *req.Amount)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Date != nil {
		sets = append(sets, fmt.Sprintf("spent_on = $%d::date", pos))
		args = append(args, *req.Date)
		pos++
	}

	query := `UPDATE expenses SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING id, title, amount, category, spent_on, created_at, updated_at`

	var e expense.Expense
	var spentOn time.Time

	err := r.observe("expenses.update", func() error {
		return r.pool.QueryRow(ctx, query, args...).Scan(
			&e.ID, &e.Title, &e.Amount, &e.Category, &spentOn, &e.CreatedAt, &e.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrNotFound
		}
		return expense.Expense{}, err
	}

	e.Date = spentOn.Format(expense.DateLayout)

	return e, nil
}

func (r *ExpensesRepo) Delete(ctx context.Context, id string) error {
	var tag pgconn.CommandTag

	err := r.observe("expenses.delete", func() error {
		t, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
		tag = t
		return err
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return expense.ErrNotFound
	}

	return nil
}
