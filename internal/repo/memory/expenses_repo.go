package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stackboard/stackboard/internal/domain/expense"
)

type ExpensesRepo struct {
	mu    sync.RWMutex
	items map[string]expense.Expense
	order []string
}

func NewExpensesRepo() *ExpensesRepo {
	return &ExpensesRepo{items: make(map[string]expense.Expense)}
}

func (r *ExpensesRepo) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.Expense, error) {
	e := expense.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[e.ID] = e
	r.order = append(r.order, e.ID)
	r.mu.Unlock()

	return e, nil
}

func (r *ExpensesRepo) List(ctx context.Context, filter expense.ListExpensesFilter) ([]expense.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]expense.Expense, 0, len(r.order))

	for _, id := range r.order {
		e, ok := r.items[id]
		if !ok {
			continue
		}

		if filter.Category != nil && e.Category != *filter.Category {
			continue
		}

		if filter.From != nil && filter.To != nil {
			d, err := time.Parse(expense.DateLayout, e.Date)
			if err != nil {
				continue
			}
			if d.Before(*filter.From) || d.After(*filter.To) {
				continue
			}
		}

		out = append(out, e)
	}

	return out, nil
}

// Total sums amount over every record; filters never apply here.
func (r *ExpensesRepo) Total(ctx context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, e := range r.items {
		total += e.Amount
	}

	return total, nil
}

func (r *ExpensesRepo) Update(ctx context.Context, id string, req expense.UpdateExpenseRequest) (expense.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return expense.Expense{}, expense.ErrNotFound
	}

	e = e.Apply(req)
	r.items[id] = e

	return e, nil
}

func (r *ExpensesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return expense.ErrNotFound
	}
	delete(r.items, id)

	return nil
}
