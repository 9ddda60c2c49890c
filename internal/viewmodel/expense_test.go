package viewmodel

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stackboard/stackboard/internal/client"
	"github.com/stackboard/stackboard/internal/domain/expense"
)

type fakeExpenseAPI struct {
	expenses   []expense.Expense
	nextID     int
	failList   bool
	lastFilter client.ExpenseQuery
}

func (f *fakeExpenseAPI) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (expense.Expense, error) {
	f.nextID++
	e := expense.Expense{
		ID:       "e" + strconv.Itoa(f.nextID),
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
	}
	f.expenses = append(f.expenses, e)
	return e, nil
}

func (f *fakeExpenseAPI) ListExpenses(ctx context.Context, q client.ExpenseQuery) ([]expense.Expense, error) {
	if f.failList {
		return nil, errors.New("boom")
	}
	f.lastFilter = q

	var out []expense.Expense
	for _, e := range f.expenses {
		if q.Category != "" && e.Category != q.Category {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Total covers everything regardless of any list filter, mirroring the server.
func (f *fakeExpenseAPI) ExpenseTotal(ctx context.Context) (float64, error) {
	var total float64
	for _, e := range f.expenses {
		total += e.Amount
	}
	return total, nil
}

func (f *fakeExpenseAPI) UpdateExpense(ctx context.Context, id string, req expense.UpdateExpenseRequest) (expense.Expense, error) {
	for i, e := range f.expenses {
		if e.ID == id {
			updated := e.Apply(req)
			f.expenses[i] = updated
			return updated, nil
		}
	}
	return expense.Expense{}, expense.ErrNotFound
}

func (f *fakeExpenseAPI) DeleteExpense(ctx context.Context, id string) error {
	for i, e := range f.expenses {
		if e.ID == id {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return expense.ErrNotFound
}

func seedExpenseVM(t *testing.T, vm *ExpenseVM) {
	t.Helper()
	ctx := context.Background()

	for _, e := range []ExpenseForm{
		{Title: "Keyboard", Amount: 100, Category: "office", Date: "2026-01-05"},
		{Title: "Plane ticket", Amount: 250, Category: "travel", Date: "2026-02-10"},
	} {
		vm.Form = e
		if err := vm.Submit(ctx); err != nil {
			t.Fatalf("seed %s: %v", e.Title, err)
		}
	}
}

// The total stays at the unfiltered sum even while a filter that matches
// nothing is active.
func TestExpenseVM_TotalUnaffectedByFilter(t *testing.T) {
	api := &fakeExpenseAPI{}
	vm := NewExpenseVM(api)
	ctx := context.Background()

	seedExpenseVM(t, vm)

	if err := vm.SetFilter(ctx, client.ExpenseQuery{Category: "food"}); err != nil {
		t.Fatalf("set filter: %v", err)
	}

	if len(vm.List) != 0 {
		t.Fatalf("category=food should match nothing: %+v", vm.List)
	}
	if vm.Total != 350 {
		t.Fatalf("got total %v, want 350", vm.Total)
	}
}

func TestExpenseVM_SetFilterRevertsOnFailure(t *testing.T) {
	api := &fakeExpenseAPI{}
	vm := NewExpenseVM(api)
	ctx := context.Background()

	seedExpenseVM(t, vm)

	if err := vm.SetFilter(ctx, client.ExpenseQuery{Category: "office"}); err != nil {
		t.Fatalf("set filter: %v", err)
	}
	if len(vm.List) != 1 {
		t.Fatalf("office filter: %+v", vm.List)
	}

	api.failList = true
	if err := vm.SetFilter(ctx, client.ExpenseQuery{Category: "travel"}); err == nil {
		t.Fatal("expected error")
	}

	if vm.Filter.Category != "office" {
		t.Fatalf("failed filter change not reverted: %+v", vm.Filter)
	}
	if len(vm.List) != 1 || vm.List[0].Title != "Keyboard" {
		t.Fatalf("failed fetch clobbered the list: %+v", vm.List)
	}
}

func TestExpenseVM_ValidatesForm(t *testing.T) {
	vm := NewExpenseVM(&fakeExpenseAPI{})

	vm.Form = ExpenseForm{Title: "Lunch", Amount: -5, Category: "", Date: "01/03/2026"}
	err := vm.Submit(context.Background())
	if !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("got %v, want ErrInvalidForm", err)
	}

	for _, field := range []string{"amount", "category", "date"} {
		if vm.Errors[field] == "" {
			t.Fatalf("missing error for %s: %v", field, vm.Errors)
		}
	}
}

func TestExpenseVM_DeleteRefreshesTotal(t *testing.T) {
	api := &fakeExpenseAPI{}
	vm := NewExpenseVM(api)
	ctx := context.Background()

	seedExpenseVM(t, vm)
	if vm.Total != 350 {
		t.Fatalf("seed total: %v", vm.Total)
	}

	if err := vm.Delete(ctx, vm.List[1].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if vm.Total != 100 {
		t.Fatalf("total not refreshed after delete: %v", vm.Total)
	}
	if len(vm.List) != 1 {
		t.Fatalf("list not refreshed: %+v", vm.List)
	}
}
