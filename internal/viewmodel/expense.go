package viewmodel

import (
	"context"
	"strings"
	"time"

	"github.com/stackboard/stackboard/internal/client"
	"github.com/stackboard/stackboard/internal/domain/expense"
)

type ExpenseAPI interface {
	CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (expense.Expense, error)
	ListExpenses(ctx context.Context, q client.ExpenseQuery) ([]expense.Expense, error)
	ExpenseTotal(ctx context.Context) (float64, error)
	UpdateExpense(ctx context.Context, id string, req expense.UpdateExpenseRequest) (expense.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type ExpenseForm struct {
	Title    string
	Amount   float64
	Category string
	Date     string
}

// ExpenseVM filters server-side: every filter change re-fetches the list.
// Total is the unfiltered aggregate, refreshed alongside the list.
type ExpenseVM struct {
	api ExpenseAPI

	Form   ExpenseForm
	List   []expense.Expense
	EditID string
	Errors map[string]string
	Filter client.ExpenseQuery
	Total  float64
}

func NewExpenseVM(api ExpenseAPI) *ExpenseVM {
	return &ExpenseVM{api: api, Errors: map[string]string{}}
}

func (vm *ExpenseVM) Load(ctx context.Context) error {
	list, err := vm.api.ListExpenses(ctx, vm.Filter)
	if err != nil {
		return err
	}
	total, err := vm.api.ExpenseTotal(ctx)
	if err != nil {
		return err
	}
	vm.List = list
	vm.Total = total
	return nil
}

// SetFilter replaces the active query and re-fetches. The previous list
// survives a failed fetch, and so does the previous filter.
func (vm *ExpenseVM) SetFilter(ctx context.Context, q client.ExpenseQuery) error {
	prev := vm.Filter
	vm.Filter = q
	if err := vm.Load(ctx); err != nil {
		vm.Filter = prev
		return err
	}
	return nil
}

func (vm *ExpenseVM) validate() bool {
	vm.Errors = map[string]string{}
	if strings.TrimSpace(vm.Form.Title) == "" {
		vm.Errors["title"] = "Title is required"
	}
	if vm.Form.Amount <= 0 {
		vm.Errors["amount"] = "Amount must be greater than zero"
	}
	if strings.TrimSpace(vm.Form.Category) == "" {
		vm.Errors["category"] = "Category is required"
	}
	if _, err := time.Parse(expense.DateLayout, vm.Form.Date); err != nil {
		vm.Errors["date"] = "Date must be YYYY-MM-DD"
	}
	return len(vm.Errors) == 0
}

func (vm *ExpenseVM) Submit(ctx context.Context) error {
	if !vm.validate() {
		return ErrInvalidForm
	}

	if vm.EditID == "" {
		_, err := vm.api.CreateExpense(ctx, expense.CreateExpenseRequest{
			Title:    vm.Form.Title,
			Amount:   vm.Form.Amount,
			Category: vm.Form.Category,
			Date:     vm.Form.Date,
		})
		if err != nil {
			return vm.submitError(err)
		}
	} else {
		_, err := vm.api.UpdateExpense(ctx, vm.EditID, expense.UpdateExpenseRequest{
			Title:    &vm.Form.Title,
			Amount:   &vm.Form.Amount,
			Category: &vm.Form.Category,
			Date:     &vm.Form.Date,
		})
		if err != nil {
			return vm.submitError(err)
		}
	}

	vm.Form = ExpenseForm{}
	vm.EditID = ""
	return vm.Load(ctx)
}

func (vm *ExpenseVM) Edit(id string) {
	for _, e := range vm.List {
		if e.ID == id {
			vm.EditID = id
			vm.Form = ExpenseForm{
				Title:    e.Title,
				Amount:   e.Amount,
				Category: e.Category,
				Date:     e.Date,
			}
			return
		}
	}
}

func (vm *ExpenseVM) Delete(ctx context.Context, id string) error {
	if err := vm.api.DeleteExpense(ctx, id); err != nil {
		return err
	}
	if vm.EditID == id {
		vm.EditID = ""
		vm.Form = ExpenseForm{}
	}
	return vm.Load(ctx)
}

// submitError folds a server-side validation rejection into the Errors
// map so callers handle it like a local one.
func (vm *ExpenseVM) submitError(err error) error {
	if errs := serverFieldErrors(err); errs != nil {
		vm.Errors = errs
		return ErrInvalidForm
	}
	return err
}
