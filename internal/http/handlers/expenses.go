package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stackboard/stackboard/internal/cache"
	"github.com/stackboard/stackboard/internal/domain/expense"
)

type ExpensesStore interface {
	Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.Expense, error)
	List(ctx context.Context, filter expense.ListExpensesFilter) ([]expense.Expense, error)
	Total(ctx context.Context) (float64, error)
	Update(ctx context.Context, id string, req expense.UpdateExpenseRequest) (expense.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ExpensesHandler struct {
	repo   ExpensesStore
	totals *cache.Totals
}

// totals may be nil; the handler then always asks the repo.
func NewExpensesHandler(repo ExpensesStore, totals *cache.Totals) *ExpensesHandler {
	return &ExpensesHandler{repo: repo, totals: totals}
}

func (h *ExpensesHandler) CreateExpense(ctx *gin.Context) {
	var req expense.CreateExpenseRequest
	if !BindJSON(ctx, &req) {
		return
	}

	e, err := h.repo.Create(ctx.Request.Context(), req)
	if err != nil {
		RespondInternal(ctx, "Could not create expense")
		return
	}

	h.totals.Invalidate(ctx.Request.Context(), cache.KeyExpenseTotal)

	ctx.JSON(http.StatusCreated, gin.H{
		"message":    "Expense is created",
		"newExpense": e,
	})
}

func (h *ExpensesHandler) ListExpenses(ctx *gin.Context) {
	filter, ok := parseExpensesFilter(ctx)
	if !ok {
		return
	}

	expenses, err := h.repo.List(ctx.Request.Context(), filter)
	if err != nil {
		RespondInternal(ctx, "Could not list expenses")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// Total always covers the whole collection, even while the list view is
// filtered. The clients rely on that.
func (h *ExpensesHandler) ExpenseTotal(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	if total, ok := h.totals.Get(rctx, cache.KeyExpenseTotal); ok {
		ctx.JSON(http.StatusOK, gin.H{"total": total})
		return
	}

	total, err := h.repo.Total(rctx)
	if err != nil {
		RespondInternal(ctx, "Could not compute expense total")
		return
	}

	h.totals.Set(rctx, cache.KeyExpenseTotal, total)

	ctx.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *ExpensesHandler) UpdateExpense(ctx *gin.Context) {
	id := ctx.Param("id")

	var req expense.UpdateExpenseRequest
	if !BindJSON(ctx, &req) {
		return
	}

	e, err := h.repo.Update(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			RespondNotFound(ctx, "Expense not found")
			return
		}
		RespondInternal(ctx, "Could not update expense")
		return
	}

	h.totals.Invalidate(ctx.Request.Context(), cache.KeyExpenseTotal)

	ctx.JSON(http.StatusOK, e)
}

func (h *ExpensesHandler) DeleteExpense(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.repo.Delete(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			RespondNotFound(ctx, "Expense not found")
			return
		}
		RespondInternal(ctx, "Could not delete expense")
		return
	}

	h.totals.Invalidate(ctx.Request.Context(), cache.KeyExpenseTotal)

	ctx.JSON(http.StatusOK, gin.H{"message": "Expense is deleted"})
}

// Empty query values mean "no filter". The from/to pair is only honoured
// together; one without the other is rejected rather than half-applied.
func parseExpensesFilter(ctx *gin.Context) (expense.ListExpensesFilter, bool) {
	var filter expense.ListExpensesFilter

	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}

	fromRaw := ctx.Query("from")
	toRaw := ctx.Query("to")

	if (fromRaw == "") != (toRaw == "") {
		RespondBadRequest(ctx, "from and to must be provided together", nil)
		return expense.ListExpensesFilter{}, false
	}

	if fromRaw != "" {
		from, err := time.Parse(expense.DateLayout, fromRaw)
		if err != nil {
			RespondBadRequest(ctx, "from must be a date formatted as "+expense.DateLayout, nil)
			return expense.ListExpensesFilter{}, false
		}

		to, err := time.Parse(expense.DateLayout, toRaw)
		if err != nil {
			RespondBadRequest(ctx, "to must be a date formatted as "+expense.DateLayout, nil)
			return expense.ListExpensesFilter{}, false
		}

		filter.From = &from
		filter.To = &to
	}

	return filter, true
}
