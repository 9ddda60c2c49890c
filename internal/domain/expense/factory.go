package expense

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateExpenseRequest) Expense {
	now := time.Now().UTC()

	return Expense{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Amount:    req.Amount,
		Category:  req.Category,
		Date:      req.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (e Expense) Apply(req UpdateExpenseRequest) Expense {
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	e.UpdatedAt = time.Now().UTC()

	return e
}
