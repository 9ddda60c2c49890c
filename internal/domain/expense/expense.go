package expense

import (
	"errors"
	"time"
)

// Dates travel as plain YYYY-MM-DD strings; the store keeps them as DATE
// columns so range filters compare calendar days, not instants.
const DateLayout = "2006-01-02"

type Expense struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("expense not found")

type CreateExpenseRequest struct {
	Title    string  `json:"title" binding:"required,min=2,max=160"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required,max=80"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
}

// Partial update: nil fields keep their stored value.
type UpdateExpenseRequest struct {
	Title    *string  `json:"title" binding:"omitempty,min=2,max=160"`
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category *string  `json:"category" binding:"omitempty,max=80"`
	Date     *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Optional list filters; nil means no constraint. From and To are only
// honoured as a pair; the handler rejects one without the other.
type ListExpensesFilter struct {
	Category *string
	From     *time.Time
	To       *time.Time
}
