package employee

import (
	"errors"
	"time"
)

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Salary     float64   `json:"salary"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("employee not found")

type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=120"`
	Email      string  `json:"email" binding:"required,email"`
	Position   string  `json:"position" binding:"required,max=80"`
	Department string  `json:"department" binding:"required,max=80"`
	Salary     float64 `json:"salary" binding:"required,gt=0"`
}

// Partial update: nil fields keep their stored value.
type UpdateEmployeeRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=2,max=120"`
	Email      *string  `json:"email" binding:"omitempty,email"`
	Position   *string  `json:"position" binding:"omitempty,max=80"`
	Department *string  `json:"department" binding:"omitempty,max=80"`
	Salary     *float64 `json:"salary" binding:"omitempty,gt=0"`
}
