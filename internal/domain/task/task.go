package task

import (
	"errors"
	"time"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("task not found")

// Priority and status are constrained server-side; an empty value on create
// falls back to the defaults (Low / Pending).
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=160"`
	Description string `json:"description" binding:"required,max=1000"`
	Priority    string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status      string `json:"status" binding:"omitempty,oneof='Pending' 'In Progress' 'Done'"`
}

// Partial update: nil fields keep their stored value.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2,max=160"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status      *string `json:"status" binding:"omitempty,oneof='Pending' 'In Progress' 'Done'"`
}
