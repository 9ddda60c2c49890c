package task

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateTaskRequest) Task {
	now := time.Now().UTC()

	priority := req.Priority
	if priority == "" {
		priority = PriorityLow
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	return Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (t Task) Apply(req UpdateTaskRequest) Task {
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	t.UpdatedAt = time.Now().UTC()

	return t
}
