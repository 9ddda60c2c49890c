package student

import (
	"errors"
	"time"
)

type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Course    string    `json:"course"`
	Batch     string    `json:"batch"`
	Grade     string    `json:"grade"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("student not found")

type CreateStudentRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=120"`
	Email  string `json:"email" binding:"required,email"`
	Course string `json:"course" binding:"required,max=80"`
	Batch  string `json:"batch" binding:"required,max=40"`
	Grade  string `json:"grade" binding:"required,max=10"`
}

// Partial update: nil fields keep their stored value.
type UpdateStudentRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=120"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Course *string `json:"course" binding:"omitempty,max=80"`
	Batch  *string `json:"batch" binding:"omitempty,max=40"`
	Grade  *string `json:"grade" binding:"omitempty,max=10"`
}
