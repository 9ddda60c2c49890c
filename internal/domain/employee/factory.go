package employee

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateEmployeeRequest) Employee {
	now := time.Now().UTC()

	return Employee{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (e Employee) Apply(req UpdateEmployeeRequest) Employee {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	e.UpdatedAt = time.Now().UTC()

	return e
}
