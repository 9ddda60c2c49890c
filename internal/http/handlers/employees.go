package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stackboard/stackboard/internal/domain/employee"
)

type EmployeesStore interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	List(ctx context.Context) ([]employee.Employee, error)
	Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	Delete(ctx context.Context, id string) error
}

type EmployeesHandler struct {
	repo EmployeesStore
}

func NewEmployeesHandler(repo EmployeesStore) *EmployeesHandler {
	return &EmployeesHandler{repo: repo}
}

func (h *EmployeesHandler) CreateEmployee(ctx *gin.Context) {
	var req employee.CreateEmployeeRequest
	if !BindJSON(ctx, &req) {
		return
	}

	e, err := h.repo.Create(ctx.Request.Context(), req)
	if err != nil {
		RespondInternal(ctx, "Could not create employee")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":     "Employee is created",
		"newEmployee": e,
	})
}

func (h *EmployeesHandler) ListEmployees(ctx *gin.Context) {
	employees, err := h.repo.List(ctx.Request.Context())
	if err != nil {
		RespondInternal(ctx, "Could not list employees")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *EmployeesHandler) UpdateEmployee(ctx *gin.Context) {
	id := ctx.Param("id")

	var req employee.UpdateEmployeeRequest
	if !BindJSON(ctx, &req) {
		return
	}

	e, err := h.repo.Update(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			RespondNotFound(ctx, "Employee not found")
			return
		}
		RespondInternal(ctx, "Could not update employee")
		return
	}

	ctx.JSON(http.StatusOK, e)
}

func (h *EmployeesHandler) DeleteEmployee(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.repo.Delete(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			RespondNotFound(ctx, "Employee not found")
			return
		}
		RespondInternal(ctx, "Could not delete employee")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Employee is deleted"})
}
