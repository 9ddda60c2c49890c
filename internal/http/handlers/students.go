package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stackboard/stackboard/internal/domain/student"
)

type StudentsStore interface {
	Create(ctx context.Context, req student.CreateStudentRequest) (student.Student, error)
	List(ctx context.Context) ([]student.Student, error)
	Update(ctx context.Context, id string, req student.UpdateStudentRequest) (student.Student, error)
	Delete(ctx context.Context, id string) error
}

type StudentsHandler struct {
	repo StudentsStore
}

func NewStudentsHandler(repo StudentsStore) *StudentsHandler {
	return &StudentsHandler{repo: repo}
}

func (h *StudentsHandler) CreateStudent(ctx *gin.Context) {
	var req student.CreateStudentRequest
	if !BindJSON(ctx, &req) {
		return
	}

	s, err := h.repo.Create(ctx.Request.Context(), req)
	if err != nil {
		RespondInternal(ctx, "Could not create student")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":    "Student is created",
		"newStudent": s,
	})
}

func (h *StudentsHandler) ListStudents(ctx *gin.Context) {
	students, err := h.repo.List(ctx.Request.Context())
	if err != nil {
		RespondInternal(ctx, "Could not list students")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"students": students})
}

func (h *StudentsHandler) UpdateStudent(ctx *gin.Context) {
	id := ctx.Param("id")

	var req student.UpdateStudentRequest
	if !BindJSON(ctx, &req) {
		return
	}

	s, err := h.repo.Update(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			RespondNotFound(ctx, "Student not found")
			return
		}
		RespondInternal(ctx, "Could not update student")
		return
	}

	ctx.JSON(http.StatusOK, s)
}

func (h *StudentsHandler) DeleteStudent(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.repo.Delete(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			RespondNotFound(ctx, "Student not found")
			return
		}
		RespondInternal(ctx, "Could not delete student")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Student is deleted"})
}
