package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stackboard/stackboard/internal/domain/task"
)

type TasksStore interface {
	Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error)
	List(ctx context.Context) ([]task.Task, error)
	Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error)
	Delete(ctx context.Context, id string) error
}

type TasksHandler struct {
	repo TasksStore
}

func NewTasksHandler(repo TasksStore) *TasksHandler {
	return &TasksHandler{repo: repo}
}

func (h *TasksHandler) CreateTask(ctx *gin.Context) {
	var req task.CreateTaskRequest
	if !BindJSON(ctx, &req) {
		return
	}

	t, err := h.repo.Create(ctx.Request.Context(), req)
	if err != nil {
		RespondInternal(ctx, "Could not create task")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Task is created",
		"newTask": t,
	})
}

func (h *TasksHandler) ListTasks(ctx *gin.Context) {
	tasks, err := h.repo.List(ctx.Request.Context())
	if err != nil {
		RespondInternal(ctx, "Could not list tasks")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *TasksHandler) UpdateTask(ctx *gin.Context) {
	id := ctx.Param("id")

	var req task.UpdateTaskRequest
	if !BindJSON(ctx, &req) {
		return
	}

	t, err := h.repo.Update(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			RespondNotFound(ctx, "Task not found")
			return
		}
		RespondInternal(ctx, "Could not update task")
		return
	}

	ctx.JSON(http.StatusOK, t)
}

func (h *TasksHandler) DeleteTask(ctx *gin.Context) {
	id := ctx.Param("id")

	err := h.repo.Delete(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			RespondNotFound(ctx, "Task not found")
			return
		}
		RespondInternal(ctx, "Could not delete task")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task is deleted"})
}
