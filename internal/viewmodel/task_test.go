package viewmodel

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stackboard/stackboard/internal/client"
	"github.com/stackboard/stackboard/internal/domain/task"
)

type fakeTaskAPI struct {
	tasks     []task.Task
	createErr error
}

func (f *fakeTaskAPI) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	if f.createErr != nil {
		return task.Task{}, f.createErr
	}
	t := task.NewFromCreateRequest(req)
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeTaskAPI) ListTasks(ctx context.Context) ([]task.Task, error) {
	return f.tasks, nil
}

func (f *fakeTaskAPI) UpdateTask(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i] = f.tasks[i].Apply(req)
			return f.tasks[i], nil
		}
	}
	return task.Task{}, errors.New("not found")
}

func (f *fakeTaskAPI) DeleteTask(ctx context.Context, id string) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func TestTaskVM_SubmitCreates(t *testing.T) {
	api := &fakeTaskAPI{}
	vm := NewTaskVM(api)
	vm.Form = TaskForm{Title: "Ship release", Description: "cut and tag"}

	if err := vm.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(vm.List) != 1 {
		t.Fatalf("got %d tasks, want 1", len(vm.List))
	}
	if vm.Form != (TaskForm{}) {
		t.Fatalf("form not reset: %+v", vm.Form)
	}
}

func TestTaskVM_ServerRejectionFillsErrors(t *testing.T) {
	details, _ := json.Marshal(map[string]any{
		"fields": []client.FieldError{
			{Field: "priority", Rule: "oneof", Message: "must be one of Low, Medium, High"},
		},
	})
	api := &fakeTaskAPI{createErr: &client.APIError{
		Status:  400,
		Code:    "invalid_request",
		Message: "Invalid request body",
		Details: details,
	}}

	vm := NewTaskVM(api)
	vm.Form = TaskForm{Title: "Ship release", Description: "cut and tag", Priority: "Urgent"}

	err := vm.Submit(context.Background())
	if !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("got %v, want ErrInvalidForm", err)
	}
	if vm.Errors["priority"] == "" {
		t.Fatalf("server field message missing from %v", vm.Errors)
	}
	// the form stays up for correction
	if vm.Form.Priority != "Urgent" {
		t.Fatalf("form was reset: %+v", vm.Form)
	}
}

func TestTaskVM_NonValidationErrorPassesThrough(t *testing.T) {
	api := &fakeTaskAPI{createErr: &client.APIError{Status: 500, Code: "internal", Message: "boom"}}
	vm := NewTaskVM(api)
	vm.Form = TaskForm{Title: "Ship release", Description: "cut and tag"}

	err := vm.Submit(context.Background())
	if err == nil || errors.Is(err, ErrInvalidForm) {
		t.Fatalf("got %v, want the raw API error", err)
	}
}
