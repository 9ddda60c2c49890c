package viewmodel

import (
	"context"
	"strings"

	"github.com/stackboard/stackboard/internal/domain/task"
)

type TaskAPI interface {
	CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.Task, error)
	ListTasks(ctx context.Context) ([]task.Task, error)
	UpdateTask(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type TaskForm struct {
	Title       string
	Description string
	Priority    string
	Status      string
}

type TaskVM struct {
	api TaskAPI

	Form   TaskForm
	List   []task.Task
	EditID string
	Errors map[string]string
}

func NewTaskVM(api TaskAPI) *TaskVM {
	return &TaskVM{api: api, Errors: map[string]string{}}
}

func (vm *TaskVM) Load(ctx context.Context) error {
	list, err := vm.api.ListTasks(ctx)
	if err != nil {
		return err
	}
	vm.List = list
	return nil
}

func (vm *TaskVM) validate() bool {
	vm.Errors = map[string]string{}
	if strings.TrimSpace(vm.Form.Title) == "" {
		vm.Errors["title"] = "Title is required"
	}
	if strings.TrimSpace(vm.Form.Description) == "" {
		vm.Errors["description"] = "Description is required"
	}
	return len(vm.Errors) == 0
}

func (vm *TaskVM) Submit(ctx context.Context) error {
	if !vm.validate() {
		return ErrInvalidForm
	}

	if vm.EditID == "" {
		// priority/status left empty get their server-side defaults
		_, err := vm.api.CreateTask(ctx, task.CreateTaskRequest{
			Title:       vm.Form.Title,
			Description: vm.Form.Description,
			Priority:    vm.Form.Priority,
			Status:      vm.Form.Status,
		})
		if err != nil {
			return vm.submitError(err)
		}
	} else {
		req := task.UpdateTaskRequest{
			Title:       &vm.Form.Title,
			Description: &vm.Form.Description,
		}
		if vm.Form.Priority != "" {
			req.Priority = &vm.Form.Priority
		}
		if vm.Form.Status != "" {
			req.Status = &vm.Form.Status
		}
		if _, err := vm.api.UpdateTask(ctx, vm.EditID, req); err != nil {
			return vm.submitError(err)
		}
	}

	vm.Form = TaskForm{}
	vm.EditID = ""
	return vm.Load(ctx)
}

func (vm *TaskVM) Edit(id string) {
	for _, t := range vm.List {
		if t.ID == id {
			vm.EditID = id
			vm.Form = TaskForm{
				Title:       t.Title,
				Description: t.Description,
				Priority:    t.Priority,
				Status:      t.Status,
			}
			return
		}
	}
}

func (vm *TaskVM) Delete(ctx context.Context, id string) error {
	if err := vm.api.DeleteTask(ctx, id); err != nil {
		return err
	}
	if vm.EditID == id {
		vm.EditID = ""
		vm.Form = TaskForm{}
	}
	return vm.Load(ctx)
}

// submitError folds a server-side validation rejection into the Errors
// map so callers handle it like a local one.
func (vm *TaskVM) submitError(err error) error {
	if errs := serverFieldErrors(err); errs != nil {
		vm.Errors = errs
		return ErrInvalidForm
	}
	return err
}
