// Package viewmodel holds the per-module presentation state the CLI (or any
// other front end) drives: form values, the last fetched list, the current
// edit target and validation errors. View-models only mutate their state when
// the API call behind an operation succeeds.
package viewmodel

import (
	"context"
	"strings"

	"github.com/stackboard/stackboard/internal/domain/student"
)

type StudentAPI interface {
	CreateStudent(ctx context.Context, req student.CreateStudentRequest) (student.Student, error)
	ListStudents(ctx context.Context) ([]student.Student, error)
	UpdateStudent(ctx context.Context, id string, req student.UpdateStudentRequest) (student.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

type StudentForm struct {
	Name   string
	Email  string
	Course string
	Batch  string
	Grade  string
}

type StudentVM struct {
	api StudentAPI

	Form       StudentForm
	List       []student.Student
	EditID     string
	Errors     map[string]string
	NameFilter string
}

func NewStudentVM(api StudentAPI) *StudentVM {
	return &StudentVM{api: api, Errors: map[string]string{}}
}

func (vm *StudentVM) Load(ctx context.Context) error {
	list, err := vm.api.ListStudents(ctx)
	if err != nil {
		return err
	}
	vm.List = list
	return nil
}

func (vm *StudentVM) validate() bool {
	vm.Errors = map[string]string{}
	if strings.TrimSpace(vm.Form.Name) == "" {
		vm.Errors["name"] = "Name is required"
	}
	if strings.TrimSpace(vm.Form.Email) == "" {
		vm.Errors["email"] = "Email is required"
	}
	if strings.TrimSpace(vm.Form.Course) == "" {
		vm.Errors["course"] = "Course is required"
	}
	if strings.TrimSpace(vm.Form.Batch) == "" {
		vm.Errors["batch"] = "Batch is required"
	}
	if strings.TrimSpace(vm.Form.Grade) == "" {
		vm.Errors["grade"] = "Grade is required"
	}
	return len(vm.Errors) == 0
}

// Submit creates a new record, or updates the edit target when one is set.
// On success the form resets and the list is re-fetched.
func (vm *StudentVM) Submit(ctx context.Context) error {
	if !vm.validate() {
		return ErrInvalidForm
	}

	if vm.EditID == "" {
		_, err := vm.api.CreateStudent(ctx, student.CreateStudentRequest{
			Name:   vm.Form.Name,
			Email:  vm.Form.Email,
			Course: vm.Form.Course,
			Batch:  vm.Form.Batch,
			Grade:  vm.Form.Grade,
		})
		if err != nil {
			return vm.submitError(err)
		}
	} else {
		_, err := vm.api.UpdateStudent(ctx, vm.EditID, student.UpdateStudentRequest{
			Name:   &vm.Form.Name,
			Email:  &vm.Form.Email,
			Course: &vm.Form.Course,
			Batch:  &vm.Form.Batch,
			Grade:  &vm.Form.Grade,
		})
		if err != nil {
			return vm.submitError(err)
		}
	}

	vm.Form = StudentForm{}
	vm.EditID = ""
	return vm.Load(ctx)
}

// Edit loads a listed record into the form; unknown ids are ignored.
func (vm *StudentVM) Edit(id string) {
	for _, s := range vm.List {
		if s.ID == id {
			vm.EditID = id
			vm.Form = StudentForm{
				Name:   s.Name,
				Email:  s.Email,
				Course: s.Course,
				Batch:  s.Batch,
				Grade:  s.Grade,
			}
			return
		}
	}
}

func (vm *StudentVM) Delete(ctx context.Context, id string) error {
	if err := vm.api.DeleteStudent(ctx, id); err != nil {
		return err
	}
	if vm.EditID == id {
		vm.EditID = ""
		vm.Form = StudentForm{}
	}
	return vm.Load(ctx)
}

// Visible applies the name filter locally; no re-fetch.
func (vm *StudentVM) Visible() []student.Student {
	if vm.NameFilter == "" {
		return vm.List
	}
	needle := strings.ToLower(vm.NameFilter)
	var out []student.Student
	for _, s := range vm.List {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			out = append(out, s)
		}
	}
	return out
}

// submitError folds a server-side validation rejection into the Errors
// map so callers handle it like a local one.
func (vm *StudentVM) submitError(err error) error {
	if errs := serverFieldErrors(err); errs != nil {
		vm.Errors = errs
		return ErrInvalidForm
	}
	return err
}
