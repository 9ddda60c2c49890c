package viewmodel

import (
	"context"
	"strings"

	"github.com/stackboard/stackboard/internal/domain/employee"
)

type EmployeeAPI interface {
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type EmployeeForm struct {
	Name       string
	Email      string
	Position   string
	Department string
	Salary     float64
}

type EmployeeVM struct {
	api EmployeeAPI

	Form       EmployeeForm
	List       []employee.Employee
	EditID     string
	Errors     map[string]string
	NameFilter string
}

func NewEmployeeVM(api EmployeeAPI) *EmployeeVM {
	return &EmployeeVM{api: api, Errors: map[string]string{}}
}

func (vm *EmployeeVM) Load(ctx context.Context) error {
	list, err := vm.api.ListEmployees(ctx)
	if err != nil {
		return err
	}
	vm.List = list
	return nil
}

func (vm *EmployeeVM) validate() bool {
	vm.Errors = map[string]string{}
	if strings.TrimSpace(vm.Form.Name) == "" {
		vm.Errors["name"] = "Name is required"
	}
	if strings.TrimSpace(vm.Form.Email) == "" {
		vm.Errors["email"] = "Email is required"
	}
	if strings.TrimSpace(vm.Form.Position) == "" {
		vm.Errors["position"] = "Position is required"
	}
	if strings.TrimSpace(vm.Form.Department) == "" {
		vm.Errors["department"] = "Department is required"
	}
	if vm.Form.Salary <= 0 {
		vm.Errors["salary"] = "Salary must be greater than zero"
	}
	return len(vm.Errors) == 0
}

func (vm *EmployeeVM) Submit(ctx context.Context) error {
	if !vm.validate() {
		return ErrInvalidForm
	}

	if vm.EditID == "" {
		_, err := vm.api.CreateEmployee(ctx, employee.CreateEmployeeRequest{
			Name:       vm.Form.Name,
			Email:      vm.Form.Email,
			Position:   vm.Form.Position,
			Department: vm.Form.Department,
			Salary:     vm.Form.Salary,
		})
		if err != nil {
			return vm.submitError(err)
		}
	} else {
		_, err := vm.api.UpdateEmployee(ctx, vm.EditID, employee.UpdateEmployeeRequest{
			Name:       &vm.Form.Name,
			Email:      &vm.Form.Email,
			Position:   &vm.Form.Position,
			Department: &vm.Form.Department,
			Salary:     &vm.Form.Salary,
		})
		if err != nil {
			return vm.submitError(err)
		}
	}

	vm.Form = EmployeeForm{}
	vm.EditID = ""
	return vm.Load(ctx)
}

func (vm *EmployeeVM) Edit(id string) {
	for _, e := range vm.List {
		if e.ID == id {
			vm.EditID = id
			vm.Form = EmployeeForm{
				Name:       e.Name,
				Email:      e.Email,
				Position:   e.Position,
				Department: e.Department,
				Salary:     e.Salary,
			}
			return
		}
	}
}

func (vm *EmployeeVM) Delete(ctx context.Context, id string) error {
	if err := vm.api.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	if vm.EditID == id {
		vm.EditID = ""
		vm.Form = EmployeeForm{}
	}
	return vm.Load(ctx)
}

func (vm *EmployeeVM) Visible() []employee.Employee {
	if vm.NameFilter == "" {
		return vm.List
	}
	needle := strings.ToLower(vm.NameFilter)
	var out []employee.Employee
	for _, e := range vm.List {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

// submitError folds a server-side validation rejection into the Errors
// map so callers handle it like a local one.
func (vm *EmployeeVM) submitError(err error) error {
	if errs := serverFieldErrors(err); errs != nil {
		vm.Errors = errs
		return ErrInvalidForm
	}
	return err
}
