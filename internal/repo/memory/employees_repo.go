package memory

import (
	"context"
	"sync"

	"github.com/stackboard/stackboard/internal/domain/employee"
)

type EmployeesRepo struct {
	mu    sync.RWMutex
	items map[string]employee.Employee
	order []string
}

func NewEmployeesRepo() *EmployeesRepo {
	return &EmployeesRepo{items: make(map[string]employee.Employee)}
}

func (r *EmployeesRepo) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	e := employee.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[e.ID] = e
	r.order = append(r.order, e.ID)
	r.mu.Unlock()

	return e, nil
}

func (r *EmployeesRepo) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.order))
	for _, id := range r.order {
		if e, ok := r.items[id]; ok {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *EmployeesRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return employee.Employee{}, employee.ErrNotFound
	}

	e = e.Apply(req)
	r.items[id] = e

	return e, nil
}

func (r *EmployeesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return employee.ErrNotFound
	}
	delete(r.items, id)

	return nil
}
