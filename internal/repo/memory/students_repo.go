package memory

import (
	"context"
	"sync"

	"github.com/stackboard/stackboard/internal/domain/student"
)

// StudentsRepo is a map-backed store used by tests and local development.
// Records keep insertion order, matching the Postgres repo's list order.
type StudentsRepo struct {
	mu    sync.RWMutex
	items map[string]student.Student
	order []string
}

func NewStudentsRepo() *StudentsRepo {
	return &StudentsRepo{items: make(map[string]student.Student)}
}

func (r *StudentsRepo) Create(ctx context.Context, req student.CreateStudentRequest) (student.Student, error) {
	s := student.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[s.ID] = s
	r.order = append(r.order, s.ID)
	r.mu.Unlock()

	return s, nil
}

func (r *StudentsRepo) List(ctx context.Context) ([]student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]student.Student, 0, len(r.order))
	for _, id := range r.order {
		if s, ok := r.items[id]; ok {
			out = append(out, s)
		}
	}

	return out, nil
}

func (r *StudentsRepo) Update(ctx context.Context, id string, req student.UpdateStudentRequest) (student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}

	s = s.Apply(req)
	r.items[id] = s

	return s, nil
}

func (r *StudentsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return student.ErrNotFound
	}
	delete(r.items, id)

	return nil
}
