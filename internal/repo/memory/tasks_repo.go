package memory

import (
	"context"
	"sync"

	"github.com/stackboard/stackboard/internal/domain/task"
)

type TasksRepo struct {
	mu    sync.RWMutex
	items map[string]task.Task
	order []string
}

func NewTasksRepo() *TasksRepo {
	return &TasksRepo{items: make(map[string]task.Task)}
}

func (r *TasksRepo) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	t := task.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[t.ID] = t
	r.order = append(r.order, t.ID)
	r.mu.Unlock()

	return t, nil
}

func (r *TasksRepo) List(ctx context.Context) ([]task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]task.Task, 0, len(r.order))
	for _, id := range r.order {
		if t, ok := r.items[id]; ok {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *TasksRepo) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}

	t = t.Apply(req)
	r.items[id] = t

	return t, nil
}

func (r *TasksRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return task.ErrNotFound
	}
	delete(r.items, id)

	return nil
}
