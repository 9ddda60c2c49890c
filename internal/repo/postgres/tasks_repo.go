package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackboard/stackboard/internal/domain/task"
	"github.com/stackboard/stackboard/internal/observability"
)

type TasksRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewTasksRepo(pool *pgxpool.Pool, prom *observability.Prom) *TasksRepo {
	return &TasksRepo{pool: pool, prom: prom}
}

func (r *TasksRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *TasksRepo) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	t := task.NewFromCreateRequest(req)

	err := r.observe("tasks.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO tasks (id, title, description, priority, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, t.Title, t.Description, t.Priority, t.Status, t.CreatedAt, t.UpdatedAt)
		return err
	})

	if err != nil {
		return task.Task{}, err
	}

	return t, nil
}

func (r *TasksRepo) List(ctx context.Context) ([]task.Task, error) {
	var out []task.Task

	err := r.observe("tasks.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, title, description, priority, status, created_at, updated_at
			 FROM tasks
			 ORDER BY created_at, id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]task.Task, 0)

		for rows.Next() {
			var t task.Task
			if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
				return err
			}
			out = append(out, t)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *TasksRepo) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	pos := 2

	set := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, pos))
		args = append(args, val)
		pos++
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.Priority != nil {
		set("priority", *req.Priority)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING id, title, description, priority, status, created_at, updated_at`

	var t task.Task

	err := r.observe("tasks.update", func() error {
		return r.pool.QueryRow(ctx, query, args...).Scan(
			&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, err
	}

	return t, nil
}

func (r *TasksRepo) Delete(ctx context.Context, id string) error {
	var tag pgconn.CommandTag

	err := r.observe("tasks.delete", func() error {
		t, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
		tag = t
		return err
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return task.ErrNotFound
	}

	return nil
}
