package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackboard/stackboard/internal/domain/student"
	"github.com/stackboard/stackboard/internal/observability"
)

type StudentsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewStudentsRepo(pool *pgxpool.Pool, prom *observability.Prom) *StudentsRepo {
	return &StudentsRepo{pool: pool, prom: prom}
}

func (r *StudentsRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *StudentsRepo) Create(ctx context.Context, req student.CreateStudentRequest) (student.Student, error) {
	s := student.NewFromCreateRequest(req)

	err := r.observe("students.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO students (id, name, email, course, batch, grade, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, s.Name, s.Email, s.Course, s.Batch, s.Grade, s.CreatedAt, s.UpdatedAt)
		return err
	})

	if err != nil {
		return student.Student{}, err
	}

	return s, nil
}

func (r *StudentsRepo) List(ctx context.Context) ([]student.Student, error) {
	var out []student.Student

	err := r.observe("students.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, name, email, course, batch, grade, created_at, updated_at
			 FROM students
			 ORDER BY created_at, id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]student.Student, 0)

		for rows.Next() {
			var s student.Student
			if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Course, &s.Batch, &s.Grade, &s.CreatedAt, &s.UpdatedAt); err != nil {
				return err
			}
			out = append(out, s)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *StudentsRepo) Update(ctx context.Context, id string, req student.UpdateStudentRequest) (student.Student, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	pos := 2

	set := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, pos))
		args = append(args, val)
		pos++
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.Course != nil {
		set("course", *req.Course)
	}
	if req.Batch != nil {
		set("batch", *req.Batch)
	}
	if req.Grade != nil {
		set("grade", *req.Grade)
	}

	query := `UPDATE students SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING id, name, email, course, batch, grade, created_at, updated_at`

	var s student.Student

	err := r.observe("students.update", func() error {
		return r.pool.QueryRow(ctx, query, args...).Scan(
			&s.ID, &s.Name, &s.Email, &s.Course, &s.Batch, &s.Grade, &s.CreatedAt, &s.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, err
	}

	return s, nil
}

func (r *StudentsRepo) Delete(ctx context.Context, id string) error {
	var tag pgconn.CommandTag

	err := r.observe("students.delete", func() error {
		t, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
		tag = t
		return err
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return student.ErrNotFound
	}

	return nil
}
