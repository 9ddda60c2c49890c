package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackboard/stackboard/internal/domain/employee"
	"github.com/stackboard/stackboard/internal/observability"
)

type EmployeesRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewEmployeesRepo(pool *pgxpool.Pool, prom *observability.Prom) *EmployeesRepo {
	return &EmployeesRepo{pool: pool, prom: prom}
}

func (r *EmployeesRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *EmployeesRepo) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	e := employee.NewFromCreateRequest(req)

	err := r.observe("employees.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO employees (id, name, email, position, department, salary, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			e.ID, e.Name, e.Email, e.Position, e.Department, e.Salary, e.CreatedAt, e.UpdatedAt)
		return err
	})

	if err != nil {
		return employee.Employee{}, err
	}

	return e, nil
}

func (r *EmployeesRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee

	err := r.observe("employees.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, name, email, position, department, salary, created_at, updated_at
			 FROM employees
			 ORDER BY created_at, id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]employee.Employee, 0)

		for rows.Next() {
			var e employee.Employee
			if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.Salary, &e.CreatedAt, &e.UpdatedAt); err != nil {
				return err
			}
			out = append(out, e)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *EmployeesRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
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
	if req.Position != nil {
		set("position", *req.Position)
	}
	if req.Department != nil {
		set("department", *req.Department)
	}
	if req.Salary != nil {
		set("salary", *req.Salary)
	}

	query := `UPDATE employees SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING id, name, email, position, department, salary, created_at, updated_at`

	var e employee.Employee

	err := r.observe("employees.update", func() error {
		return r.pool.QueryRow(ctx, query, args...).Scan(
			&e.ID, &e.Name, &e.Email, &e.Position, &e.Department, &e.Salary, &e.CreatedAt, &e.UpdatedAt)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrNotFound
		}
		return employee.Employee{}, err
	}

	return e, nil
}

func (r *EmployeesRepo) Delete(ctx context.Context, id string) error {
	var tag pgconn.CommandTag

	err := r.observe("employees.delete", func() error {
		t, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
		tag = t
		return err
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return employee.ErrNotFound
	}

	return nil
}
