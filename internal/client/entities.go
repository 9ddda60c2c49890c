package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stackboard/stackboard/internal/domain/employee"
	"github.com/stackboard/stackboard/internal/domain/expense"
	"github.com/stackboard/stackboard/internal/domain/product"
	"github.com/stackboard/stackboard/internal/domain/student"
	"github.com/stackboard/stackboard/internal/domain/task"
)

// Students

func (c *Client) CreateStudent(ctx context.Context, req student.CreateStudentRequest) (student.Student, error) {
	var out struct {
		New student.Student `json:"newStudent"`
	}
	err := c.do(ctx, http.MethodPost, "/api/student", nil, req, &out)
	return out.New, err
}

func (c *Client) ListStudents(ctx context.Context) ([]student.Student, error) {
	var out struct {
		Students []student.Student `json:"students"`
	}
	err := c.do(ctx, http.MethodGet, "/api/student", nil, nil, &out)
	return out.Students, err
}

func (c *Client) UpdateStudent(ctx context.Context, id string, req student.UpdateStudentRequest) (student.Student, error) {
	var out student.Student
	err := c.do(ctx, http.MethodPut, "/api/student/"+url.PathEscape(id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/student/"+url.PathEscape(id), nil, nil, nil)
}

// Employees

func (c *Client) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var out struct {
		New employee.Employee `json:"newEmployee"`
	}
	err := c.do(ctx, http.MethodPost, "/api/employee", nil, req, &out)
	return out.New, err
}

func (c *Client) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	var out struct {
		Employees []employee.Employee `json:"employees"`
	}
	err := c.do(ctx, http.MethodGet, "/api/employee", nil, nil, &out)
	return out.Employees, err
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var out employee.Employee
	err := c.do(ctx, http.MethodPut, "/api/employee/"+url.PathEscape(id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/employee/"+url.PathEscape(id), nil, nil, nil)
}

// Tasks

func (c *Client) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	var out struct {
		New task.Task `json:"newTask"`
	}
	err := c.do(ctx, http.MethodPost, "/api/task", nil, req, &out)
	return out.New, err
}

func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	var out struct {
		Tasks []task.Task `json:"tasks"`
	}
	err := c.do(ctx, http.MethodGet, "/api/task", nil, nil, &out)
	return out.Tasks, err
}

func (c *Client) UpdateTask(ctx context.Context, id string, req task.UpdateTaskRequest) (task.Task, error) {
	var out task.Task
	err := c.do(ctx, http.MethodPut, "/api/task/"+url.PathEscape(id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/task/"+url.PathEscape(id), nil, nil, nil)
}

// Expenses

// ExpenseQuery mirrors the /api/expense query string; zero values are omitted.
type ExpenseQuery struct {
	Category string
	From     string
	To       string
}

func (q ExpenseQuery) values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.From != "" {
		v.Set("from", q.From)
	}
	if q.To != "" {
		v.Set("to", q.To)
	}
	return v
}

func (c *Client) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (expense.Expense, error) {
	var out struct {
		New expense.Expense `json:"newExpense"`
	}
	err := c.do(ctx, http.MethodPost, "/api/expense", nil, req, &out)
	return out.New, err
}

func (c *Client) ListExpenses(ctx context.Context, q ExpenseQuery) ([]expense.Expense, error) {
	var out struct {
		Expenses []expense.Expense `json:"expenses"`
	}
	err := c.do(ctx, http.MethodGet, "/api/expense", q.values(), nil, &out)
	return out.Expenses, err
}

func (c *Client) ExpenseTotal(ctx context.Context) (float64, error) {
	var out struct {
		Total float64 `json:"total"`
	}
	err := c.do(ctx, http.MethodGet, "/api/expense/total", nil, nil, &out)
	return out.Total, err
}

func (c *Client) UpdateExpense(ctx context.Context, id string, req expense.UpdateExpenseRequest) (expense.Expense, error) {
	var out expense.Expense
	err := c.do(ctx, http.MethodPut, "/api/expense/"+url.PathEscape(id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/expense/"+url.PathEscape(id), nil, nil, nil)
}

// Products

// ProductQuery mirrors the /api/product query string; zero values are omitted.
type ProductQuery struct {
	Search   string
	Category string
	Sort     string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	return v
}

func (c *Client) CreateProduct(ctx context.Context, req product.CreateProductRequest) (product.Product, error) {
	var out struct {
		New product.Product `json:"newProduct"`
	}
	err := c.do(ctx, http.MethodPost, "/api/product", nil, req, &out)
	return out.New, err
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]product.Product, error) {
	var out struct {
		Products []product.Product `json:"products"`
	}
	err := c.do(ctx, http.MethodGet, "/api/product", q.values(), nil, &out)
	return out.Products, err
}

func (c *Client) ProductStockValue(ctx context.Context) (float64, error) {
	var out struct {
		TotalStockValue float64 `json:"totalStockValue"`
	}
	err := c.do(ctx, http.MethodGet, "/api/product/total", nil, nil, &out)
	return out.TotalStockValue, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req product.UpdateProductRequest) (product.Product, error) {
	var out product.Product
	err := c.do(ctx, http.MethodPut, "/api/product/"+url.PathEscape(id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/product/"+url.PathEscape(id), nil, nil, nil)
}
