package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/client"
	"github.com/stackboard/stackboard/internal/domain/expense"
	"github.com/stackboard/stackboard/internal/domain/student"
	"github.com/stackboard/stackboard/internal/domain/task"
	"github.com/stackboard/stackboard/internal/http/handlers"
	"github.com/stackboard/stackboard/internal/http/middlewares"
	"github.com/stackboard/stackboard/internal/repo/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCreateExpense(title string, amount float64, category, date string) expense.CreateExpenseRequest {
	return expense.CreateExpenseRequest{Title: title, Amount: amount, Category: category, Date: date}
}

// newTestServer assembles the real handler surface over the in-memory repos,
// which double as the reference implementation of the query semantics.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	jwtMgr := auth.NewManager("test-secret", time.Hour)
	authMW := middlewares.NewAuthMiddleware(jwtMgr)

	studentsHandler := handlers.NewStudentsHandler(memory.NewStudentsRepo())
	tasksHandler := handlers.NewTasksHandler(memory.NewTasksRepo())
	expensesHandler := handlers.NewExpensesHandler(memory.NewExpensesRepo(), nil)
	productsHandler := handlers.NewProductsHandler(memory.NewProductsRepo(), nil)
	authHandler := handlers.NewAuthHandler(memory.NewUsersRepo(), jwtMgr)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/student", studentsHandler.CreateStudent)
	api.GET("/student", studentsHandler.ListStudents)
	api.PUT("/student/:id", studentsHandler.UpdateStudent)
	api.DELETE("/student/:id", studentsHandler.DeleteStudent)

	api.POST("/task", tasksHandler.CreateTask)
	api.GET("/task", tasksHandler.ListTasks)

	api.POST("/expense", expensesHandler.CreateExpense)
	api.GET("/expense", expensesHandler.ListExpenses)
	api.GET("/expense/total", expensesHandler.ExpenseTotal)

	api.POST("/product", productsHandler.CreateProduct)
	api.GET("/product", productsHandler.ListProducts)
	api.GET("/product/total", productsHandler.TotalStockValue)

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/profile", authMW.RequireAuth(), authHandler.Profile)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// Full student lifecycle: create, list, partial update, delete.
func TestClient_StudentLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL, client.NewMemoryTokenStore())
	ctx := context.Background()

	created, err := c.CreateStudent(ctx, student.CreateStudentRequest{
		Name: "Ann", Email: "a@x.com", Course: "CS", Batch: "2025", Grade: "A",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created student has no id")
	}

	list, err := c.ListStudents(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("created record missing from list: %+v", list)
	}

	grade := "A+"
	updated, err := c.UpdateStudent(ctx, created.ID, student.UpdateStudentRequest{Grade: &grade})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Grade != "A+" {
		t.Fatalf("grade not updated: %+v", updated)
	}
	if updated.Name != "Ann" || updated.Email != "a@x.com" || updated.Course != "CS" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	if err := c.DeleteStudent(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, err = c.ListStudents(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("deleted record still listed: %+v", list)
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL, client.NewMemoryTokenStore())
	ctx := context.Background()

	grade := "B"
	_, err := c.UpdateStudent(ctx, "no-such-id", student.UpdateStudentRequest{Grade: &grade})
	if !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	if _, err := c.Profile(ctx); !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}

	if err := c.Register(ctx, client.RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "supersecret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err = c.Register(ctx, client.RegisterRequest{Name: "Bob", Email: "a@x.com", Password: "supersecret"})
	if !errors.Is(err, client.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != "email_taken" {
		t.Fatalf("expected email_taken APIError, got %v", err)
	}

	// no server at all
	dead := client.New("http://127.0.0.1:1", client.NewMemoryTokenStore())
	if _, err := dead.ListStudents(ctx); !errors.Is(err, client.ErrUnreachable) {
		t.Fatalf("got %v, want ErrUnreachable", err)
	}
}

func TestClient_TokenLifecycle(t *testing.T) {
	srv := newTestServer(t)
	tokens := client.NewMemoryTokenStore()
	c := client.New(srv.URL, tokens)
	ctx := context.Background()

	if err := c.Register(ctx, client.RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "supersecret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := c.Login(ctx, "a@x.com", "supersecret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	stored, err := tokens.Token()
	if err != nil || stored == "" {
		t.Fatalf("token not stored after login: %q %v", stored, err)
	}

	u, err := c.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if u.Email != "a@x.com" {
		t.Fatalf("unexpected profile: %+v", u)
	}

	// a stale token must be dropped on the first 401
	if err := tokens.Save("not-a-valid-token"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := c.Profile(ctx); !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
	stored, err = tokens.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if stored != "" {
		t.Fatalf("stale token kept after 401: %q", stored)
	}

	if err := c.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
}

func TestClient_ExpenseTotalIgnoresFilters(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL, client.NewMemoryTokenStore())
	ctx := context.Background()

	for _, req := range []struct {
		title    string
		amount   float64
		category string
		date     string
	}{
		{"Keyboard", 100, "office", "2026-01-05"},
		{"Plane ticket", 250, "travel", "2026-02-10"},
	} {
		if _, err := c.CreateExpense(ctx, newCreateExpense(req.title, req.amount, req.category, req.date)); err != nil {
			t.Fatalf("create expense: %v", err)
		}
	}

	// filtered list first, matching neither record
	list, err := c.ListExpenses(ctx, client.ExpenseQuery{Category: "food"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("category=food should match nothing: %+v", list)
	}

	total, err := c.ExpenseTotal(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 350 {
		t.Fatalf("got total %v, want 350", total)
	}
}

// A validation rejection the server decides on its own must reach the caller
// with the envelope intact, not as a bare status code.
func TestClient_ValidationEnvelopePreserved(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL, client.NewMemoryTokenStore())

	_, err := c.CreateTask(context.Background(), task.CreateTaskRequest{
		Title:       "Ship release",
		Description: "cut and tag",
		Priority:    "Urgent",
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *client.APIError, got %T: %v", err, err)
	}
	if apiErr.Status != 400 {
		t.Fatalf("got status %d, want 400", apiErr.Status)
	}
	if apiErr.Code != "invalid_request" {
		t.Fatalf("got code %q, want invalid_request", apiErr.Code)
	}
	if apiErr.Message == "" {
		t.Fatal("envelope message was dropped")
	}

	fields := apiErr.FieldErrors()
	if fields == nil {
		t.Fatalf("no field errors decoded from details %s", apiErr.Details)
	}
	if msg, ok := fields["priority"]; !ok || msg == "" {
		t.Fatalf("missing priority message in %v", fields)
	}
}
