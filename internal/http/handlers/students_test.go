package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stackboard/stackboard/internal/domain/student"
	"github.com/stackboard/stackboard/internal/http/handlers"
)

// Keep Gin quiet during tests.

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStudentsRepo struct {
	createFn func(ctx context.Context, req student.CreateStudentRequest) (student.Student, error)
	listFn   func(ctx context.Context) ([]student.Student, error)
	updateFn func(ctx context.Context, id string, req student.UpdateStudentRequest) (student.Student, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeStudentsRepo) Create(ctx context.Context, req student.CreateStudentRequest) (student.Student, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return student.Student{}, nil
}

func (f *fakeStudentsRepo) List(ctx context.Context) ([]student.Student, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeStudentsRepo) Update(ctx context.Context, id string, req student.UpdateStudentRequest) (student.Student, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
	}
	return student.Student{}, nil
}

func (f *fakeStudentsRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

// one handler mounted per test
func setupRouter(method, path string, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Handle(method, path, h)
	return r
}

func TestCreateStudentHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		body           string
		repoSetUp      func(*fakeStudentsRepo)
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"name":"Ann","email":"a@x.com","course":"CS","batch":"2025","grade":"A"}`,
			repoSetUp: func(f *fakeStudentsRepo) {
				f.createFn = func(ctx context.Context, req student.CreateStudentRequest) (student.Student, error) {
					return student.Student{
						ID:        uuid.NewString(),
						Name:      req.Name,
						Email:     req.Email,
						Course:    req.Course,
						Batch:     req.Batch,
						Grade:     req.Grade,
						CreatedAt: now,
						UpdatedAt: now,
					}, nil
				}
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "missing_fields",
			body: `{"name":"Ann"}`,
			repoSetUp: func(f *fakeStudentsRepo) {
				// repo must not be reached on a bad body
				f.createFn = func(ctx context.Context, req student.CreateStudentRequest) (student.Student, error) {
					t.Fatal("repo called for invalid request")
					return student.Student{}, nil
				}
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "bad_email",
			body: `{"name":"Ann","email":"not-an-email","course":"CS","batch":"2025","grade":"A"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "repo_error",
			body: `{"name":"Ann","email":"a@x.com","course":"CS","batch":"2025","grade":"A"}`,
			repoSetUp: func(f *fakeStudentsRepo) {
				f.createFn = func(ctx context.Context, req student.CreateStudentRequest) (student.Student, error) {
					return student.Student{}, errors.New("db error")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeStudentsRepo{}
			if tt.repoSetUp != nil {
				tt.repoSetUp(repo)
			}

			h := handlers.NewStudentsHandler(repo)
			r := setupRouter(http.MethodPost, "/student", h.CreateStudent)

			req := httptest.NewRequest(http.MethodPost, "/student", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantStatusCode == http.StatusCreated {
				var resp struct {
					Message    string          `json:"message"`
					NewStudent student.Student `json:"newStudent"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal response: %v body=%s", err, w.Body.String())
				}
				if resp.Message == "" {
					t.Fatalf("expected a message in %s", w.Body.String())
				}
				if resp.NewStudent.ID == "" || resp.NewStudent.Name != "Ann" {
					t.Fatalf("unexpected newStudent: %+v", resp.NewStudent)
				}
			}
		})
	}
}

func TestListStudentsHandler(t *testing.T) {
	repo := &fakeStudentsRepo{
		listFn: func(ctx context.Context) ([]student.Student, error) {
			return []student.Student{
				{ID: "s1", Name: "Ann"},
				{ID: "s2", Name: "Bob"},
			}, nil
		},
	}

	h := handlers.NewStudentsHandler(repo)
	r := setupRouter(http.MethodGet, "/student", h.ListStudents)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/student", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Students []student.Student `json:"students"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v body=%s", err, w.Body.String())
	}
	if len(resp.Students) != 2 {
		t.Fatalf("got %d students, want 2", len(resp.Students))
	}
	if resp.Students[0].ID != "s1" || resp.Students[1].ID != "s2" {
		t.Fatalf("list order not preserved: %+v", resp.Students)
	}
}

func TestUpdateStudentHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		repoSetUp      func(*fakeStudentsRepo)
		wantStatusCode int
		wantGrade      string
	}{
		{
			name: "partial_update",
			id:   "s1",
			body: `{"grade":"A+"}`,
			repoSetUp: func(f *fakeStudentsRepo) {
				f.updateFn = func(ctx context.Context, id string, req student.UpdateStudentRequest) (student.Student, error) {
					if req.Grade == nil || *req.Grade != "A+" {
						t.Fatalf("grade not carried through: %+v", req)
					}
					if req.Name != nil || req.Email != nil {
						t.Fatalf("omitted fields must stay nil: %+v", req)
					}
					return student.Student{ID: id, Name: "Ann", Grade: "A+"}, nil
				}
			},
			wantStatusCode: http.StatusOK,
			wantGrade:      "A+",
		},
		{
			name: "not_found",
			id:   "nope",
			body: `{"grade":"B"}`,
			repoSetUp: func(f *fakeStudentsRepo) {
				f.updateFn = func(ctx context.Context, id string, req student.UpdateStudentRequest) (student.Student, error) {
					return student.Student{}, student.ErrNotFound
				}
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeStudentsRepo{}
			tt.repoSetUp(repo)

			h := handlers.NewStudentsHandler(repo)
			r := setupRouter(http.MethodPut, "/student/:id", h.UpdateStudent)

			req := httptest.NewRequest(http.MethodPut, "/student/"+tt.id, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				// updated record comes back bare, not wrapped
				var got student.Student
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("unmarshal response: %v body=%s", err, w.Body.String())
				}
				if got.Grade != tt.wantGrade {
					t.Fatalf("got grade %q, want %q", got.Grade, tt.wantGrade)
				}
			}
		})
	}
}

func TestDeleteStudentHandler(t *testing.T) {
	tests := []struct {
		name           string
		repoSetUp      func(*fakeStudentsRepo)
		wantStatusCode int
	}{
		{
			name: "success",
			repoSetUp: func(f *fakeStudentsRepo) {
				f.deleteFn = func(ctx context.Context, id string) error { return nil }
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "not_found",
			repoSetUp: func(f *fakeStudentsRepo) {
				f.deleteFn = func(ctx context.Context, id string) error { return student.ErrNotFound }
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeStudentsRepo{}
			tt.repoSetUp(repo)

			h := handlers.NewStudentsHandler(repo)
			r := setupRouter(http.MethodDelete, "/student/:id", h.DeleteStudent)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/student/s1", nil))

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}
