package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stackboard/stackboard/internal/config"
	"github.com/stackboard/stackboard/internal/observability"
)

// The router builds and serves its operational endpoints without a database
// or redis behind it.
func TestRouterOperationalEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{Env: "test", CORSOrigins: []string{"*"}}
	r := NewRouter(cfg, observability.NewLogger("test"), nil, nil)

	tests := []struct {
		name           string
		method         string
		path           string
		wantStatusCode int
	}{
		{"healthz", http.MethodGet, "/healthz", http.StatusOK},
		{"readyz_without_db", http.MethodGet, "/readyz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"profile_without_token", http.MethodGet, "/api/profile", http.StatusUnauthorized},
		{"unknown_route", http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestRouterRequireJSONOnWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{Env: "test", CORSOrigins: []string{"*"}}
	r := NewRouter(cfg, observability.NewLogger("test"), nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/student", nil)
	req.Header.Set("Content-Type", "text/plain")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("got status %d, want 415, body=%s", w.Code, w.Body.String())
	}
}
