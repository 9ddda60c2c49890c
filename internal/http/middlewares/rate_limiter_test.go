package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stackboard/stackboard/internal/http/middlewares"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	rl := middlewares.NewRateLimiter(2, time.Minute)

	r := gin.New()
	r.POST("/login", rl.RateLimiterMiddleware(middlewares.KeyByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := do(); w.Code != http.StatusOK {
			t.Fatalf("request %d blocked early: %d", i+1, w.Code)
		}
	}

	w := do()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After header")
	}
}

func TestRateLimiter_SeparateBucketsPerKey(t *testing.T) {
	rl := middlewares.NewRateLimiter(1, time.Minute)

	r := gin.New()
	r.POST("/login", rl.RateLimiterMiddleware(middlewares.KeyByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := do("10.0.0.1:4000"); w.Code != http.StatusOK {
		t.Fatalf("first client blocked: %d", w.Code)
	}
	if w := do("10.0.0.1:4000"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("first client not limited: %d", w.Code)
	}
	// a different client gets its own window
	if w := do("10.0.0.2:4000"); w.Code != http.StatusOK {
		t.Fatalf("second client blocked by first client's bucket: %d", w.Code)
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := middlewares.NewRateLimiter(1, 10*time.Millisecond)

	r := gin.New()
	r.POST("/login", rl.RateLimiterMiddleware(middlewares.KeyByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request blocked: %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("limit not applied: %d", code)
	}

	time.Sleep(20 * time.Millisecond)

	if code := do(); code != http.StatusOK {
		t.Fatalf("window did not reset: %d", code)
	}
}
