package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/http/handlers"
	"github.com/stackboard/stackboard/internal/http/middlewares"
	"github.com/stackboard/stackboard/internal/repo/memory"
)

// authRig wires the register/login/profile surface against the in-memory
// users repo and a real token manager.
func authRig() *gin.Engine {
	users := memory.NewUsersRepo()
	jwtMgr := auth.NewManager("test-secret", time.Hour)

	h := handlers.NewAuthHandler(users, jwtMgr)
	mw := middlewares.NewAuthMiddleware(jwtMgr)

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/profile", mw.RequireAuth(), h.Profile)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r := authRig()

	w := postJSON(r, "/register", `{"name":"Ann","email":"ann@x.com","password":"supersecret"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}

	// the response never includes the password hash
	if bytes.Contains(w.Body.Bytes(), []byte("password")) {
		t.Fatalf("register response leaks password material: %s", w.Body.String())
	}

	w = postJSON(r, "/register", `{"name":"Other Ann","email":"ann@x.com","password":"differentpw"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate email must 409: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.Error.Code != "email_taken" {
		t.Fatalf("got code %q, want email_taken", resp.Error.Code)
	}
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	r := authRig()

	w := postJSON(r, "/register", `{"name":"Ann","email":"ann@x.com","password":"short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password accepted: %d %s", w.Code, w.Body.String())
	}
}

func TestLogin(t *testing.T) {
	r := authRig()

	if w := postJSON(r, "/register", `{"name":"Ann","email":"ann@x.com","password":"supersecret"}`); w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{"success", `{"email":"ann@x.com","password":"supersecret"}`, http.StatusOK},
		{"wrong_password", `{"email":"ann@x.com","password":"wrongwrong"}`, http.StatusUnauthorized},
		{"unknown_email", `{"email":"ghost@x.com","password":"supersecret"}`, http.StatusUnauthorized},
	}

	var codes []string
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/login", tt.body)
			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var resp struct {
					Token string `json:"token"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal token: %v", err)
				}
				if resp.Token == "" {
					t.Fatal("empty token on successful login")
				}
				return
			}

			var resp struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			codes = append(codes, resp.Error.Code)
		})
	}

	// unknown email and wrong password must be indistinguishable
	if len(codes) == 2 && codes[0] != codes[1] {
		t.Fatalf("login failures leak account existence: %v", codes)
	}
}

func TestProfile(t *testing.T) {
	r := authRig()

	if w := postJSON(r, "/register", `{"name":"Ann","email":"ann@x.com","password":"supersecret"}`); w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}
	w := postJSON(r, "/login", `{"email":"ann@x.com","password":"supersecret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("unmarshal token: %v", err)
	}

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
	}{
		{"no_token", "", http.StatusUnauthorized},
		{"malformed_header", "Token abc", http.StatusUnauthorized},
		{"garbage_token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"valid_token", "Bearer " + loginResp.Token, http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var u struct {
					Name         string `json:"name"`
					Email        string `json:"email"`
					PasswordHash string `json:"passwordHash"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
					t.Fatalf("unmarshal profile: %v", err)
				}
				if u.Email != "ann@x.com" || u.Name != "Ann" {
					t.Fatalf("unexpected profile: %s", w.Body.String())
				}
				if u.PasswordHash != "" {
					t.Fatal("profile leaks the password hash")
				}
			}
		})
	}
}
