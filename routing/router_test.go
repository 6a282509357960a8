package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-container/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Verbs(t *testing.T) {
	tests := []struct {
		method  string
		pattern string
		path    string
	}{
		{http.MethodGet, "/hello", "/hello"},
		{http.MethodPost, "/users", "/users"},
		{http.MethodPut, "/users/{id}", "/users/1"},
		{http.MethodPatch, "/users/{id}", "/users/1"},
		{http.MethodDelete, "/users/{id}", "/users/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			r := routing.New()
			switch tt.method {
			case http.MethodGet:
				r.Get(tt.pattern, okHandler)
			case http.MethodPost:
				r.Post(tt.pattern, okHandler)
			case http.MethodPut:
				r.Put(tt.pattern, okHandler)
			case http.MethodPatch:
				r.Patch(tt.pattern, okHandler)
			case http.MethodDelete:
				r.Delete(tt.pattern, okHandler)
			}

			rr := do(t, r, tt.method, tt.path)
			if rr.Code != http.StatusOK {
				t.Errorf("%s %s: got %d want 200", tt.method, tt.path, rr.Code)
			}
		})
	}
}

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/users", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/api/v1/users"); rr.Code != http.StatusOK {
		t.Errorf("GET /api/v1/users: got %d want 200", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/users"); rr.Code != http.StatusNotFound {
		t.Errorf("GET /users outside prefix: got %d want 404", rr.Code)
	}
}

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(routing.Param(req, "id")))
	})

	rr := do(t, r, http.MethodGet, "/users/42")
	if got := rr.Body.String(); got != "42" {
		t.Errorf("Param: got %q want %q", got, "42")
	}
}

func TestRouter_Middleware(t *testing.T) {
	r := routing.New()
	r.Middleware(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Test", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/", okHandler)

	rr := do(t, r, http.MethodGet, "/")
	if rr.Header().Get("X-Test") != "1" {
		t.Error("middleware did not run")
	}
}
