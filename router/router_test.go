// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/idea-board/store"
	"github.com/danielhkuo/idea-board/testutil"
)

func setupRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.UploadDir = t.TempDir()
	return NewRouter(store.New(conn), cfg)
}

func TestHealthEndpoint(t *testing.T) {
	mux := setupRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := setupRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "idea-board API v1" {
		t.Errorf("Unexpected body: '%s'", w.Body.String())
	}
}

// Routes should exist and dispatch; 404/405 here means a pattern typo.
func TestRouteDispatch(t *testing.T) {
	mux := setupRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		rejectCode int // a status that would indicate the route is missing
	}{
		{"list ideas", "GET", "/ideas", http.StatusNotFound},
		{"create idea", "POST", "/ideas", http.StatusMethodNotAllowed},
		{"vote", "POST", "/ideas/1/vote", http.StatusMethodNotAllowed},
		{"list products", "GET", "/products", http.StatusNotFound},
		{"get product", "GET", "/products/1", http.StatusMethodNotAllowed},
		{"add comment", "POST", "/products/1/comments", http.StatusMethodNotAllowed},
		{"delete idea", "DELETE", "/admin/ideas/1", http.StatusMethodNotAllowed},
		{"export", "GET", "/admin/export", http.StatusMethodNotAllowed},
		{"create product", "POST", "/admin/products", http.StatusMethodNotAllowed},
		{"add update", "POST", "/admin/products/1/updates", http.StatusMethodNotAllowed},
		{"delete product", "DELETE", "/admin/products/1", http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == tc.rejectCode {
				t.Errorf("Route %s %s not registered: got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestVoteThroughRouter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.UploadDir = t.TempDir()
	mux := NewRouter(store.New(conn), cfg)

	testutil.CreateTestIdea(t, conn, "Solar benches", "alice", 0, time.Now().UTC())

	req := httptest.NewRequest("POST", "/ideas/1/vote", nil)
	req.Header.Set("X-Voter-Token", "voter-a")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	// The mux must extract {id} and reach the handler
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
}
