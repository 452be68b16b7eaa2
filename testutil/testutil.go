// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/idea-board/cliparse"
	"github.com/danielhkuo/idea-board/db"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir
// with the full schema. Real file, WAL, busy timeout - so concurrency
// tests exercise the actual uniqueness constraint, not a fake.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "test.db")

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3411,
		DatabaseURL:  "test.db",
		DatabaseType: "sqlite",
		AdminKey:     "test-admin-key",
		UploadDir:    "uploads",
	}
}

// CreateTestIdea inserts an idea with explicit votes and creation time
// and returns its id.
func CreateTestIdea(t *testing.T, conn *sql.DB, title, author string, votes int, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO idea (author, title, problem, solution_hint, votes, created_at)
		VALUES ($1, $2, 'test problem', 'test solution hint', $3, $4)
		RETURNING id
	`, author, title, votes, createdAt).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test idea: %v", err)
	}

	return id
}

// CreateTestVote inserts a ledger row directly, bypassing the
// coordinator.
func CreateTestVote(t *testing.T, conn *sql.DB, ideaID int64, voterIdentity string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (idea_id, identity, created_at)
		VALUES ($1, $2, $3)
	`, ideaID, voterIdentity, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CreateTestProduct inserts a product and returns its id.
func CreateTestProduct(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO product (name, description, created_at)
		VALUES ($1, 'test description', $2)
		RETURNING id
	`, name, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
