package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"libeasy/internal/adapters/persistence/models"
	"libeasy/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "test-secret", ExpiryHours: 24},
	}
	config.AppConfig = cfg

	app := fiber.New()
	Setup(app, db, cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func registerUser(t *testing.T, app *fiber.App, email, role string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"name":     "Test User",
		"role":     role,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestFullBorrowingFlow(t *testing.T) {
	app := newTestServer(t)

	adminToken := registerUser(t, app, "admin@libeasy.local", "admin")
	memberToken := registerUser(t, app, "alice@campus.edu", "student")

	// Duplicate registration is refused
	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "admin@libeasy.local", "name": "Dup", "role": "admin", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Create a book
	resp, book := doJSON(t, app, http.MethodPost, "/api/books/", adminToken, map[string]interface{}{
		"title": "The Go Programming Language", "author": "Donovan & Kernighan",
		"isbn": "978-0134190440", "total_copies": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, book["available_copies"])
	bookID := uint(book["id"].(float64))

	// Anonymous users can read the catalog but not write it
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/books/%d", bookID), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/books/", "", map[string]interface{}{"title": "Nope", "author": "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// A student-role token cannot create books
	resp, _ = doJSON(t, app, http.MethodPost, "/api/books/", memberToken, map[string]interface{}{"title": "Nope", "author": "x"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Create a student profile linked to the member by email
	resp, student := doJSON(t, app, http.MethodPost, "/api/students/", adminToken, map[string]interface{}{
		"name": "Alice", "email": "alice@campus.edu", "roll_no": "CS-001",
		"department": "CS", "join_date": "2024-07-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	studentID := uint(student["id"].(float64))

	// Issue a book
	resp, record := doJSON(t, app, http.MethodPost, "/api/borrow-records/issue", adminToken, map[string]interface{}{
		"student_id": studentID, "book_id": bookID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ISSUED", record["status"])
	recordID := uint(record["id"].(float64))

	resp, book = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/books/%d", bookID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, book["available_copies"])

	// The member sees their own history
	resp, _ = doJSON(t, app, http.MethodGet, "/api/borrow-records/my-history", memberToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Dashboard stats are staff-only
	resp, _ = doJSON(t, app, http.MethodGet, "/api/dashboard/stats", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, stats := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, stats["total_books"])
	assert.EqualValues(t, 1, stats["issued_books"])
	assert.EqualValues(t, 1, stats["available_books"])

	// Deleting the book while the record exists is refused
	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/books/%d", bookID), adminToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Return, then return again (idempotent)
	resp, body := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/borrow-records/%d/return", recordID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Book returned successfully", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/borrow-records/%d/return", recordID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Book already returned", body["message"])

	resp, book = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/books/%d", bookID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, book["available_copies"])
}

func TestLoginFailures(t *testing.T) {
	app := newTestServer(t)

	registerUser(t, app, "admin@libeasy.local", "admin")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@libeasy.local", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@libeasy.local", "password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
}

func TestMyHistoryWithoutProfile(t *testing.T) {
	app := newTestServer(t)

	token := registerUser(t, app, "noprofile@example.com", "student")

	resp, _ := doJSON(t, app, http.MethodGet, "/api/borrow-records/my-history", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIssueUnavailableBook(t *testing.T) {
	app := newTestServer(t)

	adminToken := registerUser(t, app, "admin@libeasy.local", "admin")

	resp, book := doJSON(t, app, http.MethodPost, "/api/books/", adminToken, map[string]interface{}{
		"title": "Rare Book", "author": "x", "total_copies": 0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bookID := uint(book["id"].(float64))

	resp, student := doJSON(t, app, http.MethodPost, "/api/students/", adminToken, map[string]interface{}{
		"name": "Alice", "email": "alice@campus.edu", "roll_no": "CS-001",
		"department": "CS", "join_date": "2024-07-01T00:00:00Z",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	studentID := uint(student["id"].(float64))

	resp, body := doJSON(t, app, http.MethodPost, "/api/borrow-records/issue", adminToken, map[string]interface{}{
		"student_id": studentID, "book_id": bookID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Book is not available", body["error"])

	// Missing book and missing student are 404s
	resp, _ = doJSON(t, app, http.MethodPost, "/api/borrow-records/issue", adminToken, map[string]interface{}{
		"student_id": studentID, "book_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/borrow-records/issue", adminToken, map[string]interface{}{
		"student_id": 999, "book_id": bookID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
