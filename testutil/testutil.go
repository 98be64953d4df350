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

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/models"
)

// TestPassword is the plaintext password of every user made by CreateTestUser
const TestPassword = "password123"

// SetupTestDB creates a fresh SQLite database in a temp dir with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  "test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		JWTSecret:    "test-jwt-secret",
		AppEnv:       "test",
	}
}

// CreateTestUser inserts a user with TestPassword and the given role
// ("" keeps the store default). Email is <username>@example.com.
func CreateTestUser(t *testing.T, conn *sql.DB, username, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	u := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleMember,
		CreatedAt:    time.Now().UTC(),
	}
	if role != "" {
		u.Role = role
	}

	err = conn.QueryRow(`
		INSERT INTO users (username, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return u
}

// LoginTestUser signs a token for the user and stores it as a session
func LoginTestUser(t *testing.T, conn *sql.DB, cfg cliparse.Config, u models.User) string {
	t.Helper()

	token, err := auth.NewTokenSigner(cfg.JWTSecret).Sign(models.AuthUser{ID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO sessions (user_id, token, created_at) VALUES (?, ?, ?)
	`, u.ID, token, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// AuthHeader returns request headers carrying a bearer token
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// CreateTestQuestion inserts a question in the seeded category and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, userID int64, title string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO questions (title, category_id, description, user_id, created_at)
		VALUES (?, 1, 'A test question', ?, ?)
		RETURNING id
	`, title, userID, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// CreateTestAnswer inserts an answer and returns its ID
func CreateTestAnswer(t *testing.T, conn *sql.DB, questionID, userID int64, content string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO answers (question_id, user_id, content, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, questionID, userID, content, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}

	return id
}

// CreateTestVote inserts a vote row directly
func CreateTestVote(t *testing.T, conn *sql.DB, answerID, userID int64, vote int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO votes (answer_id, user_id, vote) VALUES (?, ?, ?)
	`, answerID, userID, vote)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountRows runs a SELECT COUNT(*) query
func CountRows(t *testing.T, conn *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
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
