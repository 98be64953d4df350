// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/testutil"
)

func setupRouter(t *testing.T) (*sql.DB, *http.ServeMux) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })
	return db, NewRouter(db, testutil.GetTestConfig())
}

func do(mux http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, headers))
	return w
}

func TestHealthEndpoint(t *testing.T) {
	_, mux := setupRouter(t)

	w := do(mux, "GET", "/health", nil, nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	_, mux := setupRouter(t)

	w := do(mux, "GET", "/", nil, nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	expected := "quickly-ask API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	_, mux := setupRouter(t)

	w := do(mux, "GET", "/api/does-not-exist", nil, nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected JSON 404, got Content-Type %q", w.Header().Get("Content-Type"))
	}
}

func TestRouteExistence(t *testing.T) {
	_, mux := setupRouter(t)

	// 400, 401 and 404 all mean a handler ran
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/api/register"},
		{"POST", "/api/login"},
		{"GET", "/api/questions"},
		{"GET", "/api/categories"},
		{"GET", "/api/questions/1"},
		{"POST", "/api/questions"},
		{"PUT", "/api/questions/1"},
		{"DELETE", "/api/questions/1"},
		{"POST", "/api/questions/1/answers"},
		{"POST", "/api/answers/1/vote"},
		{"GET", "/api/admin"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(mux, tc.method, tc.path, nil, nil)
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	_, mux := setupRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/api/questions"},
		{"PUT", "/api/questions/1"},
		{"DELETE", "/api/questions/1"},
		{"POST", "/api/questions/1/answers"},
		{"POST", "/api/answers/1/vote"},
		{"GET", "/api/admin"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(mux, tc.method, tc.path, nil, map[string]string{"Authorization": "Bearer not-a-session"})
			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", w.Code)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	_, mux := setupRouter(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"PUT to categories", "PUT", "/api/categories", http.StatusMethodNotAllowed},
		{"GET to vote endpoint", "GET", "/api/answers/1/vote", http.StatusNotFound},
		{"PATCH to question", "PATCH", "/api/questions/1", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(mux, tc.method, tc.path, nil, nil)
			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	_, mux := setupRouter(t)

	w := do(mux, "GET", "/api/categories", nil, nil)
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected request id header on API responses")
	}
}

// TestQuestionLifecycle drives the whole API the way the frontend does.
func TestQuestionLifecycle(t *testing.T) {
	db, mux := setupRouter(t)

	login := func(email, password string) map[string]string {
		t.Helper()
		w := do(mux, "POST", "/api/login", models.LoginRequest{Email: email, Password: password}, nil)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.LoginResponse
		testutil.AssertJSON(t, w, &resp)
		return testutil.AuthHeader(resp.Token)
	}

	// Register and log in two members
	for _, name := range []string{"alice", "bob"} {
		w := do(mux, "POST", "/api/register", models.RegisterRequest{Username: name, Email: name + "@example.com", Password: "pw-" + name}, nil)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}
	alice := login("alice@example.com", "pw-alice")
	bob := login("bob@example.com", "pw-bob")

	// Bad credentials
	w := do(mux, "POST", "/api/login", models.LoginRequest{Email: "alice@example.com", Password: "wrong"}, nil)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Alice asks
	w = do(mux, "POST", "/api/questions", models.QuestionRequest{Title: "Is Go fast?", CategoryID: 1, Description: "Benchmarks welcome"}, alice)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var created models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &created)
	qPath := "/api/questions/" + strconv.FormatInt(created.ID, 10)

	// Bob answers
	w = do(mux, "POST", qPath+"/answers", models.AnswerRequest{Content: "Yes"}, bob)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var answerID int64
	if err := db.QueryRow("SELECT id FROM answers WHERE question_id = ?", created.ID).Scan(&answerID); err != nil {
		t.Fatal(err)
	}
	votePath := "/api/answers/" + strconv.FormatInt(answerID, 10) + "/vote"

	// Votes: alice up (201), bob down (201), alice up again toggles off (200), alice down (201)
	for _, step := range []struct {
		headers map[string]string
		vote    int
		status  int
	}{
		{alice, 1, http.StatusCreated},
		{bob, -1, http.StatusCreated},
		{alice, 1, http.StatusOK},
		{alice, -1, http.StatusCreated},
		{bob, 1, http.StatusOK},
	} {
		w = do(mux, "POST", votePath, models.VoteRequest{Vote: step.vote}, step.headers)
		testutil.AssertStatus(t, w, step.status)
	}

	// List shows author and answer count
	w = do(mux, "GET", "/api/questions", nil, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var list []models.QuestionSummary
	testutil.AssertJSON(t, w, &list)
	if len(list) != 1 || list[0].Username != "alice" || list[0].AnswersCount != 1 {
		t.Errorf("Unexpected question list: %+v", list)
	}

	// Detail: bob flipped to up, alice down
	w = do(mux, "GET", qPath, nil, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var detail models.QuestionDetail
	testutil.AssertJSON(t, w, &detail)
	if len(detail.Answers) != 1 || detail.Answers[0].Upvotes != 1 || detail.Answers[0].Downvotes != 1 {
		t.Errorf("Unexpected answers: %+v", detail.Answers)
	}

	// Bob cannot edit or delete alice's question
	w = do(mux, "PUT", qPath, models.QuestionRequest{Title: "Mine now", CategoryID: 1}, bob)
	testutil.AssertStatus(t, w, http.StatusForbidden)
	w = do(mux, "DELETE", qPath, nil, bob)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// Alice edits, which stamps edited_at
	w = do(mux, "PUT", qPath, models.QuestionRequest{Title: "Is Go fast enough?", CategoryID: 1}, alice)
	testutil.AssertStatus(t, w, http.StatusOK)
	w = do(mux, "GET", qPath, nil, nil)
	detail = models.QuestionDetail{}
	testutil.AssertJSON(t, w, &detail)
	if detail.Question.Title != "Is Go fast enough?" || detail.Question.EditedAt == nil {
		t.Errorf("Expected edited question, got %+v", detail.Question)
	}

	// Alice deletes; everything under the question goes with it
	w = do(mux, "DELETE", qPath, nil, alice)
	testutil.AssertStatus(t, w, http.StatusOK)
	w = do(mux, "GET", qPath, nil, nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	if n := testutil.CountRows(t, db, "SELECT COUNT(*) FROM votes"); n != 0 {
		t.Errorf("Expected no votes left, got %d", n)
	}
	if n := testutil.CountRows(t, db, "SELECT COUNT(*) FROM answers"); n != 0 {
		t.Errorf("Expected no answers left, got %d", n)
	}
}

func TestAdminRoute(t *testing.T) {
	db, mux := setupRouter(t)

	testutil.CreateTestUser(t, db, "member", "")
	testutil.CreateTestUser(t, db, "root", models.RoleAdmin)

	token := func(email string) map[string]string {
		w := do(mux, "POST", "/api/login", models.LoginRequest{Email: email, Password: testutil.TestPassword}, nil)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.LoginResponse
		testutil.AssertJSON(t, w, &resp)
		return testutil.AuthHeader(resp.Token)
	}

	w := do(mux, "GET", "/api/admin", nil, nil)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	w = do(mux, "GET", "/api/admin", nil, token("member@example.com"))
	testutil.AssertStatus(t, w, http.StatusForbidden)

	w = do(mux, "GET", "/api/admin", nil, token("root@example.com"))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["message"] != "Welcome to the admin panel" {
		t.Errorf("Unexpected admin response: %v", resp)
	}
}

func TestProductionServesFrontend(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<div id=root></div>"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testutil.GetTestConfig()
	cfg.AppEnv = cliparse.EnvProduction
	cfg.StaticDir = dir
	mux := NewRouter(db, cfg)

	w := do(mux, "GET", "/questions/3", nil, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "<div id=root></div>" {
		t.Errorf("Expected index.html fallback, got %q", w.Body.String())
	}

	// API routes still win over the frontend
	w = do(mux, "GET", "/api/categories", nil, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	w = do(mux, "GET", "/api/nope", nil, nil)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
