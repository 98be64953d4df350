// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/qna"
	"github.com/danielhkuo/quickly-ask/store"
	"github.com/danielhkuo/quickly-ask/testutil"
)

type testEnv struct {
	db        *sql.DB
	cfg       cliparse.Config
	authSvc   *auth.Service
	auth      *AuthHandler
	questions *QuestionHandler
	answers   *AnswerHandler
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	cfg := testutil.GetTestConfig()
	st := store.New(conn, db.SQLite)
	authSvc := auth.NewService(st, st, auth.BcryptHasher{Cost: bcrypt.MinCost}, auth.NewTokenSigner(cfg.JWTSecret))
	qnaSvc := qna.NewService(st)

	return &testEnv{
		db:        conn,
		cfg:       cfg,
		authSvc:   authSvc,
		auth:      NewAuthHandler(authSvc),
		questions: NewQuestionHandler(qnaSvc),
		answers:   NewAnswerHandler(qnaSvc),
	}
}

// login creates a user with a stored session and returns the user and its headers
func (e *testEnv) login(t *testing.T, username, role string) (models.User, map[string]string) {
	t.Helper()
	u := testutil.CreateTestUser(t, e.db, username, role)
	return u, testutil.AuthHeader(testutil.LoginTestUser(t, e.db, e.cfg, u))
}

// serve runs h behind RequireAuth when authed is set, with an optional {id} path value
func (e *testEnv) serve(h http.HandlerFunc, authed bool, req *http.Request, id string) *httptest.ResponseRecorder {
	if authed {
		h = middleware.RequireAuth(e.authSvc, h)
	}
	if id != "" {
		req.SetPathValue("id", id)
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}
