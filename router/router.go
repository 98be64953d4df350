// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/handlers"
	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/qna"
	"github.com/danielhkuo/quickly-ask/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Services
	st := store.New(db, cfg.DatabaseType)
	authSvc := auth.NewService(st, st, auth.BcryptHasher{}, auth.NewTokenSigner(cfg.JWTSecret))
	qnaSvc := qna.NewService(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc)
	questionHandler := handlers.NewQuestionHandler(qnaSvc)
	answerHandler := handlers.NewAnswerHandler(qnaSvc)

	public := middleware.WithLogging
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(authSvc, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /api/register", public(authHandler.Register))
	mux.HandleFunc("POST /api/login", public(authHandler.Login))
	mux.HandleFunc("GET /api/admin", protected(middleware.RequireAdmin(authHandler.Admin)))

	// Questions (reads are public)
	mux.HandleFunc("GET /api/questions", public(questionHandler.ListQuestions))
	mux.HandleFunc("GET /api/categories", public(questionHandler.ListCategories))
	mux.HandleFunc("GET /api/questions/{id}", public(questionHandler.GetQuestion))
	mux.HandleFunc("POST /api/questions", protected(questionHandler.CreateQuestion))
	mux.HandleFunc("PUT /api/questions/{id}", protected(questionHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /api/questions/{id}", protected(questionHandler.DeleteQuestion))

	// Answers and votes
	mux.HandleFunc("POST /api/questions/{id}/answers", protected(answerHandler.SubmitAnswer))
	mux.HandleFunc("POST /api/answers/{id}/vote", protected(answerHandler.Vote))

	// Unknown API paths get a JSON 404 rather than the frontend
	mux.HandleFunc("GET /api/", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Route not found")
	})

	// Root endpoint
	if cfg.Production() && cfg.StaticDir != "" {
		slog.Info("serving frontend", "dir", cfg.StaticDir)
		mux.Handle("GET /", handlers.NewStaticHandler(cfg.StaticDir))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("quickly-ask API v1"))
		})
	}

	return mux
}
