// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/qna"
)

const questionNotFound = "Question not found"

type QuestionHandler struct {
	qna *qna.Service
}

func NewQuestionHandler(svc *qna.Service) *QuestionHandler {
	return &QuestionHandler{qna: svc}
}

// ListQuestions handles GET /api/questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.qna.ListQuestions(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, questions)
}

// ListCategories handles GET /api/categories
func (h *QuestionHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.qna.GetCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// GetQuestion handles GET /api/questions/{id}
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.qna.GetQuestionDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, questionNotFound)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, detail)
}

// CreateQuestion handles POST /api/questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	req, ok := parseQuestionRequest(w, r)
	if !ok {
		return
	}

	id, err := h.qna.AddQuestion(r.Context(), req.Title, req.CategoryID, req.Description, user)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	slog.Info("question created", "question_id", id, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{ID: id})
}

// UpdateQuestion handles PUT /api/questions/{id}
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	req, ok := parseQuestionRequest(w, r)
	if !ok {
		return
	}

	if err := h.qna.UpdateQuestion(r.Context(), id, req.Title, req.CategoryID, req.Description, user); err != nil {
		writeServiceError(w, r, err, questionNotFound)
		return
	}

	slog.Info("question updated", "question_id", id, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Question updated"})
}

// DeleteQuestion handles DELETE /api/questions/{id}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.qna.DeleteQuestion(r.Context(), id, user); err != nil {
		writeServiceError(w, r, err, questionNotFound)
		return
	}

	slog.Info("question deleted", "question_id", id, "user_id", user.ID, "role", user.Role)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Question deleted"})
}

func parseQuestionRequest(w http.ResponseWriter, r *http.Request) (models.QuestionRequest, bool) {
	var req models.QuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return req, false
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return req, false
	}
	if req.CategoryID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category_id is required")
		return req, false
	}
	return req, true
}
