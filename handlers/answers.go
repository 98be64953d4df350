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

type AnswerHandler struct {
	qna *qna.Service
}

func NewAnswerHandler(svc *qna.Service) *AnswerHandler {
	return &AnswerHandler{qna: svc}
}

// SubmitAnswer handles POST /api/questions/{id}/answers
func (h *AnswerHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	questionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.AnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	id, err := h.qna.SubmitAnswer(r.Context(), questionID, req.Content, user)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	slog.Info("answer submitted", "answer_id", id, "question_id", questionID, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "Answer submitted"})
}

// Vote handles POST /api/answers/{id}/vote.
// 201 when a vote is created, 200 when it is removed or flipped.
func (h *AnswerHandler) Vote(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	answerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	outcome, err := h.qna.Vote(r.Context(), answerID, req.Vote, user)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	status := http.StatusOK
	if outcome == models.VoteCreated {
		status = http.StatusCreated
	}
	middleware.JSONResponse(w, status, models.MessageResponse{Message: "Vote " + outcome.String()})
}
