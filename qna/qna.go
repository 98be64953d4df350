// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package qna

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/models"
)

// Store is the content store behind Service.
type Store interface {
	ListQuestions(ctx context.Context) ([]models.QuestionSummary, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetQuestion(ctx context.Context, id int64) (models.Question, error)
	GetQuestionWithAuthor(ctx context.Context, id int64) (models.QuestionWithAuthor, error)
	ListAnswersWithVotes(ctx context.Context, questionID int64) ([]models.AnswerWithVotes, error)
	CreateQuestion(ctx context.Context, q models.Question) (int64, error)
	UpdateQuestion(ctx context.Context, q models.Question) error
	DeleteQuestionCascade(ctx context.Context, id int64) error
	CreateAnswer(ctx context.Context, questionID, userID int64, content string) (int64, error)
	ToggleVote(ctx context.Context, v models.Vote) (models.VoteOutcome, error)
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock overrides the clock used to stamp edited_at
func (s *Service) WithClock(now func() time.Time) *Service {
	c := *s
	c.now = now
	return &c
}

func (s *Service) ListQuestions(ctx context.Context) ([]models.QuestionSummary, error) {
	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *Service) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetQuestionDetail returns the question with its author and every answer's vote totals.
func (s *Service) GetQuestionDetail(ctx context.Context, id int64) (models.QuestionDetail, error) {
	question, err := s.store.GetQuestionWithAuthor(ctx, id)
	if err != nil {
		return models.QuestionDetail{}, fmt.Errorf("get question %d: %w", id, err)
	}

	answers, err := s.store.ListAnswersWithVotes(ctx, id)
	if err != nil {
		return models.QuestionDetail{}, fmt.Errorf("list answers of question %d: %w", id, err)
	}

	return models.QuestionDetail{Question: question, Answers: answers}, nil
}

// SubmitAnswer does not check that the question exists; the store's foreign key does.
func (s *Service) SubmitAnswer(ctx context.Context, questionID int64, content string, user models.AuthUser) (int64, error) {
	id, err := s.store.CreateAnswer(ctx, questionID, user.ID, content)
	if err != nil {
		return 0, fmt.Errorf("create answer: %w", err)
	}
	return id, nil
}

// Vote toggles the user's vote on an answer:
//
//	no vote          + v  -> vote v      (VoteCreated)
//	vote v           + v  -> no vote     (VoteRemoved)
//	vote v           + -v -> vote -v     (VoteChanged)
//
// The read and the write share one store transaction, so concurrent requests
// from the same user apply one after another.
func (s *Service) Vote(ctx context.Context, answerID int64, vote int, user models.AuthUser) (models.VoteOutcome, error) {
	if vote != models.VoteUp && vote != models.VoteDown {
		return 0, fmt.Errorf("%w: vote must be 1 or -1", models.ErrInvalidInput)
	}

	outcome, err := s.store.ToggleVote(ctx, models.Vote{AnswerID: answerID, UserID: user.ID, Vote: vote})
	if err != nil {
		return 0, fmt.Errorf("toggle vote on answer %d: %w", answerID, err)
	}
	return outcome, nil
}

func (s *Service) AddQuestion(ctx context.Context, title string, categoryID int64, description string, user models.AuthUser) (int64, error) {
	id, err := s.store.CreateQuestion(ctx, models.Question{
		Title:       title,
		CategoryID:  categoryID,
		Description: description,
		UserID:      user.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("create question: %w", err)
	}
	return id, nil
}

// UpdateQuestion is allowed for the owner or an admin and stamps edited_at.
func (s *Service) UpdateQuestion(ctx context.Context, id int64, title string, categoryID int64, description string, user models.AuthUser) error {
	question, err := s.authorize(ctx, id, user)
	if err != nil {
		return err
	}

	editedAt := s.now().UTC()
	question.Title = title
	question.CategoryID = categoryID
	question.Description = description
	question.EditedAt = &editedAt

	if err := s.store.UpdateQuestion(ctx, question); err != nil {
		return fmt.Errorf("update question %d: %w", id, err)
	}
	return nil
}

// DeleteQuestion is allowed for the owner or an admin. Votes on the question's
// answers go first, then the answers, then the question.
func (s *Service) DeleteQuestion(ctx context.Context, id int64, user models.AuthUser) error {
	if _, err := s.authorize(ctx, id, user); err != nil {
		return err
	}

	if err := s.store.DeleteQuestionCascade(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}

// authorize loads the question and applies the owner-or-admin rule
func (s *Service) authorize(ctx context.Context, id int64, user models.AuthUser) (models.Question, error) {
	question, err := s.store.GetQuestion(ctx, id)
	if err != nil {
		return models.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	if !auth.CanModify(user, question.UserID) {
		return models.Question{}, models.ErrForbidden
	}
	return question, nil
}
