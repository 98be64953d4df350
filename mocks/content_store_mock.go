// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danielhkuo/quickly-ask/models"
)

type ContentStore struct{ mock.Mock }

func (m *ContentStore) ListQuestions(ctx context.Context) ([]models.QuestionSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuestionSummary), args.Error(1)
}

func (m *ContentStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *ContentStore) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Question), args.Error(1)
}

func (m *ContentStore) GetQuestionWithAuthor(ctx context.Context, id int64) (models.QuestionWithAuthor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.QuestionWithAuthor), args.Error(1)
}

func (m *ContentStore) ListAnswersWithVotes(ctx context.Context, questionID int64) ([]models.AnswerWithVotes, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AnswerWithVotes), args.Error(1)
}

func (m *ContentStore) CreateQuestion(ctx context.Context, q models.Question) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ContentStore) UpdateQuestion(ctx context.Context, q models.Question) error {
	return m.Called(ctx, q).Error(0)
}

func (m *ContentStore) DeleteQuestionCascade(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ContentStore) CreateAnswer(ctx context.Context, questionID, userID int64, content string) (int64, error) {
	args := m.Called(ctx, questionID, userID, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ContentStore) ToggleVote(ctx context.Context, v models.Vote) (models.VoteOutcome, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(models.VoteOutcome), args.Error(1)
}
