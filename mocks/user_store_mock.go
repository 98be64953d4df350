// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danielhkuo/quickly-ask/models"
)

type UserStore struct{ mock.Mock }

func (m *UserStore) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	args := m.Called(ctx, username, email, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserStore) SetUserRole(ctx context.Context, id int64, role string) error {
	return m.Called(ctx, id, role).Error(0)
}
