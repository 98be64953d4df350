// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-ask/models"
)

// UserStore is the credential store used by Service.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	SetUserRole(ctx context.Context, id int64, role string) error
}

// SessionStore persists issued tokens.
type SessionStore interface {
	CreateSession(ctx context.Context, userID int64, token string) error
	SessionExists(ctx context.Context, token string) (bool, error)
}

type Service struct {
	users    UserStore
	sessions SessionStore
	hasher   PasswordHasher
	tokens   *TokenSigner
}

func NewService(users UserStore, sessions SessionStore, hasher PasswordHasher, tokens *TokenSigner) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register hashes the password and stores a new member.
// Duplicate usernames are not checked here; a duplicate email fails in the store.
func (s *Service) Register(ctx context.Context, username, email, password string) (int64, error) {
	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.CreateUser(ctx, username, email, string(hash))
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// Login checks the credentials, issues a token and records it as a session.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return "", models.ErrUnauthorized
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := s.hasher.Compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrUnauthorized
	}

	token, err := s.tokens.Sign(models.AuthUser{ID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return "", err
	}

	if err := s.sessions.CreateSession(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// Authenticate resolves an Authorization header value to the token's identity.
// The token must be a stored session AND carry a valid signature and expiry.
func (s *Service) Authenticate(ctx context.Context, header string) (models.AuthUser, error) {
	token, ok := BearerToken(header)
	if !ok {
		return models.AuthUser{}, models.ErrUnauthorized
	}

	exists, err := s.sessions.SessionExists(ctx, token)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("lookup session: %w", err)
	}
	if !exists {
		return models.AuthUser{}, models.ErrUnauthorized
	}

	user, err := s.tokens.Verify(token)
	if err != nil {
		return models.AuthUser{}, models.ErrUnauthorized
	}
	return user, nil
}

// EnsureAdmin creates the configured admin account if its email is unused,
// and promotes an existing account with that email to admin.
func (s *Service) EnsureAdmin(ctx context.Context, username, email, password string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, models.ErrNotFound):
		id, err := s.Register(ctx, username, email, password)
		if err != nil {
			return fmt.Errorf("create default admin: %w", err)
		}
		if err := s.users.SetUserRole(ctx, id, models.RoleAdmin); err != nil {
			return fmt.Errorf("promote default admin: %w", err)
		}
		slog.Info("default admin created", "username", username, "user_id", id)
		return nil
	case err != nil:
		return fmt.Errorf("find admin: %w", err)
	}

	if user.Role == models.RoleAdmin {
		return nil
	}
	if err := s.users.SetUserRole(ctx, user.ID, models.RoleAdmin); err != nil {
		return fmt.Errorf("promote admin: %w", err)
	}
	slog.Info("user promoted to admin", "user_id", user.ID)
	return nil
}
