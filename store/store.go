// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/models"
)

// Store runs the application's queries against users, sessions and content tables.
type Store struct {
	conn    *sql.DB
	dialect string
}

func New(conn *sql.DB, dialect string) *Store {
	return &Store{conn: conn, dialect: dialect}
}

func (s *Store) q(query string) string {
	return db.Rebind(s.dialect, query)
}

// notFound maps sql.ErrNoRows to models.ErrNotFound
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// Users

func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	var id int64
	err := s.conn.QueryRowContext(ctx, s.q(`
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`), username, email, passwordHash, time.Now().UTC()).Scan(&id)
	return id, err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT id, username, email, password_hash, role, created_at
		FROM users WHERE email = ?
	`), email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, notFound(err)
}

func (s *Store) SetUserRole(ctx context.Context, id int64, role string) error {
	res, err := s.conn.ExecContext(ctx, s.q(`UPDATE users SET role = ? WHERE id = ?`), role, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Sessions

func (s *Store) CreateSession(ctx context.Context, userID int64, token string) error {
	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO sessions (user_id, token, created_at)
		VALUES (?, ?, ?)
	`), userID, token, time.Now().UTC())
	return err
}

func (s *Store) SessionExists(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT EXISTS(SELECT 1 FROM sessions WHERE token = ?)
	`), token).Scan(&exists)
	return exists, err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
