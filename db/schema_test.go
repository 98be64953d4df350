// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, err := Open(SQLite, filepath.Join(t.TempDir(), "nested", "schema.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, SQLite); err != nil {
			t.Fatalf("CreateSchema() run %d error = %v", i+1, err)
		}
	}

	// Default category is seeded exactly once
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 seeded category, got %d", count)
	}

	for _, table := range []string{"users", "sessions", "questions", "answers", "votes"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	conn, err := Open(SQLite, filepath.Join(t.TempDir(), "fk.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn, SQLite); err != nil {
		t.Fatal(err)
	}

	_, err = conn.Exec(`INSERT INTO answers (question_id, user_id, content) VALUES (999, 999, 'orphan')`)
	if err == nil {
		t.Error("expected foreign key violation for an answer on a missing question")
	}
}

func TestVoteUniquePerUser(t *testing.T) {
	conn, err := Open(SQLite, filepath.Join(t.TempDir(), "votes.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn, SQLite); err != nil {
		t.Fatal(err)
	}

	mustExec := func(q string, args ...any) {
		t.Helper()
		if _, err := conn.Exec(q, args...); err != nil {
			t.Fatalf("exec %q: %v", q, err)
		}
	}
	mustExec(`INSERT INTO users (id, username, email, password_hash) VALUES (1, 'alice', 'a@example.com', 'x')`)
	mustExec(`INSERT INTO questions (id, title, category_id, user_id) VALUES (1, 'q', 1, 1)`)
	mustExec(`INSERT INTO answers (id, question_id, user_id, content) VALUES (1, 1, 1, 'a')`)
	mustExec(`INSERT INTO votes (answer_id, user_id, vote) VALUES (1, 1, 1)`)

	if _, err := conn.Exec(`INSERT INTO votes (answer_id, user_id, vote) VALUES (1, 1, -1)`); err == nil {
		t.Error("expected primary key violation for a second vote by the same user")
	}
	if _, err := conn.Exec(`UPDATE votes SET vote = 5 WHERE answer_id = 1`); err == nil {
		t.Error("expected check constraint violation for vote value 5")
	}

	var role string
	if err := conn.QueryRow(`SELECT role FROM users WHERE id = 1`).Scan(&role); err != nil {
		t.Fatal(err)
	}
	if role != "member" {
		t.Errorf("expected default role member, got %s", role)
	}
}

func TestOpen_UnsupportedDialect(t *testing.T) {
	if _, err := Open("mysql", "root@/qna"); err == nil {
		t.Error("expected error for unsupported dialect")
	}
}

func TestRebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		query   string
		want    string
	}{
		{"sqlite untouched", SQLite, "SELECT * FROM votes WHERE answer_id = ? AND user_id = ?", "SELECT * FROM votes WHERE answer_id = ? AND user_id = ?"},
		{"postgres numbered", Postgres, "SELECT * FROM votes WHERE answer_id = ? AND user_id = ?", "SELECT * FROM votes WHERE answer_id = $1 AND user_id = $2"},
		{"postgres no params", Postgres, "SELECT 1", "SELECT 1"},
		{"postgres many", Postgres, "VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rebind(tt.dialect, tt.query); got != tt.want {
				t.Errorf("Rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}
