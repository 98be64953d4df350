// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Dialects

Two drivers are registered:

  - sqlite (modernc.org/sqlite, default): url is a file path
  - postgres (github.com/lib/pq): url is a connection string

	conn, err := db.Open(db.SQLite, "qna.db")

Queries are written with ? placeholders; Rebind converts them to $N for postgres.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
A "General" category is seeded when the categories table is empty.

# Tables

  - users: credentials and role (member by default)
  - sessions: issued bearer tokens, many per user
  - categories: reference data
  - questions: title, category, description, owner, edited_at
  - answers: one row per answer
  - votes: one row per (answer, user), value 1 or -1

# Relationships

	users 1──* sessions
	users 1──* questions 1──* answers 1──* votes
	categories 1──* questions

Foreign keys do not cascade; deleting a question removes its votes and answers
explicitly, children first.
*/
package db
