// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store runs every SQL query of the Quickly Ask API.

A Store wraps a *sql.DB and the dialect it was opened with. Queries are
written with ? placeholders and rebound for postgres:

	st := store.New(conn, db.SQLite)
	id, err := st.CreateQuestion(ctx, models.Question{Title: "Why?", CategoryID: 1, UserID: uid})

Lookups that find no row return models.ErrNotFound. Constraint violations
(duplicate email, unknown foreign key, second vote row) are returned as the
driver's error.

Store satisfies auth.UserStore, auth.SessionStore and qna.Store.
*/
package store
