// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/models"
)

// Categories

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Questions

func (s *Store) ListQuestions(ctx context.Context) ([]models.QuestionSummary, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT q.id, q.title, q.category_id, q.description, q.user_id, q.created_at, q.edited_at,
		       u.username,
		       (SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id) AS answers_count
		FROM questions q
		JOIN users u ON q.user_id = u.id
		ORDER BY q.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]models.QuestionSummary, 0)
	for rows.Next() {
		var qs models.QuestionSummary
		var editedAt sql.NullTime
		if err := rows.Scan(
			&qs.ID, &qs.Title, &qs.CategoryID, &qs.Description, &qs.UserID, &qs.CreatedAt, &editedAt,
			&qs.Username, &qs.AnswersCount,
		); err != nil {
			return nil, err
		}
		qs.EditedAt = nullTime(editedAt)
		questions = append(questions, qs)
	}
	return questions, rows.Err()
}

func (s *Store) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	var editedAt sql.NullTime
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT id, title, category_id, description, user_id, created_at, edited_at
		FROM questions WHERE id = ?
	`), id).Scan(&q.ID, &q.Title, &q.CategoryID, &q.Description, &q.UserID, &q.CreatedAt, &editedAt)
	if err != nil {
		return models.Question{}, notFound(err)
	}
	q.EditedAt = nullTime(editedAt)
	return q, nil
}

func (s *Store) GetQuestionWithAuthor(ctx context.Context, id int64) (models.QuestionWithAuthor, error) {
	var q models.QuestionWithAuthor
	var editedAt sql.NullTime
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT q.id, q.title, q.category_id, q.description, q.user_id, q.created_at, q.edited_at, u.username
		FROM questions q
		JOIN users u ON q.user_id = u.id
		WHERE q.id = ?
	`), id).Scan(&q.ID, &q.Title, &q.CategoryID, &q.Description, &q.UserID, &q.CreatedAt, &editedAt, &q.Username)
	if err != nil {
		return models.QuestionWithAuthor{}, notFound(err)
	}
	q.EditedAt = nullTime(editedAt)
	return q, nil
}

func (s *Store) CreateQuestion(ctx context.Context, q models.Question) (int64, error) {
	var id int64
	err := s.conn.QueryRowContext(ctx, s.q(`
		INSERT INTO questions (title, category_id, description, user_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), q.Title, q.CategoryID, q.Description, q.UserID, time.Now().UTC()).Scan(&id)
	return id, err
}

// UpdateQuestion writes title, category, description and edited_at of q.ID
func (s *Store) UpdateQuestion(ctx context.Context, q models.Question) error {
	var editedAt any
	if q.EditedAt != nil {
		editedAt = q.EditedAt.UTC()
	}
	res, err := s.conn.ExecContext(ctx, s.q(`
		UPDATE questions
		SET title = ?, category_id = ?, description = ?, edited_at = ?
		WHERE id = ?
	`), q.Title, q.CategoryID, q.Description, editedAt, q.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteQuestionCascade removes the votes on the question's answers, the answers,
// then the question, in one transaction.
func (s *Store) DeleteQuestionCascade(ctx context.Context, id int64) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.q(`
		DELETE FROM votes
		WHERE answer_id IN (SELECT id FROM answers WHERE question_id = ?)
	`), id); err != nil {
		return fmt.Errorf("delete votes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM answers WHERE question_id = ?`), id); err != nil {
		return fmt.Errorf("delete answers: %w", err)
	}

	res, err := tx.ExecContext(ctx, s.q(`DELETE FROM questions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}

	return tx.Commit()
}

// Answers

func (s *Store) CreateAnswer(ctx context.Context, questionID, userID int64, content string) (int64, error) {
	var id int64
	err := s.conn.QueryRowContext(ctx, s.q(`
		INSERT INTO answers (question_id, user_id, content, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`), questionID, userID, content, time.Now().UTC()).Scan(&id)
	return id, err
}

// ListAnswersWithVotes returns a question's answers with upvote and downvote totals
func (s *Store) ListAnswersWithVotes(ctx context.Context, questionID int64) ([]models.AnswerWithVotes, error) {
	rows, err := s.conn.QueryContext(ctx, s.q(`
		SELECT a.id, a.question_id, a.user_id, a.content, a.created_at,
		       COALESCE(SUM(CASE WHEN v.vote = 1 THEN 1 ELSE 0 END), 0) AS upvotes,
		       COALESCE(SUM(CASE WHEN v.vote = -1 THEN 1 ELSE 0 END), 0) AS downvotes
		FROM answers a
		LEFT JOIN votes v ON v.answer_id = a.id
		WHERE a.question_id = ?
		GROUP BY a.id, a.question_id, a.user_id, a.content, a.created_at
		ORDER BY a.id
	`), questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make([]models.AnswerWithVotes, 0)
	for rows.Next() {
		var a models.AnswerWithVotes
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.UserID, &a.Content, &a.CreatedAt, &a.Upvotes, &a.Downvotes); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// Votes

// ToggleVote applies v to the (answer, user) pair in one transaction:
// no vote inserts it, the same vote deletes it, the opposite vote replaces it.
func (s *Store) ToggleVote(ctx context.Context, v models.Vote) (models.VoteOutcome, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, s.q(`
		INSERT INTO votes (answer_id, user_id, vote) VALUES (?, ?, ?)
		ON CONFLICT (answer_id, user_id) DO NOTHING
	`), v.AnswerID, v.UserID, v.Vote)
	if err != nil {
		return 0, fmt.Errorf("insert vote: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	outcome := models.VoteCreated
	if inserted == 0 {
		// Existing row: lock it on postgres; sqlite transactions already hold the write lock
		lookup := `SELECT vote FROM votes WHERE answer_id = ? AND user_id = ?`
		if s.dialect == db.Postgres {
			lookup += ` FOR UPDATE`
		}

		var existing int
		err := tx.QueryRowContext(ctx, s.q(lookup), v.AnswerID, v.UserID).Scan(&existing)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// Removed by a concurrent toggle after our insert conflicted
			_, err = tx.ExecContext(ctx, s.q(`
				INSERT INTO votes (answer_id, user_id, vote) VALUES (?, ?, ?)
			`), v.AnswerID, v.UserID, v.Vote)
		case err != nil:
			return 0, fmt.Errorf("get vote: %w", err)
		case existing == v.Vote:
			outcome = models.VoteRemoved
			_, err = tx.ExecContext(ctx, s.q(`
				DELETE FROM votes WHERE answer_id = ? AND user_id = ?
			`), v.AnswerID, v.UserID)
		default:
			outcome = models.VoteChanged
			_, err = tx.ExecContext(ctx, s.q(`
				UPDATE votes SET vote = ? WHERE answer_id = ? AND user_id = ?
			`), v.Vote, v.AnswerID, v.UserID)
		}
		if err != nil {
			return 0, fmt.Errorf("%s vote: %w", outcome, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit vote: %w", err)
	}
	return outcome, nil
}
