// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// User role constants
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Vote values
const (
	VoteUp   = 1
	VoteDown = -1
)

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type QuestionRequest struct {
	Title       string `json:"title"`
	CategoryID  int64  `json:"category_id"`
	Description string `json:"description"`
}

type AnswerRequest struct {
	Content string `json:"content"`
}

// 1 for upvote, -1 for downvote
type VoteRequest struct {
	Vote int `json:"vote"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateQuestionResponse struct {
	ID int64 `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthUser is the identity carried by a verified bearer token.
type AuthUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Question struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	CategoryID  int64      `json:"category_id"`
	Description string     `json:"description"`
	UserID      int64      `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	EditedAt    *time.Time `json:"edited_at"`
}

// QuestionSummary is a list row: the question, its author and answer count.
type QuestionSummary struct {
	Question
	Username     string `json:"username"`
	AnswersCount int    `json:"answers_count"`
}

type QuestionWithAuthor struct {
	Question
	Username string `json:"username"`
}

type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	UserID     int64     `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type AnswerWithVotes struct {
	Answer
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

type QuestionDetail struct {
	Question QuestionWithAuthor `json:"question"`
	Answers  []AnswerWithVotes  `json:"answers"`
}

type Vote struct {
	AnswerID int64 `json:"answer_id"`
	UserID   int64 `json:"user_id"`
	Vote     int   `json:"vote"`
}

// VoteOutcome reports which transition a vote request caused.
type VoteOutcome int

const (
	VoteCreated VoteOutcome = iota
	VoteRemoved
	VoteChanged
)

func (o VoteOutcome) String() string {
	switch o {
	case VoteCreated:
		return "created"
	case VoteRemoved:
		return "removed"
	case VoteChanged:
		return "changed"
	}
	return "unknown"
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
