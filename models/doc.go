// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain and error types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, email, password
  - LoginRequest: email, password
  - QuestionRequest: title, category_id, description
  - AnswerRequest: content
  - VoteRequest: vote (1 or -1)

# Response Types

  - LoginResponse: token
  - CreateQuestionResponse: id
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

  - User: account record (password hash never serialized)
  - AuthUser: identity embedded in a bearer token
  - Session: issued token row
  - Category, Question, Answer, Vote
  - QuestionSummary: question + username + answers_count
  - QuestionDetail: question + answers with upvote/downvote totals
  - VoteOutcome: created, removed or changed

# Errors

	ErrUnauthorized // 401
	ErrForbidden    // 403
	ErrNotFound     // 404
	ErrInvalidInput // 400

Anything else maps to 500.

# Constants

Roles:

	RoleMember = "member"
	RoleAdmin  = "admin"

Vote values:

	VoteUp   = 1
	VoteDown = -1
*/
package models
