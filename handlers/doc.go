// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Ask API.

# Handler Types

  - AuthHandler: registration, login and the admin panel
  - QuestionHandler: question listing, detail, create, update, delete
  - AnswerHandler: answer submission and voting
  - StaticHandler: the production frontend with index.html fallback

Handlers are created from services:

	questions := handlers.NewQuestionHandler(qna.NewService(st))

Authenticated handlers read the caller from middleware.UserFromContext, so they
must be mounted behind middleware.RequireAuth.

# Status Codes

Service errors map through one helper:

	models.ErrInvalidInput -> 400
	models.ErrUnauthorized -> 401
	models.ErrForbidden    -> 403
	models.ErrNotFound     -> 404
	anything else          -> 500 (logged, not echoed)

Voting answers 201 when a vote is created and 200 when it is removed or flipped.
*/
package handlers
