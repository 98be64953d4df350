// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Ask API server.

Quickly Ask is a question-and-answer service: members post questions in
categories, answer them, and up- or down-vote answers. Owners and admins can
edit or delete questions.

# Starting the Server

A signing secret is required; everything else has a default:

	JWT_SECRET=change-me go run .

Or with flags:

	go run . -p 5000 -d data/qna.db -jwt-secret change-me

# Configuration

Settings come from a .env file, the environment, then flags (highest priority):

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): SQLite file path or PostgreSQL URL (default: qna.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - JWT_SECRET (-jwt-secret): Token signing secret (required)
  - APP_ENV (-production): "production" serves the frontend build
  - STATIC_DIR (-static): Frontend build directory (default: qna_frontend/build)
  - ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD: optional admin created at startup

# Database

The schema is created on startup (CREATE TABLE IF NOT EXISTS) with tables
users, sessions, categories, questions, answers and votes. A "General"
category is seeded into an empty categories table.

# API

	POST   /api/register
	POST   /api/login
	GET    /api/questions
	GET    /api/categories
	GET    /api/questions/{id}
	POST   /api/questions              (bearer)
	PUT    /api/questions/{id}         (bearer, owner or admin)
	DELETE /api/questions/{id}         (bearer, owner or admin)
	POST   /api/questions/{id}/answers (bearer)
	POST   /api/answers/{id}/vote      (bearer)
	GET    /api/admin                  (bearer, admin)
	GET    /health

# Graceful Shutdown

SIGINT or SIGTERM stops accepting connections and drains in-flight requests
for up to five seconds.
*/
package main
