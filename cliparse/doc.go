// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags, environment variables
and an optional .env file.

# Precedence

	CLI flags > environment > .env file > defaults

The .env file never overrides variables already set in the environment.

# Settings

Required:

  - JWT_SECRET (--jwt-secret): token signing secret

Optional:

  - PORT (-p): server port (default: 5000)
  - DATABASE_URL (-d): sqlite file path or postgres URL (default: qna.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - APP_ENV (--production): "production" serves the bundled frontend
  - STATIC_DIR (--static): frontend build directory (default: qna_frontend/build)
  - ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD: default admin account

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
*/
package cliparse
