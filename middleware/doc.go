// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/questions", middleware.WithLogging(handler))

Every request gets an id (the incoming X-Request-ID, or a new UUID) that is
echoed in the response header and attached to both log lines. Completion logs
include the status code and duration_ms.

# Authentication

RequireAuth resolves the Authorization header through an Authenticator and puts
the user in the request context. RequireAdmin additionally demands the admin role:

	mux.HandleFunc("GET /api/admin",
		middleware.WithLogging(middleware.RequireAuth(authSvc, middleware.RequireAdmin(h.Admin))))

	user, ok := middleware.UserFromContext(r.Context())

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.QuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

GetClientIP honors X-Forwarded-For and X-Real-IP. It is logged with each request.
*/
package middleware
