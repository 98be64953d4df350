// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/models"
)

// Authenticator resolves an Authorization header to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (models.AuthUser, error)
}

// RequireAuth rejects the request with 401 unless the bearer token authenticates,
// and stores the user in the request context for next.
func RequireAuth(a Authenticator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := a.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, models.ErrUnauthorized) {
				ErrorResponse(w, http.StatusUnauthorized, "Missing or invalid token")
				return
			}
			slog.Error("failed to authenticate request",
				"request_id", RequestID(r.Context()),
				"error", err,
			)
			ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		next(w, r.WithContext(WithUser(r.Context(), user)))
	}
}

// RequireAdmin must run inside RequireAuth.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			ErrorResponse(w, http.StatusUnauthorized, "Missing or invalid token")
			return
		}
		if !auth.IsAdmin(user) {
			ErrorResponse(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r)
	}
}

func WithUser(ctx context.Context, user models.AuthUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user stored by RequireAuth
func UserFromContext(ctx context.Context) (models.AuthUser, bool) {
	user, ok := ctx.Value(userKey).(models.AuthUser)
	return user, ok
}
