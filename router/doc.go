// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Ask API.

NewRouter wires the store, services and handlers and returns a configured
http.ServeMux:

	mux := router.NewRouter(db, cfg)

Every /api route is wrapped with middleware.WithLogging. Write routes also go
through middleware.RequireAuth, and GET /api/admin through RequireAdmin.

Unknown GET /api/ paths return a JSON 404. GET / serves the frontend build
in production mode and an API banner otherwise.
*/
package router
