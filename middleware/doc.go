// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging logs each request's completion with slog:

	mux.HandleFunc("POST /api/vote", middleware.WithLogging(handler.Vote))

Logged fields: request_id, method, path, status, size, duration_ms. The
request ID comes from X-Request-ID when the client sends one and is a new
UUID otherwise; it is echoed in the response header.

# Metrics

WithMetrics observes request latency under the route's mux pattern:

	middleware.WithMetrics(m, "GET /api/results", handler.GetResults)

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid choice")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse always writes {"success": false, "error": message}.

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
