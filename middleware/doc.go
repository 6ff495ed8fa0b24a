// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /categories", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The request ID comes from X-Request-ID or a fresh
UUID, is echoed in the response header, and is available to handlers via
RequestID(ctx).

# Metrics

Metrics records trivia_http_requests_total and
trivia_http_request_duration_seconds per route name. The collectors are
registered with the default Prometheus registry.

# CORS Middleware

Open to every origin:

	handler := middleware.CORS(mux)

Allows methods GET, PUT, POST, DELETE, OPTIONS. Preflight requests are
answered directly with 200.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound)

ErrorResponse always writes {success: false, error: <code>, message: <text>}
where the message is fixed per status code (see StatusMessage).

JSONErrors rewrites the plain-text 404/405 replies of http.ServeMux into
the same envelope.

Parse JSON request bodies:

	var req models.SearchQuestionsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		...
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
