// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the trivia API.

# Route Registration

NewRouter returns the complete handler, CORS and JSON error rewriting
included:

	handler := router.NewRouter(db)

# Endpoints

Operational:

	GET /health  - Liveness check ("OK")
	GET /metrics - Prometheus metrics

Categories:

	GET /categories                - id → type mapping
	GET /categories/{id}/questions - Questions in one category, paginated

Questions:

	GET    /questions          - All questions, paginated
	POST   /questions          - Create a question
	DELETE /questions/{id}     - Delete a question
	POST   /searched_questions - Substring search, paginated

Quiz:

	POST /quizzes - Next random question not yet asked

Every API route is wrapped with middleware.Metrics and
middleware.WithLogging. Unknown paths answer 404 and known paths with the
wrong method answer 405, both as the JSON error envelope.
*/
package router
