// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apperr defines the typed errors returned by request handlers.

# Kinds

Every handler failure is one of:

  - KindNotFound: an empty result where presence is expected
  - KindValidation: a required field is missing or refers to nothing
  - KindConflict: the request collides with existing state (reserved;
    no current handler produces it, but Status maps it to 409)
  - KindBadRequest: the request body could not be decoded
  - KindInternal: storage or other unexpected failures

Construct them with the matching helper:

	return apperr.NotFound("category %d has no questions", id)
	return apperr.Internal(err, "failed to query questions")

# Status Mapping

Status converts any error to an HTTP status code:

	NotFound   → 404
	Validation → 422
	Conflict   → 409
	BadRequest → 400
	Internal   → 500

Errors that do not wrap an *Error are treated as internal. The wrapped
cause is kept for logging only and never reaches the client.
*/
package apperr
