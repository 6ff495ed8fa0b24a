// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Trivia API server.

The Trivia API backs a browser trivia game: it lists and paginates
questions, filters them by category, searches question text, lets players
add and delete questions, and deals random quiz questions that have not
been asked yet in the current round.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=trivia.db go run .

Or with flags:

	go run . -p 5000 -t postgres -d "postgres://..." -seed

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_CATEGORIES (-seed): Insert the six default categories into an empty table
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (categories, questions, quizzes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: GORM entities and request/response types
  - apperr: Error kinds and their HTTP status codes
  - db: Connection, migration and seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
