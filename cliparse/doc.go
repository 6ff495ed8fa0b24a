// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Database connection string or SQLite file (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - SeedCategories: Insert default categories into an empty table
  - LogLevel: slog level (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-seed       Seed default categories
	-log-level  Log level

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SEED_CATEGORIES → -seed
	LOG_LEVEL       → -log-level

CLI flags take precedence over environment variables. main loads a .env
file (if present) before calling ParseFlags, so its values act as
environment variables too.

# Validation

ParseFlags returns an error if:

  - no database URL is given
  - PORT or SEED_CATEGORIES cannot be parsed
  - the database type is not sqlite or postgres
  - the log level is unknown
*/
package cliparse
