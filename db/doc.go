// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and manages the schema.

# Connecting

Open picks a driver from cfg.DatabaseType and returns a *gorm.DB:

	gdb, err := db.Open(cfg)

  - postgres: database/sql with github.com/lib/pq, wrapped by gorm.io/driver/postgres
  - sqlite: database/sql with modernc.org/sqlite, wrapped by gorm.io/driver/sqlite

In-memory SQLite DSNs (":memory:", "file::memory:", "mode=memory") are
pinned to a single connection so every query sees the same database.

# Schema Creation

CreateSchema runs GORM auto-migration for both tables:

	if err := db.CreateSchema(gdb); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times.

# Tables

  - categories: id, type
  - questions: id, question, answer, category, difficulty

questions.category is indexed but is not a foreign key.

# Seeding

Seed inserts the six default categories (Science, Art, Geography, History,
Entertainment, Sports) when the categories table is empty. main calls it
when the -seed flag is set.
*/
package db
