// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/trivia/cliparse"
)

// Open connects to the configured database and wraps the connection in GORM.
// PostgreSQL goes through lib/pq, SQLite through the pure-Go modernc driver.
func Open(cfg cliparse.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		dialector = postgres.New(postgres.Config{Conn: conn})
	case cliparse.DatabaseSQLite:
		conn, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		// An in-memory database lives only as long as its connection
		if isMemoryDSN(cfg.DatabaseURL) {
			conn.SetMaxOpenConns(1)
			conn.SetMaxIdleConns(1)
		}
		dialector = sqlite.New(sqlite.Config{DriverName: "sqlite", Conn: conn})
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return gdb, nil
}

// Ping verifies the underlying connection
func Ping(gdb *gorm.DB) error {
	conn, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(gdb *gorm.DB) error {
	conn, err := gdb.DB()
	if err != nil {
		return err
	}
	return conn.Close()
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}
