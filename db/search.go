// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql/driver"
	"strings"

	"gorm.io/gorm"
	"modernc.org/sqlite"

	"github.com/danielhkuo/trivia/cliparse"
)

// UnicodeLower is registered on every SQLite connection. It lower-cases text
// with strings.ToLower; the built-in LOWER only folds ASCII.
const UnicodeLower = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(UnicodeLower, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// ContainsCondition returns a WHERE condition matching column against one
// LIKE pattern argument, case-insensitively across Unicode. The pattern must
// be lower-cased and use '\' as its escape character.
func ContainsCondition(gdb *gorm.DB, column string) string {
	if gdb.Dialector.Name() == cliparse.DatabasePostgres {
		return column + ` ILIKE ? ESCAPE '\'`
	}
	return UnicodeLower + "(" + column + `) LIKE ? ESCAPE '\'`
}
