// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/trivia/cliparse"
	"github.com/danielhkuo/trivia/models"
)

func memoryConfig() cliparse.Config {
	return cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: "file::memory:"}
}

func TestOpen_SQLiteMemory(t *testing.T) {
	gdb, err := Open(memoryConfig())
	require.NoError(t, err)
	defer Close(gdb)

	require.NoError(t, Ping(gdb))
	require.NoError(t, CreateSchema(gdb))

	// Schema creation is idempotent
	require.NoError(t, CreateSchema(gdb))

	q := models.Question{Question: "What is H2O?", Answer: "Water", Category: 1, Difficulty: 1}
	require.NoError(t, gdb.Create(&q).Error)
	assert.NotZero(t, q.ID)
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open(cliparse.Config{DatabaseType: "oracle", DatabaseURL: "x"})
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	gdb, err := Open(memoryConfig())
	require.NoError(t, err)
	defer Close(gdb)
	require.NoError(t, CreateSchema(gdb))

	require.NoError(t, Seed(gdb))

	var categories []models.Category
	require.NoError(t, gdb.Order("id").Find(&categories).Error)
	require.Len(t, categories, len(DefaultCategories))
	assert.Equal(t, "Geography", categories[2].Type)

	// Seeding again must not duplicate rows
	require.NoError(t, Seed(gdb))
	var count int64
	require.NoError(t, gdb.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(DefaultCategories)), count)
}

func TestSeed_SkipsNonEmptyTable(t *testing.T) {
	gdb, err := Open(memoryConfig())
	require.NoError(t, err)
	defer Close(gdb)
	require.NoError(t, CreateSchema(gdb))

	require.NoError(t, gdb.Create(&models.Category{Type: "Music"}).Error)
	require.NoError(t, Seed(gdb))

	var count int64
	require.NoError(t, gdb.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIsMemoryDSN(t *testing.T) {
	assert.True(t, isMemoryDSN(":memory:"))
	assert.True(t, isMemoryDSN("file::memory:"))
	assert.True(t, isMemoryDSN("file:trivia?mode=memory&cache=shared"))
	assert.False(t, isMemoryDSN("file:trivia.db"))
	assert.False(t, isMemoryDSN("postgres://localhost/trivia"))
}

func TestUnicodeLower(t *testing.T) {
	gdb, err := Open(memoryConfig())
	require.NoError(t, err)
	defer Close(gdb)

	testCases := []struct {
		input    string
		expected string
	}{
		{"Title", "title"},
		{"École", "école"},
		{"ÜBER STRAßE", "über straße"},
		{"Москва", "москва"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			var lowered string
			require.NoError(t, gdb.Raw("SELECT "+UnicodeLower+"(?)", tc.input).Scan(&lowered).Error)
			assert.Equal(t, tc.expected, lowered)
		})
	}
}

func TestContainsCondition(t *testing.T) {
	gdb, err := Open(memoryConfig())
	require.NoError(t, err)
	defer Close(gdb)
	require.NoError(t, CreateSchema(gdb))

	assert.Equal(t, `unicode_lower(question) LIKE ? ESCAPE '\'`, ContainsCondition(gdb, "question"))

	for _, text := range []string{"Où se trouve l'École polytechnique?", "What is the capital of France?"} {
		require.NoError(t, gdb.Create(&models.Question{Question: text, Answer: "x", Category: 3, Difficulty: 1}).Error)
	}

	var matches []models.Question
	require.NoError(t, gdb.Where(ContainsCondition(gdb, "question"), "%école%").Find(&matches).Error)
	require.Len(t, matches, 1)
	assert.Contains(t, matches[0].Question, "École")
}
