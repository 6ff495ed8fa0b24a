// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/danielhkuo/trivia/cliparse"
	"github.com/danielhkuo/trivia/db"
	"github.com/danielhkuo/trivia/models"
)

// GetTestConfig returns a configuration backed by a private in-memory SQLite database
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  "file::memory:",
		DatabaseType: cliparse.DatabaseSQLite,
	}
}

// SetupTestDB creates a fresh in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(GetTestConfig())
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { db.Close(gdb) })

	require.NoError(t, db.CreateSchema(gdb), "Failed to create schema")
	return gdb
}

// SeedCategories inserts the default categories
func SeedCategories(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Seed(gdb), "Failed to seed categories")
}

// CreateTestQuestion inserts a question and returns it with its assigned ID
func CreateTestQuestion(t *testing.T, gdb *gorm.DB, text, answer string, category, difficulty int) models.Question {
	t.Helper()

	q := models.Question{Question: text, Answer: answer, Category: category, Difficulty: difficulty}
	require.NoError(t, gdb.Create(&q).Error, "Failed to create test question")
	return q
}

// CreateTestQuestions inserts n numbered questions in a category and returns their IDs in order
func CreateTestQuestions(t *testing.T, gdb *gorm.DB, category, n int) []int {
	t.Helper()

	ids := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		q := CreateTestQuestion(t, gdb, fmt.Sprintf("Question %d in category %d?", i, category), "Answer", category, 1+i%5)
		ids = append(ids, q.ID)
	}
	return ids
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var reader *bytes.Reader
		if raw, ok := body.(string); ok {
			reader = bytes.NewReader([]byte(raw))
		} else {
			jsonBody, _ := json.Marshal(body)
			reader = bytes.NewReader(jsonBody)
		}
		req = httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v), "Failed to decode JSON response")
}

// AssertError checks for the JSON error envelope with the given status
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)

	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Success || resp.Error != status || resp.Message != message {
		t.Errorf("Expected error envelope {false %d %q}, got %+v", status, message, resp)
	}
}
