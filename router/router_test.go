// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/trivia/models"
	"github.com/danielhkuo/trivia/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCategories(t, db)
	mux := NewRouter(db)

	// Generate at least one observation
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/categories", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "trivia_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="list_categories"`)
}

func TestRootIsNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertError(t, w, http.StatusNotFound, "resource not found")
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	// 404 and 422 are valid handler answers on an empty database
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/metrics"},
		{"GET", "/categories"},
		{"GET", "/categories/1/questions"},
		{"GET", "/questions"},
		{"POST", "/questions"},
		{"DELETE", "/questions/1"},
		{"POST", "/searched_questions"},
		{"POST", "/quizzes"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code, "expected route handler to exist")
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/categories"},
		{"PUT", "/questions"},
		{"POST", "/questions/1"},
		{"GET", "/searched_questions"},
		{"GET", "/quizzes"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertError(t, w, http.StatusMethodNotAllowed, "method not allowed")
		})
	}
}

func TestCORSHeaders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/questions/3", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("error responses carry CORS headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/does-not-exist", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

// TestTriviaWorkflow drives the API the way the web client does:
// list, add, search, play a quiz, delete.
func TestTriviaWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCategories(t, db)
	testutil.CreateTestQuestions(t, db, 3, 11)
	mux := NewRouter(db)

	serve := func(method, path string, body any) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
		return w
	}

	// Step 1: categories
	w := serve("GET", "/categories", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var cats models.CategoriesResponse
	testutil.AssertJSON(t, w, &cats)
	assert.Equal(t, "Geography", cats.Categories[3])

	// Step 2: add a question
	w = serve("POST", "/questions", map[string]any{
		"question":   "Who is Titi?",
		"answer":     "Your cat",
		"difficulty": 1,
		"category":   1,
	})
	testutil.AssertStatus(t, w, http.StatusOK)
	var created models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &created)
	require.True(t, created.Created)
	newID := created.CreatedQuestionID

	// Step 3: it is listed; category 1 sorts first
	w = serve("GET", "/questions", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var list models.QuestionsResponse
	testutil.AssertJSON(t, w, &list)
	assert.Equal(t, 12, list.TotalQuestions)
	require.NotEmpty(t, list.Questions)
	assert.Equal(t, newID, list.Questions[0].ID)

	// Step 4: page 3 is past the end
	w = serve("GET", "/questions?page=3", nil)
	testutil.AssertError(t, w, http.StatusNotFound, "resource not found")

	// Step 5: search finds it case-insensitively
	w = serve("POST", "/searched_questions", map[string]string{"searchTerm": "titi"})
	testutil.AssertStatus(t, w, http.StatusOK)
	var search models.SearchQuestionsResponse
	testutil.AssertJSON(t, w, &search)
	require.Len(t, search.Questions, 1)
	assert.Equal(t, newID, search.Questions[0].ID)

	// Step 6: the quiz for category 1 returns it, then runs dry
	w = serve("POST", "/quizzes", map[string]any{
		"quiz_category":      map[string]any{"type": "Science", "id": "1"},
		"previous_questions": []int{},
	})
	testutil.AssertStatus(t, w, http.StatusOK)
	var quiz models.QuizResponse
	testutil.AssertJSON(t, w, &quiz)
	require.NotNil(t, quiz.Question)
	assert.Equal(t, newID, quiz.Question.ID)

	w = serve("POST", "/quizzes", map[string]any{
		"quiz_category":      map[string]any{"type": "Science", "id": 1},
		"previous_questions": quiz.PreviousQuestions,
	})
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.True(t, strings.Contains(w.Body.String(), `"question":null`))

	// Step 7: delete it twice
	path := "/questions/" + strconv.Itoa(newID)
	w = serve("DELETE", path, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var deleted models.DeleteQuestionResponse
	testutil.AssertJSON(t, w, &deleted)
	assert.Equal(t, newID, deleted.QuestionDeletedID)

	w = serve("DELETE", path, nil)
	testutil.AssertError(t, w, http.StatusUnprocessableEntity, "unprocessable")

	// Step 8: category 1 is empty again
	w = serve("GET", "/categories/1/questions", nil)
	testutil.AssertError(t, w, http.StatusNotFound, "resource not found")

	// Non-integer ids do not match any question
	w = serve("DELETE", "/questions/abc", nil)
	testutil.AssertError(t, w, http.StatusNotFound, "resource not found")
}
