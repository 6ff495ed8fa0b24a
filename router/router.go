// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/danielhkuo/trivia/handlers"
	"github.com/danielhkuo/trivia/middleware"
)

func NewRouter(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(db)
	questionHandler := handlers.NewQuestionHandler(db)
	quizHandler := handlers.NewQuizHandler(db)

	handle := func(pattern, route string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.Metrics(route, middleware.WithLogging(h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Categories
	handle("GET /categories", "list_categories", categoryHandler.ListCategories)
	handle("GET /categories/{id}/questions", "list_category_questions", categoryHandler.ListCategoryQuestions)

	// Questions
	handle("GET /questions", "list_questions", questionHandler.ListQuestions)
	handle("POST /questions", "create_question", questionHandler.CreateQuestion)
	handle("DELETE /questions/{id}", "delete_question", questionHandler.DeleteQuestion)
	handle("POST /searched_questions", "search_questions", questionHandler.SearchQuestions)

	// Quiz
	handle("POST /quizzes", "next_quiz_question", quizHandler.NextQuestion)

	return middleware.CORS(middleware.JSONErrors(mux))
}
