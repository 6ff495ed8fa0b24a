// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the trivia API.

# Handler Types

Each handler is a struct holding the *gorm.DB:

  - CategoryHandler: category listing and per-category questions
  - QuestionHandler: list, create, delete, and search questions
  - QuizHandler: random next question for a quiz

	questionHandler := handlers.NewQuestionHandler(db)

# Endpoints

	GET    /categories                → ListCategories
	GET    /categories/{id}/questions → ListCategoryQuestions
	GET    /questions                 → ListQuestions
	POST   /questions                 → CreateQuestion
	DELETE /questions/{id}            → DeleteQuestion
	POST   /searched_questions        → SearchQuestions
	POST   /quizzes                   → NextQuestion

# Pagination

Listings are cut into pages of QuestionsPerPage (10) using ?page=N,
1-indexed, default 1. Paginate returns an empty slice past the end; the
list endpoints answer that with 404, search answers with an empty page.

# Errors

Handlers build apperr errors and hand them to writeError, which logs the
cause and writes the fixed JSON envelope:

	NotFound   → 404 (empty listing, unknown category)
	Validation → 422 (missing fields, deleting an unknown question)
	BadRequest → 400 (malformed JSON)
	Internal   → 500 (storage failures)

Request bodies are decoded by decodeRequest, which runs the validate tags
on the request types. An empty body counts as an empty object.

# Quiz

NextQuestion picks uniformly among the category's questions that are not
in previous_questions. Category id 0 means every category. When nothing is
left it returns question: null. previousQuestions in the response is always
a new slice.
*/
package handlers
