// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

GORM entities, one table each:

  - Question: id, question, answer, category, difficulty (table "questions")
  - Category: id, type (table "categories")

Question.Category holds a category id but is not a foreign key; questions
pointing at missing categories are allowed.

A Question serializes directly as the client expects:

	{"id": 5, "question": "...", "answer": "...", "category": 4, "difficulty": 2}

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: question, answer, difficulty, category
  - SearchQuestionsRequest: searchTerm
  - QuizRequest: quiz_category {id, type}, previous_questions

Request fields are pointers so that a missing field can be told apart from
a zero value. The validate tags are checked by the handlers.

CategoryID decodes both 3 and "3".

# Response Types

Types for JSON responses:

  - CategoriesResponse: categories (id → type)
  - QuestionsResponse: questions, total_questions, categories, current_category
  - SearchQuestionsResponse: questions, total_questions, current_category
  - CategoryQuestionsResponse: questions, total_questions, current_category (int)
  - CreateQuestionResponse: created, created_question_id
  - DeleteQuestionResponse: question_deleted_id, deleted
  - QuizResponse: question (or null), previousQuestions
  - ErrorResponse: success, error (status code), message
*/
package models
