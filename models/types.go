package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// Domain types

type Question struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"not null" json:"question"`
	Answer     string `gorm:"not null" json:"answer"`
	Category   int    `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}

type Category struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryID accepts either a JSON number or a numeric string
type CategoryID int

func (c *CategoryID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return errors.New("category id must be an integer")
	}
	*c = CategoryID(n)
	return nil
}

// Request types

// Pointers distinguish an absent field from a zero value
type CreateQuestionRequest struct {
	Question   *string `json:"question" validate:"required"`
	Answer     *string `json:"answer" validate:"required"`
	Difficulty *int    `json:"difficulty" validate:"required"`
	Category   *int    `json:"category" validate:"required"`
}

type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required"`
}

type QuizCategory struct {
	ID   *CategoryID `json:"id" validate:"required"`
	Type string      `json:"type"`
}

type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int         `json:"previous_questions" validate:"required"`
}

// Response types

type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

type QuestionsResponse struct {
	Success         bool           `json:"success"`
	Questions       []Question     `json:"questions"`
	TotalQuestions  int            `json:"total_questions"`
	Categories      map[int]string `json:"categories"`
	CurrentCategory string         `json:"current_category"`
}

type SearchQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory string     `json:"current_category"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory int        `json:"current_category"`
}

type CreateQuestionResponse struct {
	Success           bool `json:"success"`
	Created           bool `json:"created"`
	CreatedQuestionID int  `json:"created_question_id"`
}

type DeleteQuestionResponse struct {
	Success           bool `json:"success"`
	QuestionDeletedID int  `json:"question_deleted_id"`
	Deleted           bool `json:"deleted"`
}

// Question is nil once every question in the category has been asked
type QuizResponse struct {
	Success           bool      `json:"success"`
	Question          *Question `json:"question"`
	PreviousQuestions []int     `json:"previousQuestions"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
