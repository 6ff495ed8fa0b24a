// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math/rand/v2"
	"net/http"
	"slices"

	"gorm.io/gorm"

	"github.com/danielhkuo/trivia/apperr"
	"github.com/danielhkuo/trivia/middleware"
	"github.com/danielhkuo/trivia/models"
)

// AllCategories is the quiz category id the client sends for "ALL"
const AllCategories = 0

type QuizHandler struct {
	db *gorm.DB
	// pick returns a uniform index in [0, n)
	pick func(n int) int
}

func NewQuizHandler(db *gorm.DB) *QuizHandler {
	return &QuizHandler{db: db, pick: rand.IntN}
}

// NextQuestion handles POST /quizzes
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	categoryID := int(*req.QuizCategory.ID)

	query := h.db.WithContext(r.Context()).Order("id")
	if categoryID != AllCategories {
		query = query.Where("category = ?", categoryID)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		writeError(w, r, apperr.Internal(err, "failed to query quiz questions"))
		return
	}

	if len(questions) == 0 {
		writeError(w, r, apperr.NotFound("category %d has no questions", categoryID))
		return
	}

	// Never hand the caller's slice back
	previous := slices.Clone(req.PreviousQuestions)

	next := pickQuestion(questions, req.PreviousQuestions, h.pick)
	if next != nil {
		previous = append(previous, next.ID)
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuizResponse{
		Success:           true,
		Question:          next,
		PreviousQuestions: previous,
	})
}

// pickQuestion chooses a question whose id is not in asked.
// Returns nil once every question has been asked.
func pickQuestion(questions []models.Question, asked []int, pick func(n int) int) *models.Question {
	seen := make(map[int]struct{}, len(asked))
	for _, id := range asked {
		seen[id] = struct{}{}
	}

	remaining := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	if len(remaining) == 0 {
		return nil
	}

	chosen := remaining[pick(len(remaining))]
	return &chosen
}
