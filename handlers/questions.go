// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/danielhkuo/trivia/apperr"
	"github.com/danielhkuo/trivia/db"
	"github.com/danielhkuo/trivia/middleware"
	"github.com/danielhkuo/trivia/models"
)

type QuestionHandler struct {
	db *gorm.DB
}

func NewQuestionHandler(db *gorm.DB) *QuestionHandler {
	return &QuestionHandler{db: db}
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	db := h.db.WithContext(r.Context())

	// id breaks ties so pages are stable
	var questions []models.Question
	if err := db.Order("category").Order("id").Find(&questions).Error; err != nil {
		writeError(w, r, apperr.Internal(err, "failed to query questions"))
		return
	}

	page := Paginate(questions, pageFromRequest(r))
	if len(page) == 0 {
		writeError(w, r, apperr.NotFound("no questions on this page"))
		return
	}

	categories, err := loadCategoryMap(db)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(questions),
		Categories:      categories,
		CurrentCategory: "",
	})
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	question := models.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Difficulty: *req.Difficulty,
		Category:   *req.Category,
	}
	if err := h.db.WithContext(r.Context()).Create(&question).Error; err != nil {
		writeError(w, r, apperr.Internal(err, "failed to insert question"))
		return
	}

	slog.Info("question created", "question_id", question.ID, "category", question.Category)

	middleware.JSONResponse(w, http.StatusOK, models.CreateQuestionResponse{
		Success:           true,
		Created:           true,
		CreatedQuestionID: question.ID,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
// Deleting an id that does not exist is unprocessable rather than not found.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, apperr.NotFound("question id %q is not an integer", r.PathValue("id")))
		return
	}

	db := h.db.WithContext(r.Context())

	var question models.Question
	err = db.First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, r, apperr.Validation("question %d does not exist", questionID))
		return
	}
	if err != nil {
		writeError(w, r, apperr.Internal(err, "failed to query question"))
		return
	}

	result := db.Delete(&question)
	if result.Error != nil {
		writeError(w, r, apperr.Internal(result.Error, "failed to delete question"))
		return
	}
	if result.RowsAffected == 0 {
		// Removed by another request between the lookup and the delete
		writeError(w, r, apperr.Validation("question %d does not exist", questionID))
		return
	}

	slog.Info("question deleted", "question_id", questionID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteQuestionResponse{
		Success:           true,
		QuestionDeletedID: questionID,
		Deleted:           true,
	})
}

// SearchQuestions handles POST /searched_questions
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.SearchQuestionsRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	var questions []models.Question
	err := h.db.WithContext(r.Context()).
		Where(db.ContainsCondition(h.db, "question"), containsPattern(*req.SearchTerm)).
		Order("id").
		Find(&questions).Error
	if err != nil {
		writeError(w, r, apperr.Internal(err, "failed to search questions"))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SearchQuestionsResponse{
		Success:         true,
		Questions:       Paginate(questions, pageFromRequest(r)),
		TotalQuestions:  len(questions),
		CurrentCategory: "",
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching term as a literal substring
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
