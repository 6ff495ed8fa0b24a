// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/danielhkuo/trivia/apperr"
	"github.com/danielhkuo/trivia/middleware"
	"github.com/danielhkuo/trivia/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := loadCategoryMap(h.db.WithContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if len(categories) == 0 {
		writeError(w, r, apperr.NotFound("no categories"))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// ListCategoryQuestions handles GET /categories/{id}/questions
// An empty page, including a category with no questions, is a 404.
func (h *CategoryHandler) ListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, apperr.NotFound("category id %q is not an integer", r.PathValue("id")))
		return
	}

	var questions []models.Question
	err = h.db.WithContext(r.Context()).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		writeError(w, r, apperr.Internal(err, "failed to query questions by category"))
		return
	}

	page := Paginate(questions, pageFromRequest(r))
	if len(page) == 0 {
		writeError(w, r, apperr.NotFound("no questions on this page for category %d", categoryID))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CategoryQuestionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	})
}

// loadCategoryMap returns every category as id → type
func loadCategoryMap(db *gorm.DB) (map[int]string, error) {
	var categories []models.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		return nil, apperr.Internal(err, "failed to query categories")
	}

	byID := make(map[int]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Type
	}
	return byID, nil
}
