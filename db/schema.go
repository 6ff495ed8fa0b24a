// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/danielhkuo/trivia/models"
)

// DefaultCategories are the categories the trivia client ships with
var DefaultCategories = []models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times.
func CreateSchema(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Seed inserts DefaultCategories when the categories table is empty.
// Existing rows are left alone.
func Seed(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		slog.Info("categories already present, skipping seed", "count", count)
		return nil
	}

	categories := make([]models.Category, len(DefaultCategories))
	copy(categories, DefaultCategories)
	if err := gdb.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	slog.Info("categories seeded", "count", len(categories))
	return nil
}
