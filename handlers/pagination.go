// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
)

// QuestionsPerPage is the fixed page size for every paginated endpoint
const QuestionsPerPage = 10

// pageFromRequest reads ?page=N. Missing or non-integer values mean page 1.
func pageFromRequest(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns items[(page-1)*size : page*size], clamped to the slice.
// Pages below 1 or past the end are empty.
func Paginate[T any](items []T, page int) []T {
	// Compare page counts so huge page numbers cannot overflow start
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
