// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

// Package pagination provides the page bookkeeping shared by the gallery
// pager and the HTTP list endpoints.
//
// # Overview
//
// Page size is a deployment-time constant (see config), so requests only
// ever carry a page number. [State] is the derived metadata delivered to the
// presentation layer; it is always computed through [NewState] so that its
// invariants hold.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPageSize is the number of photos per page in discrete pagination.
	DefaultPageSize = 45
	// DefaultChunkSize is the number of photos fetched per infinite-scroll chunk.
	DefaultChunkSize = 3
	// FirstPage is the starting page (1-indexed).
	FirstPage = 1
)

// State is the pagination metadata for one materialized page.
//
// # Invariants
//
//   - TotalPages = max(1, ceil(TotalPhotos / pageSize))
//   - HasNextPage = CurrentPage < TotalPages
//   - HasPrevPage = CurrentPage > 1
type State struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalPhotos int  `json:"total_photos"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// NewState derives a [State] for currentPage from the total photo count.
//
// A non-positive pageSize falls back to [DefaultPageSize]; a negative total is
// treated as zero and currentPage is clamped into [1, TotalPages].
func NewState(currentPage, totalPhotos, pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if totalPhotos < 0 {
		totalPhotos = 0
	}

	totalPages := TotalPages(totalPhotos, pageSize)
	if currentPage < FirstPage {
		currentPage = FirstPage
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	return State{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalPhotos: totalPhotos,
		HasNextPage: currentPage < totalPages,
		HasPrevPage: currentPage > FirstPage,
	}
}

// TotalPages returns max(1, ceil(total / pageSize)).
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Offset returns the fetch offset of a 1-indexed page.
func Offset(page, pageSize int) int {
	if page <= FirstPage {
		return 0
	}
	return (page - 1) * pageSize
}

// PageFromRequest parses the "page" query parameter.
//
// # Clamping
//
// Missing, malformed or non-positive values fall back to [FirstPage]. The upper
// bound is not known here; the pager treats out-of-range pages as no-ops.
func PageFromRequest(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return FirstPage
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < FirstPage {
		return FirstPage
	}

	return page
}
