// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package filter

import (
	"strings"

	"github.com/thinh77/trinhminhson-sub000/internal/platform/apperr"
)

// FacetKey identifies one subcategory selection scoped to a category.
//
// It is a comparable struct, so names containing ':' cannot collide. Joins
// against photos stay name-based.
type FacetKey struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// String renders the query-string form "category:subcategory".
func (k FacetKey) String() string {
	return k.Category + ":" + k.Subcategory
}

// ParseFacetKey reads the query-string form, splitting at the first ':'.
// Subcategory names may therefore contain ':' but category names may not.
func ParseFacetKey(raw string) (FacetKey, error) {
	category, subcategory, ok := strings.Cut(raw, ":")
	category = strings.TrimSpace(category)
	subcategory = strings.TrimSpace(subcategory)

	if !ok || category == "" || subcategory == "" {
		return FacetKey{}, apperr.ValidationError("Invalid facet",
			apperr.FieldError{Field: "facet", Message: "Expected category:subcategory, got " + raw},
		)
	}
	return FacetKey{Category: category, Subcategory: subcategory}, nil
}
