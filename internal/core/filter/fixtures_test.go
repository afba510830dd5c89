// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
	"github.com/thinh77/trinhminhson-sub000/internal/core/taxonomy"
)

// gallery is the five-photo Travel/Nature collection used across tests.
func gallery() []photo.Photo {
	return []photo.Photo{
		{ID: "1", Categories: []string{"Travel"}, Subcategories: []string{"Beach", "Mountain"}},
		{ID: "2", Categories: []string{"Travel"}, Subcategories: []string{"Beach"}},
		{ID: "3", Categories: []string{"Travel"}, Subcategories: []string{"Mountain"}},
		{ID: "4", Categories: []string{"Travel", "Nature"}, Subcategories: []string{"Beach", "Forest"}},
		{ID: "5", Categories: []string{"Nature"}, Subcategories: []string{"Forest"}},
	}
}

func catalog(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.New([]taxonomy.Category{
		{ID: 1, Name: "Travel", Subcategories: []taxonomy.Subcategory{
			{ID: 10, CategoryID: 1, Name: "Beach"},
			{ID: 11, CategoryID: 1, Name: "Mountain"},
		}},
		{ID: 2, Name: "Nature", Subcategories: []taxonomy.Subcategory{
			{ID: 20, CategoryID: 2, Name: "Forest"},
		}},
		{ID: 3, Name: "Street"},
	})
	require.NoError(t, err)
	return tax
}

func ids(photos []photo.Photo) []string {
	out := make([]string, len(photos))
	for i, p := range photos {
		out[i] = p.ID
	}
	return out
}
