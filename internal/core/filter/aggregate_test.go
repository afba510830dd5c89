// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinh77/trinhminhson-sub000/internal/core/filter"
)

func TestAggregator_Counts(t *testing.T) {
	agg := filter.NewAggregator(catalog(t), gallery())

	tests := []struct {
		category    string
		subcategory string
		want        int
	}{
		{"Travel", "Beach", 3},
		{"Travel", "Mountain", 2},
		{"Travel", "Forest", 1},
		{"Nature", "Forest", 2},
		{"Nature", "Beach", 1},
		{"Street", "Night", 0},
	}

	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.subcategory, func(t *testing.T) {
			assert.Equal(t, tt.want, agg.SubcategoryPhotoCount(tt.category, tt.subcategory))
		})
	}

	assert.Equal(t, 4, agg.CategoryPhotoCount("Travel"))
	assert.Equal(t, 2, agg.CategoryPhotoCount("Nature"))
}

func TestAggregator_TriState(t *testing.T) {
	agg := filter.NewAggregator(catalog(t), gallery())
	state := filter.NewState()

	assert.False(t, agg.SomeSubcategoriesSelected(state, "Travel"))
	assert.False(t, agg.AllSubcategoriesSelected(state, "Travel"))

	state.ToggleSubcategoryFacet("Travel", "Beach")
	assert.True(t, agg.SomeSubcategoriesSelected(state, "Travel"))
	assert.False(t, agg.AllSubcategoriesSelected(state, "Travel"))

	state.ToggleSubcategoryFacet("Travel", "Mountain")
	assert.True(t, agg.AllSubcategoriesSelected(state, "Travel"))

	assert.True(t, agg.AllSubcategoriesSelected(filter.NewState(), "Street"), "nothing to select is all selected")
}

func TestAggregator_IgnoresFilterState(t *testing.T) {
	state := filter.NewState()
	state.ToggleCategory("Nature")
	state.ToggleSubcategoryFacet("Nature", "Forest")

	agg := filter.NewAggregator(catalog(t), gallery())
	assert.Equal(t, 3, agg.SubcategoryPhotoCount("Travel", "Beach"))
}

func TestAggregator_Facets(t *testing.T) {
	state := filter.NewState()
	state.ToggleCategory("Travel")
	state.SelectAllSubcategoryFacets(catalog(t), "Travel")
	state.ToggleSubcategoryFacet("Street", "Night")

	rows := filter.NewAggregator(catalog(t), gallery()).Facets(state)
	require.Len(t, rows, 3)

	travel := rows[0]
	assert.Equal(t, "Travel", travel.Category)
	assert.Equal(t, "travel", travel.Slug)
	assert.True(t, travel.Active)
	assert.Equal(t, 4, travel.PhotoCount)
	assert.Equal(t, filter.SelectionAll, travel.Selection)
	require.Len(t, travel.Subcategories, 2)
	assert.Equal(t, filter.SubcategoryRow{Name: "Beach", Label: "Travel › Beach", PhotoCount: 3, Selected: true}, travel.Subcategories[0])

	nature := rows[1]
	assert.False(t, nature.Active)
	assert.Equal(t, filter.SelectionNone, nature.Selection)

	street := rows[2]
	assert.Equal(t, filter.SelectionSome, street.Selection)
	assert.Empty(t, street.Subcategories)
}

func TestAggregator_FacetsWithoutSubcategoriesShowNone(t *testing.T) {
	rows := filter.NewAggregator(catalog(t), gallery()).Facets(filter.NewState())
	require.Len(t, rows, 3)

	assert.Equal(t, "Street", rows[2].Category)
	assert.Equal(t, filter.SelectionNone, rows[2].Selection)
}
