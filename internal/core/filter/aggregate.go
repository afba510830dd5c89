// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package filter

import (
	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
	"github.com/thinh77/trinhminhson-sub000/internal/core/taxonomy"
)

// Selection is the tri-state of a category's "select all" control.
type Selection string

const (
	SelectionNone Selection = "none"
	SelectionSome Selection = "some"
	SelectionAll  Selection = "all"
)

// Aggregator answers facet-control queries over the full, unfiltered photo
// collection. Nothing is cached; every call recomputes from its inputs.
type Aggregator struct {
	taxonomy *taxonomy.Taxonomy
	photos   []photo.Photo
}

func NewAggregator(tax *taxonomy.Taxonomy, photos []photo.Photo) Aggregator {
	return Aggregator{taxonomy: tax, photos: photos}
}

// SubcategoryPhotoCount counts photos tagged with category and carrying
// subcategory in their flat subcategory set.
func (a Aggregator) SubcategoryPhotoCount(category, subcategory string) int {
	count := 0
	for _, p := range a.photos {
		if p.InCategory(category) && p.HasSubcategory(subcategory) {
			count++
		}
	}
	return count
}

// CategoryPhotoCount counts photos tagged with category.
func (a Aggregator) CategoryPhotoCount(category string) int {
	count := 0
	for _, p := range a.photos {
		if p.InCategory(category) {
			count++
		}
	}
	return count
}

// AllSubcategoriesSelected reports whether every subcategory the taxonomy
// lists under category has an active facet key. It holds trivially for a
// category without subcategories.
func (a Aggregator) AllSubcategoriesSelected(state *State, category string) bool {
	for _, name := range a.taxonomy.SubcategoryNames(category) {
		if !state.HasFacet(category, name) {
			return false
		}
	}
	return true
}

// SomeSubcategoriesSelected reports whether any facet key is scoped to category.
func (a Aggregator) SomeSubcategoriesSelected(state *State, category string) bool {
	return state.HasAnyFacet(category)
}

// FacetRow is one category control with its subcategory rows.
type FacetRow struct {
	Category      string           `json:"category"`
	Slug          string           `json:"slug"`
	Active        bool             `json:"active"`
	PhotoCount    int              `json:"photo_count"`
	Selection     Selection        `json:"selection"`
	Subcategories []SubcategoryRow `json:"subcategories"`
}

// SubcategoryRow is one subcategory checkbox.
type SubcategoryRow struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	PhotoCount int    `json:"photo_count"`
	Selected   bool   `json:"selected"`
}

// Facets builds every facet control row in taxonomy order.
func (a Aggregator) Facets(state *State) []FacetRow {
	categories := a.taxonomy.Categories()
	rows := make([]FacetRow, 0, len(categories))

	for _, category := range categories {
		row := FacetRow{
			Category:      category.Name,
			Slug:          category.Slug,
			Active:        state.IsCategoryActive(category.Name),
			PhotoCount:    a.CategoryPhotoCount(category.Name),
			Selection:     a.selection(state, category.Name),
			Subcategories: make([]SubcategoryRow, 0, len(category.Subcategories)),
		}

		for _, sub := range category.Subcategories {
			row.Subcategories = append(row.Subcategories, SubcategoryRow{
				Name:       sub.Name,
				Label:      taxonomy.Label(category.Name, sub.Name),
				PhotoCount: a.SubcategoryPhotoCount(category.Name, sub.Name),
				Selected:   state.HasFacet(category.Name, sub.Name),
			})
		}

		rows = append(rows, row)
	}

	return rows
}

// selection never reports "all" for a category with nothing to select, so
// its control stays unchecked.
func (a Aggregator) selection(state *State, category string) Selection {
	listed := len(a.taxonomy.SubcategoryNames(category)) > 0
	switch {
	case listed && a.AllSubcategoriesSelected(state, category):
		return SelectionAll
	case a.SomeSubcategoriesSelected(state, category):
		return SelectionSome
	default:
		return SelectionNone
	}
}
