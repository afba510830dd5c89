// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

/*
Package filter implements the gallery's faceted photo filter.

Components:

  - State: the active category and subcategory selections, mutated by UI controls.
  - Matches / Apply: the pure predicate deciding photo membership.
  - Aggregator: counts and tri-state flags rendered next to each facet control.

Matching is a union across selected categories. Subcategory selections under
the same category intersect, and a selected category without subcategory
selections is unconstrained.
*/
package filter

import (
	"cmp"
	"maps"
	"slices"
)

// Catalog lists the subcategories the taxonomy has under a category.
type Catalog interface {
	SubcategoryNames(category string) []string
}

// State holds the active selections.
//
// Removing a category cascades to its facet keys. The reverse is not
// enforced: a facet key may outlive, or precede, its category.
//
// State is not safe for concurrent use.
type State struct {
	categories map[string]struct{}
	facets     map[FacetKey]struct{}
}

func NewState() *State {
	return &State{
		categories: make(map[string]struct{}),
		facets:     make(map[FacetKey]struct{}),
	}
}

// # Controls

// ToggleCategory deselects an active category together with all its facet
// keys, or selects an inactive one. Names unknown to the taxonomy are inert.
func (s *State) ToggleCategory(name string) {
	if _, active := s.categories[name]; active {
		delete(s.categories, name)
		s.DeselectAllSubcategoryFacets(name)
		return
	}
	s.categories[name] = struct{}{}
}

// ToggleSubcategoryFacet flips a single facet key. The category does not
// have to be active.
func (s *State) ToggleSubcategoryFacet(category, subcategory string) {
	key := FacetKey{Category: category, Subcategory: subcategory}
	if _, ok := s.facets[key]; ok {
		delete(s.facets, key)
		return
	}
	s.facets[key] = struct{}{}
}

// SelectAllSubcategoryFacets adds a key for every subcategory catalog lists
// under category.
func (s *State) SelectAllSubcategoryFacets(catalog Catalog, category string) {
	for _, sub := range catalog.SubcategoryNames(category) {
		s.facets[FacetKey{Category: category, Subcategory: sub}] = struct{}{}
	}
}

// DeselectAllSubcategoryFacets removes every key scoped to category.
func (s *State) DeselectAllSubcategoryFacets(category string) {
	maps.DeleteFunc(s.facets, func(key FacetKey, _ struct{}) bool {
		return key.Category == category
	})
}

// ClearAll drops every selection.
func (s *State) ClearAll() {
	clear(s.categories)
	clear(s.facets)
}

// # Queries

func (s *State) IsCategoryActive(name string) bool {
	_, ok := s.categories[name]
	return ok
}

func (s *State) HasFacet(category, subcategory string) bool {
	_, ok := s.facets[FacetKey{Category: category, Subcategory: subcategory}]
	return ok
}

// HasAnyFacet reports whether at least one key is scoped to category.
func (s *State) HasAnyFacet(category string) bool {
	for key := range s.facets {
		if key.Category == category {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no category filter is active. Facet keys alone
// never filter anything.
func (s *State) IsEmpty() bool {
	return len(s.categories) == 0
}

// ActiveCategories returns the selected category names, sorted.
func (s *State) ActiveCategories() []string {
	names := slices.AppendSeq(make([]string, 0, len(s.categories)), maps.Keys(s.categories))
	slices.Sort(names)
	return names
}

// ActiveFacets returns the selected facet keys, sorted by category then
// subcategory.
func (s *State) ActiveFacets() []FacetKey {
	keys := slices.AppendSeq(make([]FacetKey, 0, len(s.facets)), maps.Keys(s.facets))
	slices.SortFunc(keys, func(a, b FacetKey) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Subcategory, b.Subcategory))
	})
	return keys
}

// Snapshot freezes the current selections for the match engine.
func (s *State) Snapshot() Snapshot {
	snapshot := Snapshot{
		categories: maps.Clone(s.categories),
		required:   make(map[string]map[string]struct{}),
	}

	for key := range s.facets {
		subs, ok := snapshot.required[key.Category]
		if !ok {
			subs = make(map[string]struct{})
			snapshot.required[key.Category] = subs
		}
		subs[key.Subcategory] = struct{}{}
	}

	return snapshot
}
