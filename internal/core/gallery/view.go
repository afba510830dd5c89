// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package gallery

import (
	"github.com/thinh77/trinhminhson-sub000/internal/core/filter"
	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
	"github.com/thinh77/trinhminhson-sub000/internal/core/window"
	"github.com/thinh77/trinhminhson-sub000/pkg/pagination"
	"github.com/thinh77/trinhminhson-sub000/pkg/slice"
)

// View is everything the presentation layer renders for one session.
type View struct {
	Mode       string            `json:"mode"`
	Photos     []photo.Photo     `json:"photos"`
	Pagination *pagination.State `json:"pagination,omitempty"`
	Feed       *window.LoadState `json:"feed,omitempty"`
	Filter     FilterView        `json:"filter"`
	Facets     []filter.FacetRow `json:"facets"`
}

// FilterView echoes the active selections, facets in their query form.
type FilterView struct {
	Categories []string `json:"categories"`
	Facets     []string `json:"facets"`
}

/*
View renders the current state.

Photos is the materialized window filtered by the active selections, in
window order. Facet counts are taken over the unfiltered window.
*/
func (s *Session) View() View {
	view := View{Mode: s.mode.String()}

	var materialized []photo.Photo
	if s.mode == ModeInfinite {
		materialized = s.feed.Photos()
		state := s.feed.State()
		view.Feed = &state
	} else {
		materialized = s.pager.Photos()
		state := s.pager.State()
		view.Pagination = &state
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view.Photos = filter.Apply(materialized, s.state.Snapshot())
	if view.Photos == nil {
		view.Photos = []photo.Photo{}
	}

	view.Filter = FilterView{
		Categories: s.state.ActiveCategories(),
		Facets:     slice.Map(s.state.ActiveFacets(), filter.FacetKey.String),
	}
	view.Facets = filter.NewAggregator(s.taxonomy, materialized).Facets(s.state)

	return view
}
