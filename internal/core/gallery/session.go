// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

/*
Package gallery ties the filter engine to a windowing strategy for one
render, and exposes the result over HTTP.

A Session owns one taxonomy snapshot, one filter state and either a Pager or
a Feed. Filter state lives only as long as the Session.
*/
package gallery

import (
	"context"
	"sync"

	"github.com/thinh77/trinhminhson-sub000/internal/core/filter"
	"github.com/thinh77/trinhminhson-sub000/internal/core/taxonomy"
	"github.com/thinh77/trinhminhson-sub000/internal/core/window"
)

// Mode selects the windowing strategy.
type Mode int

const (
	ModePaged Mode = iota
	ModeInfinite
)

func (m Mode) String() string {
	if m == ModeInfinite {
		return "infinite"
	}
	return "paged"
}

type Session struct {
	mode  Mode
	pager *window.Pager
	feed  *window.Feed

	mu       sync.Mutex
	taxonomy *taxonomy.Taxonomy
	state    *filter.State
}

// NewSession creates a session with no selections and nothing loaded.
// opts configure the underlying Pager or Feed.
func NewSession(fetcher window.Fetcher, mode Mode, opts ...window.Option) *Session {
	session := &Session{mode: mode, state: filter.NewState()}
	if mode == ModeInfinite {
		session.feed = window.NewFeed(fetcher, opts...)
	} else {
		session.pager = window.NewPager(fetcher, opts...)
	}
	return session
}

func (s *Session) Mode() Mode { return s.mode }

// SetTaxonomy installs the catalog snapshot facet rows are built from.
func (s *Session) SetTaxonomy(tax *taxonomy.Taxonomy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taxonomy = tax
}

// Start performs the first load. position is a page number in paged mode
// and an offset in infinite mode.
func (s *Session) Start(ctx context.Context, position int) error {
	if s.mode == ModePaged {
		return s.pager.Open(ctx, position)
	}

	s.feed.StartAt(position)
	if s.filtering() {
		return s.feed.LoadAll(ctx)
	}
	return s.feed.LoadMore(ctx)
}

// # Filter controls

// ToggleCategory flips a category. In infinite mode an active category
// filter needs the whole collection, so the feed is fully loaded. If a chunk
// is loading at that moment, the full load follows it on the chunk's call.
func (s *Session) ToggleCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	s.state.ToggleCategory(name)
	s.mu.Unlock()

	if s.mode == ModeInfinite && s.filtering() {
		return s.feed.LoadAll(ctx)
	}
	return nil
}

func (s *Session) ToggleSubcategoryFacet(category, subcategory string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ToggleSubcategoryFacet(category, subcategory)
}

func (s *Session) SelectAllSubcategoryFacets(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectAllSubcategoryFacets(s.taxonomy, category)
}

func (s *Session) DeselectAllSubcategoryFacets(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DeselectAllSubcategoryFacets(category)
}

func (s *Session) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ClearAll()
}

func (s *Session) IsCategoryActive(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsCategoryActive(name)
}

func (s *Session) HasFacet(key filter.FacetKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HasFacet(key.Category, key.Subcategory)
}

func (s *Session) filtering() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.state.IsEmpty()
}

// # Window controls
//
// Controls of the other strategy are no-ops.

func (s *Session) GoToPage(ctx context.Context, page int) error {
	if s.pager == nil {
		return nil
	}
	return s.pager.GoToPage(ctx, page)
}

func (s *Session) NextPage(ctx context.Context) error {
	if s.pager == nil {
		return nil
	}
	return s.pager.NextPage(ctx)
}

func (s *Session) PrevPage(ctx context.Context) error {
	if s.pager == nil {
		return nil
	}
	return s.pager.PrevPage(ctx)
}

func (s *Session) LoadMore(ctx context.Context) error {
	if s.feed == nil {
		return nil
	}
	return s.feed.LoadMore(ctx)
}

func (s *Session) LoadAll(ctx context.Context) error {
	if s.feed == nil {
		return nil
	}
	return s.feed.LoadAll(ctx)
}

func (s *Session) Refresh(ctx context.Context) error {
	if s.mode == ModeInfinite {
		return s.feed.Refresh(ctx)
	}
	return s.pager.Refresh(ctx)
}

// LastError returns the most recent load failure of the active strategy.
func (s *Session) LastError() error {
	if s.mode == ModeInfinite {
		return s.feed.LastError()
	}
	return s.pager.LastError()
}
