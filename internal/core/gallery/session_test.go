// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package gallery_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinh77/trinhminhson-sub000/internal/core/filter"
	"github.com/thinh77/trinhminhson-sub000/internal/core/gallery"
	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
	"github.com/thinh77/trinhminhson-sub000/internal/core/taxonomy"
	"github.com/thinh77/trinhminhson-sub000/internal/core/window"
	"github.com/thinh77/trinhminhson-sub000/pkg/pagination"
)

// # Fixtures

// stubFetcher serves the five-photo fixture. block makes the next fetch
// signal on started and wait until released.
type stubFetcher struct {
	mu      sync.Mutex
	photos  []photo.Photo
	err     error
	calls   int
	gate    chan struct{}
	started chan struct{}
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{photos: []photo.Photo{
		{ID: "1", Categories: []string{"Travel"}, Subcategories: []string{"Beach", "Mountain"}},
		{ID: "2", Categories: []string{"Travel"}, Subcategories: []string{"Beach"}},
		{ID: "3", Categories: []string{"Travel"}, Subcategories: []string{"Mountain"}},
		{ID: "4", Categories: []string{"Travel", "Nature"}, Subcategories: []string{"Beach", "Forest"}},
		{ID: "5", Categories: []string{"Nature"}, Subcategories: []string{"Forest"}},
	}}
}

func (s *stubFetcher) FetchPhotos(_ context.Context, limit, offset int) ([]photo.Photo, error) {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if offset >= len(s.photos) {
		return []photo.Photo{}, nil
	}
	return s.photos[offset:min(offset+limit, len(s.photos))], nil
}

func (s *stubFetcher) FetchAll(context.Context) ([]photo.Photo, error) {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.photos, nil
}

func (s *stubFetcher) wait() {
	s.mu.Lock()
	gate, started := s.gate, s.started
	s.gate = nil
	s.mu.Unlock()

	if gate != nil {
		started <- struct{}{}
		<-gate
	}
}

func (s *stubFetcher) block() (started <-chan struct{}, release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gate := make(chan struct{})
	s.gate = gate
	s.started = make(chan struct{}, 1)
	return s.started, func() { close(gate) }
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
	})
	require.NoError(t, err)
	return tax
}

func quiet() window.Option {
	return window.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func photoIDs(photos []photo.Photo) []string {
	out := make([]string, len(photos))
	for i, p := range photos {
		out[i] = p.ID
	}
	return out
}

// # Tests

func TestSession_PagedScenario(t *testing.T) {
	ctx := context.Background()
	session := gallery.NewSession(newStubFetcher(), gallery.ModePaged, quiet())
	session.SetTaxonomy(catalog(t))
	require.NoError(t, session.Start(ctx, 1))

	view := session.View()
	assert.Equal(t, "paged", view.Mode)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, photoIDs(view.Photos))
	require.NotNil(t, view.Pagination)
	assert.Equal(t, pagination.State{CurrentPage: 1, TotalPages: 1, TotalPhotos: 5}, *view.Pagination)
	assert.Nil(t, view.Feed)

	require.NoError(t, session.ToggleCategory(ctx, "Travel"))
	assert.Equal(t, []string{"1", "2", "3", "4"}, photoIDs(session.View().Photos))

	session.ToggleSubcategoryFacet("Travel", "Beach")
	assert.Equal(t, []string{"1", "2", "4"}, photoIDs(session.View().Photos))

	session.SelectAllSubcategoryFacets("Travel")
	view = session.View()
	assert.Equal(t, []string{"1"}, photoIDs(view.Photos))
	assert.Equal(t, gallery.FilterView{
		Categories: []string{"Travel"},
		Facets:     []string{"Travel:Beach", "Travel:Mountain"},
	}, view.Filter)
	require.Len(t, view.Facets, 2)
	assert.Equal(t, filter.SelectionAll, view.Facets[0].Selection)
	assert.Equal(t, 3, view.Facets[0].Subcategories[0].PhotoCount)

	session.DeselectAllSubcategoryFacets("Travel")
	require.NoError(t, session.ToggleCategory(ctx, "Nature"))
	session.ToggleSubcategoryFacet("Travel", "Beach")
	session.ToggleSubcategoryFacet("Nature", "Forest")
	assert.Equal(t, []string{"1", "2", "4", "5"}, photoIDs(session.View().Photos))

	session.ClearAll()
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, photoIDs(session.View().Photos))
}

/*
TestSession_InfiniteLoadsAllWhenFiltering checks that activating a category
in infinite mode loads the whole collection before filtering.
*/
func TestSession_InfiniteLoadsAllWhenFiltering(t *testing.T) {
	ctx := context.Background()
	session := gallery.NewSession(newStubFetcher(), gallery.ModeInfinite, quiet())
	session.SetTaxonomy(catalog(t))
	require.NoError(t, session.Start(ctx, 0))

	view := session.View()
	assert.Equal(t, "infinite", view.Mode)
	assert.Equal(t, []string{"1", "2", "3"}, photoIDs(view.Photos))
	require.NotNil(t, view.Feed)
	assert.Equal(t, window.LoadState{Offset: 3, HasMore: true}, *view.Feed)
	assert.Nil(t, view.Pagination)

	require.NoError(t, session.ToggleCategory(ctx, "Nature"))
	view = session.View()
	assert.Equal(t, []string{"4", "5"}, photoIDs(view.Photos))
	assert.Equal(t, window.LoadState{Offset: 5, FullyLoaded: true}, *view.Feed)
}

/*
TestSession_InfiniteFilterDuringChunkLoadsAll checks that a category toggled
while a chunk is still loading still ends with the whole collection, so the
filter never runs over a partial window.
*/
func TestSession_InfiniteFilterDuringChunkLoadsAll(t *testing.T) {
	ctx := context.Background()
	fetcher := newStubFetcher()
	session := gallery.NewSession(fetcher, gallery.ModeInfinite, quiet(), window.WithSize(2))
	session.SetTaxonomy(catalog(t))

	started, release := fetcher.block()
	done := make(chan error, 1)
	go func() { done <- session.LoadMore(ctx) }()
	<-started

	require.NoError(t, session.ToggleCategory(ctx, "Nature"))

	release()
	require.NoError(t, <-done)

	view := session.View()
	assert.Equal(t, []string{"4", "5"}, photoIDs(view.Photos))
	assert.Equal(t, window.LoadState{Offset: 5, FullyLoaded: true}, *view.Feed)
}

func TestSession_OtherStrategyControlsAreNoOps(t *testing.T) {
	ctx := context.Background()
	fetcher := newStubFetcher()

	paged := gallery.NewSession(fetcher, gallery.ModePaged, quiet())
	require.NoError(t, paged.LoadMore(ctx))
	require.NoError(t, paged.LoadAll(ctx))

	infinite := gallery.NewSession(fetcher, gallery.ModeInfinite, quiet())
	require.NoError(t, infinite.GoToPage(ctx, 1))
	require.NoError(t, infinite.NextPage(ctx))
	require.NoError(t, infinite.PrevPage(ctx))

	assert.Zero(t, fetcher.calls)
}

func TestSession_NavigationAndRefresh(t *testing.T) {
	ctx := context.Background()
	fetcher := newStubFetcher()
	session := gallery.NewSession(fetcher, gallery.ModePaged, quiet(), window.WithSize(2))
	require.NoError(t, session.Start(ctx, 1))

	require.NoError(t, session.NextPage(ctx))
	require.NoError(t, session.NextPage(ctx))
	assert.Equal(t, []string{"5"}, photoIDs(session.View().Photos))

	require.NoError(t, session.PrevPage(ctx))
	require.NoError(t, session.GoToPage(ctx, 1))
	assert.Equal(t, []string{"1", "2"}, photoIDs(session.View().Photos))

	require.NoError(t, session.Refresh(ctx))
	assert.Equal(t, 3, session.View().Pagination.TotalPages)
}

func TestSession_LoadFailureIsReported(t *testing.T) {
	ctx := context.Background()
	fetcher := newStubFetcher()
	session := gallery.NewSession(fetcher, gallery.ModeInfinite, quiet())
	require.NoError(t, session.Start(ctx, 0))

	fetcher.err = errors.New("offline")
	require.Error(t, session.LoadMore(ctx))
	assert.Error(t, session.LastError())
	assert.Equal(t, []string{"1", "2", "3"}, photoIDs(session.View().Photos))
}
