// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package window_test

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
)

// fakeFetcher serves an in-memory collection. Setting gate makes the next
// fetch announce itself on started and block until gate is closed.
type fakeFetcher struct {
	mu      sync.Mutex
	photos  []photo.Photo
	err     error
	countFn func() (int, error)
	calls   []string
	gate    chan struct{}
	started chan struct{}
}

func newFakeFetcher(n int) *fakeFetcher {
	return &fakeFetcher{photos: numbered(n)}
}

func numbered(n int) []photo.Photo {
	photos := make([]photo.Photo, n)
	for i := range photos {
		photos[i] = photo.Photo{ID: strconv.Itoa(i + 1)}
	}
	return photos
}

func (f *fakeFetcher) FetchPhotos(_ context.Context, limit, offset int) ([]photo.Photo, error) {
	f.wait("page:" + strconv.Itoa(limit) + "@" + strconv.Itoa(offset))

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.photos) {
		return []photo.Photo{}, nil
	}
	end := min(offset+limit, len(f.photos))
	return append([]photo.Photo(nil), f.photos[offset:end]...), nil
}

func (f *fakeFetcher) FetchAll(context.Context) ([]photo.Photo, error) {
	f.wait("all")

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]photo.Photo(nil), f.photos...), nil
}

func (f *fakeFetcher) wait(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	gate, started := f.gate, f.started
	f.gate = nil
	f.mu.Unlock()

	if gate != nil {
		started <- struct{}{}
		<-gate
	}
}

// block arms the gate for the next fetch.
func (f *fakeFetcher) block() (release func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = make(chan struct{})
	f.started = make(chan struct{}, 1)
	gate := f.gate
	return func() { close(gate) }
}

func (f *fakeFetcher) waitStarted() {
	f.mu.Lock()
	started := f.started
	f.mu.Unlock()
	<-started
}

func (f *fakeFetcher) set(photos []photo.Photo, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.photos = photos
	f.err = err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// countingFetcher adds a Counter to fakeFetcher.
type countingFetcher struct {
	*fakeFetcher
}

func (c countingFetcher) CountPhotos(context.Context) (int, error) {
	c.wait("count")
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.countFn != nil {
		return c.countFn()
	}
	if c.err != nil {
		return 0, c.err
	}
	return len(c.photos), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ids(photos []photo.Photo) []string {
	out := make([]string, len(photos))
	for i, p := range photos {
		out[i] = p.ID
	}
	return out
}
