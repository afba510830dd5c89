// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package filter

import (
	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
	"github.com/thinh77/trinhminhson-sub000/pkg/slice"
)

// Snapshot is an immutable view of a [State], with facet keys already
// partitioned by category. The zero value filters nothing.
type Snapshot struct {
	categories map[string]struct{}
	required   map[string]map[string]struct{}
}

// IsEmpty reports whether the snapshot admits every photo.
func (s Snapshot) IsEmpty() bool {
	return len(s.categories) == 0
}

/*
Matches decides whether p belongs in the filtered result.

Rules, in order:

 1. No active category: match.
 2. None of the photo's categories is active: no match.
 3. For each of the photo's active categories that has required
    subcategories, every required name must be in the photo's flat
    subcategory set.
 4. Active categories without requirements pass through.

Because the subcategory set is flat, a photo in two active categories can
satisfy both categories' requirements from the same tags.
*/
func Matches(p photo.Photo, s Snapshot) bool {
	if s.IsEmpty() {
		return true
	}

	inActiveCategory := false
	var tags map[string]struct{}

	for _, category := range p.Categories {
		if _, active := s.categories[category]; !active {
			continue
		}
		inActiveCategory = true

		required, constrained := s.required[category]
		if !constrained {
			continue
		}

		if tags == nil {
			tags = slice.Set(p.Subcategories)
		}
		for sub := range required {
			if _, ok := tags[sub]; !ok {
				return false
			}
		}
	}

	return inActiveCategory
}

// Apply keeps the photos that match s, in their original order. With no
// active category the input is returned as is.
func Apply(photos []photo.Photo, s Snapshot) []photo.Photo {
	if s.IsEmpty() {
		return photos
	}
	return slice.Filter(photos, func(p photo.Photo) bool {
		return Matches(p, s)
	})
}
