// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

// Package photo holds the tagged photo records the gallery filters, and the
// store that pages them out of Postgres.
package photo

import (
	"slices"
	"time"
)

// Photo is a gallery item as seen by the filter engine.
//
// Categories and Subcategories hold names, not IDs. Subcategories is the
// flat union across all of the photo's categories, so it cannot tell which
// category a subcategory came from.
type Photo struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	Categories    []string  `json:"categories"`
	Subcategories []string  `json:"subcategories"`
}

// InCategory reports whether the photo is tagged with the named category.
func (p Photo) InCategory(name string) bool {
	return slices.Contains(p.Categories, name)
}

// HasSubcategory reports whether the named subcategory is in the photo's
// flat subcategory set.
func (p Photo) HasSubcategory(name string) bool {
	return slices.Contains(p.Subcategories, name)
}
