// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

// Package taxonomy models the two-level Category → Subcategory tree that
// photos are tagged against, and the catalog stores that supply it.
package taxonomy

import (
	"fmt"

	"github.com/thinh77/trinhminhson-sub000/internal/platform/validate"
	"github.com/thinh77/trinhminhson-sub000/pkg/slug"
)

// LabelSeparator joins a category and subcategory name for display.
const LabelSeparator = " › "

// MaxNameLength bounds category and subcategory names in characters.
const MaxNameLength = 100

// Category is a top-level filterable dimension.
//
// Name is the join key used by photo tagging; Slug only addresses the
// category in URLs.
type Category struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	SortOrder     int           `json:"sort_order"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is a value scoped under one Category.
type Subcategory struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}

// Label returns the display identity of a subcategory, which is always
// qualified by its parent category name.
func Label(category, subcategory string) string {
	return category + LabelSeparator + subcategory
}

// Taxonomy is an immutable snapshot of the catalog, valid for one render.
type Taxonomy struct {
	categories []Category
	byName     map[string]int
	bySlug     map[string]int
}

// New builds a snapshot from categories in the given order.
//
// Category names must be present, unique and at most [MaxNameLength]
// characters; they are the join key photos are tagged with. Subcategory
// names follow the same length rule. Missing slugs are derived from the name.
func New(categories []Category) (*Taxonomy, error) {
	taxonomy := &Taxonomy{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
		bySlug:     make(map[string]int, len(categories)),
	}

	v := &validate.Validator{}
	for i, category := range categories {
		field := fmt.Sprintf("categories[%d].name", i)
		v.Required(field, category.Name).MaxLen(field, category.Name, MaxNameLength)
		for j, sub := range category.Subcategories {
			subField := fmt.Sprintf("categories[%d].subcategories[%d].name", i, j)
			v.Required(subField, sub.Name).MaxLen(subField, sub.Name, MaxNameLength)
		}

		if _, dup := taxonomy.byName[category.Name]; dup {
			v.Custom(field, true, "Category name must be unique: "+category.Name)
			continue
		}

		if category.Slug == "" {
			category.Slug = slug.From(category.Name)
		}
		category.Subcategories = append([]Subcategory(nil), category.Subcategories...)

		taxonomy.byName[category.Name] = len(taxonomy.categories)
		if _, taken := taxonomy.bySlug[category.Slug]; !taken {
			taxonomy.bySlug[category.Slug] = len(taxonomy.categories)
		}
		taxonomy.categories = append(taxonomy.categories, category)
	}

	if err := v.Err(); err != nil {
		return nil, err
	}
	return taxonomy, nil
}

// Categories returns a copy of the categories in catalog order.
func (t *Taxonomy) Categories() []Category {
	if t == nil {
		return nil
	}
	return append([]Category(nil), t.categories...)
}

// Len reports the number of categories.
func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.categories)
}

// Category looks a category up by its name.
func (t *Taxonomy) Category(name string) (Category, bool) {
	if t == nil {
		return Category{}, false
	}
	i, ok := t.byName[name]
	if !ok {
		return Category{}, false
	}
	return t.categories[i], true
}

// CategoryBySlug looks a category up by its URL slug.
func (t *Taxonomy) CategoryBySlug(s string) (Category, bool) {
	if t == nil {
		return Category{}, false
	}
	i, ok := t.bySlug[s]
	if !ok {
		return Category{}, false
	}
	return t.categories[i], true
}

// SubcategoryNames lists the subcategory names under category in catalog
// order. Unknown categories yield nil.
func (t *Taxonomy) SubcategoryNames(category string) []string {
	c, ok := t.Category(category)
	if !ok {
		return nil
	}

	names := make([]string, len(c.Subcategories))
	for i, sub := range c.Subcategories {
		names[i] = sub.Name
	}
	return names
}
