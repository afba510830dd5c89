// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package photo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
)

func TestPhoto_Membership(t *testing.T) {
	p := photo.Photo{
		ID:            "4",
		Categories:    []string{"Travel", "Nature"},
		Subcategories: []string{"Beach", "Forest"},
	}

	assert.True(t, p.InCategory("Nature"))
	assert.False(t, p.InCategory("nature"))
	assert.True(t, p.HasSubcategory("Forest"))
	assert.False(t, p.HasSubcategory("Mountain"))

	var untagged photo.Photo
	assert.False(t, untagged.InCategory("Travel"))
	assert.False(t, untagged.HasSubcategory("Beach"))
}
