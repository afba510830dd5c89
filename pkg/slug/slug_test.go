// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinh77/trinhminhson-sub000/pkg/slug"
)

/*
TestFrom covers accent folding and hyphen collapsing.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Travel", "travel"},
		{"spaces", "Street  Food", "street-food"},
		{"accents", "Café Crème", "cafe-creme"},
		{"vietnamese", "Đà Lạt", "da-lat"},
		{"punctuation_edges", "  --Night:Sky!  ", "night-sky"},
		{"digits", "Tokyo 2024", "tokyo-2024"},
		{"empty", "", ""},
		{"symbols_only", "★ ☆", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
