// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs give categories a stable, URL-friendly handle (e.g. "Đà Lạt" → "da-lat").
// They are presentation-only: photo tagging always joins on the display name.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented runes and drops the combining marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
//  1. NFD-normalize and drop combining marks (é → e).
//  2. Fold the Vietnamese đ/Đ, which has no decomposition.
//  3. Lowercase; every run of non [a-z0-9] runes becomes a single hyphen.
//  4. Trim leading and trailing hyphens.
func From(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var builder strings.Builder
	builder.Grow(len(folded))

	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if r == 'đ' {
			r = 'd'
		}

		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			pendingHyphen = false
			builder.WriteRune(r)
			continue
		}

		pendingHyphen = true
	}

	return builder.String()
}
