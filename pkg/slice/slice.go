// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

/*
Package slice complements the standard [slices] package with small generic
helpers (Map, Filter, Set) used by the gallery engine and its HTTP views.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements for which predicate is true, in input order.
//
// The result is never nil for a non-nil input, so "no matches" encodes as an
// empty JSON array rather than null.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	result := make([]T, 0, len(input))
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Set builds a membership set from the given values.
func Set[T comparable](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
