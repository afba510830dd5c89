// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and the query-string
conventions shared by the gallery endpoints.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Strings collects every value of a repeated query key (?category=a&category=b).

Values are taken whole: a comma is part of the value, since category and
subcategory names may contain one. Values are trimmed; empty entries are
dropped. Duplicates are kept, since callers feed them into set-like state
where they are harmless.
*/
func Strings(request *http.Request, key string) []string {
	raw := request.URL.Query()[key]
	if len(raw) == 0 {
		return nil
	}

	var result []string
	for _, value := range raw {
		if clean := strings.TrimSpace(value); clean != "" {
			result = append(result, clean)
		}
	}

	return result
}

/*
Int parses a query parameter as an int, returning def when it is missing
or malformed.
*/
func Int(request *http.Request, key string, def int) int {
	raw := request.URL.Query().Get(key)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return value
}
