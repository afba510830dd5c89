// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

/*
Package uuid generates and checks the time-ordered identifiers used for
request correlation.

Version 7 values sort by creation time, so log lines grouped by request ID
also read in order.
*/
package uuid

import "github.com/google/uuid"

// New returns a UUIDv7 string, falling back to a random v4 if the clock
// source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether s is a canonical UUID of any version.
func Valid(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}
