// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/gallery", "pgx5://u:p@db:5432/gallery"},
		{"postgresql://u@db/gallery?sslmode=disable", "pgx5://u@db/gallery?sslmode=disable"},
		{"pgx5://db/gallery", "pgx5://db/gallery"},
		{"host=db dbname=gallery", "host=db dbname=gallery"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toPgx5DSN(tt.in))
		})
	}
}
