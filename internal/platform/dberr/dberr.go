// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/thinh77/trinhminhson-sub000/internal/platform/apperr"
)

// Wrap classifies a database error as an [apperr.AppError].
//
// pgx.ErrNoRows becomes NOT_FOUND for resource; anything else becomes an
// internal error whose cause records the failed action.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
