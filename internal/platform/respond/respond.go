// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// Every response (success or error) follows the same JSON envelope so the
// gallery frontend can parse it uniformly. Read-only views are served with a
// content-derived ETag so unchanged pages revalidate with 304.
package respond

import (
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"

	"github.com/thinh77/trinhminhson-sub000/internal/platform/apperr"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/constants"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/ctxutil"
)

// SuccessEnvelope is the JSON envelope for successful responses.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Tagged writes data like [OK] but with a strong ETag computed over the
// encoded body. A matching If-None-Match yields 304 with no body.
func Tagged(writer http.ResponseWriter, request *http.Request, data any) {
	body, err := json.Marshal(SuccessEnvelope{Data: data})
	if err != nil {
		Error(writer, request, apperr.Internal(err))
		return
	}

	etag := ETag(body)
	writer.Header().Set(constants.HeaderETag, etag)

	if matchesETag(request.Header.Get(constants.HeaderIfNoneMatch), etag) {
		writer.WriteHeader(http.StatusNotModified)
		return
	}

	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(body)
}

// ETag returns the quoted blake2b-256 digest (first 16 bytes, hex) of body.
func ETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func matchesETag(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
