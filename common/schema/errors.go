/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Client-side error taxonomy. Transport failures are wrapped fmt errors;
// everything the server reports maps onto one of the types below so that
// callers can branch on class instead of parsing response bodies.

var (
	ErrUnauthorized = errors.New("not authenticated")
	ErrForbidden    = errors.New("permission denied")
	ErrNotFound     = errors.New("not found")
)

// APIError is a non-validation error reported by the server
type APIError struct {
	Code    int
	Details string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("server error (HTTP %d)", e.Code)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Details, e.Code)
}

// ValidationError carries the field-level error map of a 400-class
// response. Entries persist until the offending field is corrected.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// FieldErrors returns the messages for one field, nil if the field is clean
func (e *ValidationError) FieldErrors(field string) []string {
	if e.Fields == nil {
		return nil
	}
	return e.Fields[field]
}

// ErrorFromResponse maps an HTTP status code and decoded error body to the
// appropriate typed error. A 404 on a sub-resource may be treated as an
// empty result by the caller; this function always reports it.
func ErrorFromResponse(code int, resp APIErrorResponse) error {
	switch code {
	case 400:
		if len(resp.Errors) > 0 {
			return &ValidationError{Fields: resp.Errors}
		}
		return &APIError{Code: code, Details: resp.Details}
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	default:
		return &APIError{Code: code, Details: resp.Details}
	}
}
