/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFromResponseAuth(t *testing.T) {
	err := ErrorFromResponse(401, APIErrorResponse{})
	assert.True(t, errors.Is(err, ErrUnauthorized))

	err = ErrorFromResponse(403, APIErrorResponse{})
	assert.True(t, errors.Is(err, ErrForbidden))

	err = ErrorFromResponse(404, APIErrorResponse{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestErrorFromResponseValidation(t *testing.T) {
	resp := APIErrorResponse{
		Code: 400,
		Errors: map[string][]string{
			"quantity": {"Ensure this value is greater than or equal to 0."},
		},
	}

	err := ErrorFromResponse(400, resp)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t,
		[]string{"Ensure this value is greater than or equal to 0."},
		vErr.FieldErrors("quantity"))
	assert.Nil(t, vErr.FieldErrors("part"))
}

func TestErrorFromResponseBadRequest(t *testing.T) {
	// A 400 without a field map is a plain API error, not a validation error
	err := ErrorFromResponse(400, APIErrorResponse{Code: 400, Details: "malformed JSON"})

	var aErr *APIError
	require.True(t, errors.As(err, &aErr))
	assert.Equal(t, 400, aErr.Code)
	assert.Contains(t, aErr.Error(), "malformed JSON")
}

func TestErrorFromResponseServerError(t *testing.T) {
	err := ErrorFromResponse(500, APIErrorResponse{Code: 500})

	var aErr *APIError
	require.True(t, errors.As(err, &aErr))
	assert.Equal(t, 500, aErr.Code)
}

func TestValidationErrorMessage(t *testing.T) {
	vErr := &ValidationError{Fields: map[string][]string{
		"quantity": {"Ensure this value is greater than or equal to 0."},
		"name":     {"This field may not be blank."},
	}}

	// Field names are sorted so the message is deterministic
	assert.Equal(t,
		"validation failed: name: This field may not be blank., "+
			"quantity: Ensure this value is greater than or equal to 0.",
		vErr.Error())

	empty := &ValidationError{}
	assert.Equal(t, "validation failed", empty.Error())
}
