/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"encoding/json"

	"github.com/PartDesk/PartDesk/common/schema"
)

// ErrorWrapper is a simple wrapper for CLI error handling.
// If there is an error, it prints it to the console.
func ErrorWrapper(err error) {
	if err != nil {
		println(err.Error())
	}
}

// TypedError maps a non-2xx response to the client error taxonomy so that
// callers can branch on error class. A 2xx code returns nil.
func TypedError(statusCode int, data []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	var resp schema.APIErrorResponse
	// A body that fails to decode still maps onto the taxonomy by code
	_ = json.Unmarshal(data, &resp)
	return schema.ErrorFromResponse(statusCode, resp)
}
