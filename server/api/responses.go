//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package api

import (
	"errors"
	"net/http"

	"github.com/PartDesk/PartDesk/common/pserver"
	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/db"
)

// failureResponse provides a consistent response to failed authentication attempts
var failureResponse = pserver.JResponse{
	HTTPCode: http.StatusUnauthorized,
	JSONData: authFailResponse}

var authFailResponse = schema.APIErrorResponse{
	Status:  schema.APIStatusError,
	Code:    http.StatusUnauthorized,
	Details: "authentication failed"}

// errorResponse maps a data layer error to the appropriate JSON response.
// Validation failures carry their field map, missing records map to 404,
// and anything else is reported as a server error.
func (a *API) errorResponse(err error) pserver.JResponse {

	var vErr *schema.ValidationError
	if errors.As(err, &vErr) {
		return pserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.APIErrorResponse{
				Status:  schema.APIStatusError,
				Code:    http.StatusBadRequest,
				Details: "validation failed",
				Errors:  vErr.Fields}}
	}

	if errors.Is(err, db.ErrKeyNotFound) {
		return pserver.JResponse{
			HTTPCode: http.StatusNotFound,
			JSONData: schema.APIErrorResponse{
				Status:  schema.APIStatusError,
				Code:    http.StatusNotFound,
				Details: "not found"}}
	}

	a.logger.Errorf(2850, "request failed: %s", err.Error())
	return pserver.JResponse{
		HTTPCode: http.StatusInternalServerError,
		JSONData: schema.APIErrorResponse{
			Status:  schema.APIStatusError,
			Code:    http.StatusInternalServerError,
			Details: "internal server error"}}
}

// badRequest reports a malformed request body
func badRequest(details string) pserver.JResponse {
	return pserver.JResponse{
		HTTPCode: http.StatusBadRequest,
		JSONData: schema.APIErrorResponse{
			Status:  schema.APIStatusError,
			Code:    http.StatusBadRequest,
			Details: details}}
}
