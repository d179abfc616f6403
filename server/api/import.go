//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package api

import (
	"net/http"

	"github.com/PartDesk/PartDesk/common/pserver"
	"github.com/PartDesk/PartDesk/common/schema"
)

// postImportRow commits one accepted import row. Replaying a row ID that
// was already committed returns the original result flagged as a duplicate.
func (a *API) postImportRow(req *http.Request) pserver.JResponse {
	var rowRequest schema.ImportRowRequest
	if err := decodeBody(req, &rowRequest); err != nil {
		return badRequest("invalid request body")
	}

	resp, err := a.data.ImportRow(rowRequest)
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: resp.Code,
		JSONData: resp}
}
