//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package api

import (
	"net/http"

	"github.com/PartDesk/PartDesk/common/fields"
	"github.com/PartDesk/PartDesk/common/pserver"
	"github.com/PartDesk/PartDesk/common/schema"
)

// postBarcode resolves a scanned barcode payload to a record. A payload
// that matches nothing is still HTTP 200; Success is false in the body.
func (a *API) postBarcode(req *http.Request) pserver.JResponse {
	var barcodeRequest schema.BarcodeRequest
	if err := decodeBody(req, &barcodeRequest); err != nil {
		return badRequest("invalid request body")
	}

	if barcodeRequest.Barcode == "" {
		return badRequest("barcode may not be blank")
	}

	resp, err := a.data.ResolveBarcode(barcodeRequest.Barcode)
	if err != nil {
		return a.errorResponse(err)
	}

	a.logger.Info(2870, "barcode scan",
		fields.NewFields(
			fields.NewField("src_ip", pserver.RemoteIP(req)),
			fields.NewField("success", resp.Success)))

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: resp}
}
