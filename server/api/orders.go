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

// getOrders returns a handler for listing orders of one kind
func (a *API) getOrders(kind string) pserver.JHandler {
	return func(_ *http.Request) pserver.JResponse {
		orders, err := a.data.ListOrders(kind)
		if err != nil {
			return a.errorResponse(err)
		}

		return pserver.JResponse{
			HTTPCode: http.StatusOK,
			JSONData: schema.APIOrderListResponse{
				Status: schema.APIStatusOK,
				Code:   http.StatusOK,
				Data:   orders}}
	}
}

// postBuildAllocate allocates stock against a build order
func (a *API) postBuildAllocate(req *http.Request) pserver.JResponse {
	var allocateRequest schema.BuildAllocateRequest
	if err := decodeBody(req, &allocateRequest); err != nil {
		return badRequest("invalid request body")
	}

	order, err := a.data.AllocateBuildStock(pathID(req), allocateRequest)
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIOrderResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   order}}
}
