//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package api

import (
	"net/http"
	"strconv"

	"github.com/PartDesk/PartDesk/common/pserver"
	"github.com/PartDesk/PartDesk/common/schema"
)

// getStockList returns stock items, optionally filtered by ?part=<pk>
func (a *API) getStockList(req *http.Request) pserver.JResponse {
	partPK := 0
	if v := req.URL.Query().Get("part"); v != "" {
		partPK, _ = strconv.Atoi(v)
	}

	items, err := a.data.ListStock(partPK)
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIStockListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   items}}
}

// getStock returns one stock item
func (a *API) getStock(req *http.Request) pserver.JResponse {
	item, err := a.data.GetStockItem(pathID(req))
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIStockItemResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   item}}
}

// postStock creates a new stock item
func (a *API) postStock(req *http.Request) pserver.JResponse {
	var stockRequest schema.StockItemRequest
	if err := decodeBody(req, &stockRequest); err != nil {
		return badRequest("invalid request body")
	}

	item, err := a.data.CreateStockItem(stockRequest)
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusCreated,
		JSONData: schema.APIStockItemResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusCreated,
			Data:   item}}
}

// deleteStock removes a stock item (admin only)
func (a *API) deleteStock(req *http.Request) pserver.JResponse {
	if err := a.data.DeleteStockItem(pathID(req)); err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIGenericResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "stock item deleted"}}
}

// postStockTransfer moves a stock item (or part of it) to another location
func (a *API) postStockTransfer(req *http.Request) pserver.JResponse {
	var transferRequest schema.StockTransferRequest
	if err := decodeBody(req, &transferRequest); err != nil {
		return badRequest("invalid request body")
	}

	item, err := a.data.TransferStock(pathID(req), transferRequest)
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIStockItemResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   item}}
}

// getLocationList returns all stock locations
func (a *API) getLocationList(_ *http.Request) pserver.JResponse {
	locs, err := a.data.ListLocations()
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APILocationListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   locs}}
}
