//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/PartDesk/PartDesk/common/pserver"
	"github.com/PartDesk/PartDesk/common/schema"
)

// pathID extracts the numeric {id} path parameter, 0 if missing or invalid
func pathID(req *http.Request) int {
	id, err := strconv.Atoi(pserver.GetParam(req, "id"))
	if err != nil {
		return 0
	}
	return id
}

// getPartList returns all parts
func (a *API) getPartList(_ *http.Request) pserver.JResponse {
	parts, err := a.data.ListParts()
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIPartListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   parts}}
}

// getPart returns one part by primary key
func (a *API) getPart(req *http.Request) pserver.JResponse {
	part, err := a.data.GetPart(pathID(req))
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIPartResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   part}}
}

// postPart creates a new part
func (a *API) postPart(req *http.Request) pserver.JResponse {
	var partRequest schema.PartRequest
	if err := decodeBody(req, &partRequest); err != nil {
		return badRequest("invalid request body")
	}

	part, err := a.data.CreatePart(partRequest)
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusCreated,
		JSONData: schema.APIPartResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusCreated,
			Data:   part}}
}

// putPart updates an existing part
func (a *API) putPart(req *http.Request) pserver.JResponse {
	var partRequest schema.PartRequest
	if err := decodeBody(req, &partRequest); err != nil {
		return badRequest("invalid request body")
	}

	part, err := a.data.UpdatePart(pathID(req), partRequest)
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIPartResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   part}}
}

// deletePart removes a part (admin only)
func (a *API) deletePart(req *http.Request) pserver.JResponse {
	if err := a.data.DeletePart(pathID(req)); err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIGenericResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "part deleted"}}
}

// getCategoryList returns all part categories
func (a *API) getCategoryList(_ *http.Request) pserver.JResponse {
	cats, err := a.data.ListCategories()
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APICategoryListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   cats}}
}

// getCategoryTree returns a category and its descendants
func (a *API) getCategoryTree(req *http.Request) pserver.JResponse {
	tree, err := a.data.CategoryTree(pathID(req))
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APICategoryListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   tree}}
}

// decodeBody reads and deserializes a JSON request body
func decodeBody(req *http.Request, target any) error {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}
