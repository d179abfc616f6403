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

// getUserMe returns the authenticated user's own record
func (a *API) getUserMe(req *http.Request) pserver.JResponse {
	details := GetAuthDetails(req)
	if !details.Authenticated {
		return failureResponse
	}

	user, err := a.data.GetUser(details.ID)
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIUserResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   user}}
}

// getUserList returns all user accounts (admin only)
func (a *API) getUserList(_ *http.Request) pserver.JResponse {
	users, err := a.data.ListUsers()
	if err != nil {
		return a.errorResponse(err)
	}

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIUserListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   users}}
}
