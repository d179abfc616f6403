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

// getServerInfo returns instance metadata. It is served without
// credentials so clients can display the instance before login.
func (a *API) getServerInfo(_ *http.Request) pserver.JResponse {
	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIServerInfoResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   a.data.ServerInfo()}}
}

// getAuthConfig returns the authentication configuration, also without
// credentials so login screens can render first
func (a *API) getAuthConfig(_ *http.Request) pserver.JResponse {
	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIAuthConfigResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   a.data.AuthConfig()}}
}
