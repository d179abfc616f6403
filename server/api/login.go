/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PartDesk/PartDesk/common/fields"
	"github.com/PartDesk/PartDesk/common/pserver"
	"github.com/PartDesk/PartDesk/common/schema"
)

// postLogin authenticates a user and returns access and refresh tokens
func (a *API) postLogin(req *http.Request) pserver.JResponse {

	remoteIP := pserver.RemoteIP(req)

	// Get the JSON post data
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return failureResponse
	}

	// Deserialize the JSON
	var loginRequest schema.LoginRequest
	err = json.Unmarshal(body, &loginRequest)
	if err != nil {
		return failureResponse
	}

	// Information to be logged as fields
	logInfo := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", loginRequest.Username))

	// Check for missing required fields
	if loginRequest.Username == "" || loginRequest.Password == "" {
		a.logger.Error(2861, "login missing required fields", logInfo)
		return failureResponse
	}

	// Authenticate user
	accessToken, refreshToken, err := a.data.LoginGetToken(loginRequest.Username, loginRequest.Password)
	if err != nil {
		logInfo.Append(fields.NewField("auth-result", "failed"), fields.NewField("error", err.Error()))
		a.logger.Error(2862, fmt.Sprintf("login failed: %s", err.Error()), logInfo)
		return failureResponse
	}

	logInfo.Append(fields.NewField("auth-result", "success"))
	a.logger.Info(2863, "successful login", logInfo)

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APILoginResponse{
			Status:       schema.APIStatusOK,
			Code:         http.StatusOK,
			AccessToken:  accessToken,
			RefreshToken: refreshToken}}
}

// postLogout acknowledges a logout. Access tokens are stateless, so the
// client discards them; the endpoint exists so clients can record the
// session end server-side in logs.
func (a *API) postLogout(req *http.Request) pserver.JResponse {
	details := GetAuthDetails(req)
	a.logger.Info(2864, "logout",
		fields.NewFields(
			fields.NewField("src_ip", pserver.RemoteIP(req)),
			fields.NewField("id", details.ID)))

	return pserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIGenericResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "logged out"}}
}
