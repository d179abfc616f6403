/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package pserver

import (
	"net/http"
)

// HandlerHealth implements a health check for load balancers, etc.
func (s *PServer) HandlerHealth(_ *http.Request) JResponse {
	r := Response{
		Status:  "ok",
		Code:    http.StatusOK,
		Details: "health check ok",
	}
	return JResponse{
		HTTPCode: r.Code,
		JSONData: r}
}

func (s *PServer) Handler404(_ *http.Request) JResponse {
	s.PenaltyBox()
	return JResponse{
		HTTPCode: http.StatusNotFound,
		JSONData: Response{Details: "object does not exist", Status: "error", Code: http.StatusNotFound}}
}

func (s *PServer) Handler405(_ *http.Request) JResponse {
	s.PenaltyBox()
	return JResponse{
		HTTPCode: http.StatusMethodNotAllowed,
		JSONData: Response{Details: "method not allowed", Status: "error", Code: http.StatusMethodNotAllowed}}
}
