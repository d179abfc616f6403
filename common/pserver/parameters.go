/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package pserver

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetParam retrieves a path parameter from the request URL
//
//goland:noinspection GoUnusedExportedFunction
func GetParam(r *http.Request, param string) string {
	vars := mux.Vars(r)
	if value, ok := vars[param]; ok {
		return value
	}
	return ""
}
