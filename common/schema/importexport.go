/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// ImportRowRequest submits one accepted row of an import session. RowID is
// chosen by the client and makes the commit idempotent: re-submitting a
// RowID that was already imported is a no-op reported as a duplicate.
type ImportRowRequest struct {
	RowID  string            `json:"row_id"`
	Model  string            `json:"model" example:"part"` // part or stock
	Values map[string]string `json:"values"`
}

// APIImportRowResponse reports the outcome of one committed row
type APIImportRowResponse struct {
	Status    string              `json:"status" example:"ok"`
	Code      int                 `json:"code" example:"200"`
	Details   string              `json:"details,omitempty"`
	RowID     string              `json:"row_id"`
	Created   bool                `json:"created"`
	Duplicate bool                `json:"duplicate"`
	PK        int                 `json:"pk,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}
