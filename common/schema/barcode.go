/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// BarcodeRequest submits a decoded barcode payload for resolution. The
// payload is opaque to the client; the server matches it against parts,
// stock items, and locations.
type BarcodeRequest struct {
	Barcode string `json:"barcode" example:"{\"part\": 1}"`
}

// BarcodeMatch identifies the record a barcode resolved to
type BarcodeMatch struct {
	Kind string `json:"kind" example:"part"` // part, stockitem, or stocklocation
	PK   int    `json:"pk" example:"1"`
	Name string `json:"name,omitempty" example:"M3x8 cap screw"`
}

// APIBarcodeResponse is returned by the barcode resolution endpoint. On a
// match, URL carries the navigation target for the matched record.
type APIBarcodeResponse struct {
	Status  string        `json:"status" example:"ok"`
	Code    int           `json:"code" example:"200"`
	Details string        `json:"details,omitempty"`
	Success bool          `json:"success"`
	URL     string        `json:"url,omitempty" example:"/api/part/1/"`
	Match   *BarcodeMatch `json:"match,omitempty"`
}
