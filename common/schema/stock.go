/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import "time"

// StockItem describes a quantity of a part held at a location
type StockItem struct {
	PK         int       `json:"pk" example:"1"`
	PartPK     int       `json:"part" example:"1"`
	LocationPK int       `json:"location,omitempty"`
	Quantity   float64   `json:"quantity" example:"25"`
	Batch      string    `json:"batch,omitempty"`
	Serial     string    `json:"serial,omitempty"`
	Updated    time.Time `json:"updated,omitempty"`
}

// StockLocation is a node in the stock location tree
type StockLocation struct {
	PK       int    `json:"pk"`
	Name     string `json:"name"`
	ParentPK int    `json:"parent,omitempty"`
}

// StockItemRequest is used to create a stock item. Quantity must be zero or
// greater; the server rejects negative values with a field-level error.
type StockItemRequest struct {
	PartPK     int     `json:"part"`
	LocationPK int     `json:"location,omitempty"`
	Quantity   float64 `json:"quantity"`
	Batch      string  `json:"batch,omitempty"`
	Serial     string  `json:"serial,omitempty"`
}

// StockTransferRequest moves a stock item to another location
type StockTransferRequest struct {
	LocationPK int     `json:"location"`
	Quantity   float64 `json:"quantity,omitempty"` // zero means the whole item
	Notes      string  `json:"notes,omitempty"`
}

type APIStockItemResponse struct {
	Status  string    `json:"status" example:"ok"`
	Code    int       `json:"code" example:"200"`
	Details string    `json:"details,omitempty"`
	Data    StockItem `json:"data"`
}

type APIStockListResponse struct {
	Status  string      `json:"status" example:"ok"`
	Code    int         `json:"code" example:"200"`
	Details string      `json:"details,omitempty"`
	Data    []StockItem `json:"data"`
}

type APILocationListResponse struct {
	Status string          `json:"status" example:"ok"`
	Code   int             `json:"code" example:"200"`
	Data   []StockLocation `json:"data"`
}
