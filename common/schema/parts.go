/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import "time"

// Part describes a single part master record
type Part struct {
	PK          int       `json:"pk" example:"1"`
	Name        string    `json:"name" example:"M3x8 cap screw"`
	IPN         string    `json:"ipn,omitempty" example:"FAS-0001"` // Internal part number
	Description string    `json:"description,omitempty"`
	CategoryPK  int       `json:"category,omitempty"`
	Units       string    `json:"units,omitempty" example:"pcs"`
	InStock     float64   `json:"in_stock"`
	Active      bool      `json:"active"`
	Created     time.Time `json:"created,omitempty"`
}

// PartCategory is a node in the part category tree
type PartCategory struct {
	PK       int    `json:"pk"`
	Name     string `json:"name"`
	ParentPK int    `json:"parent,omitempty"`
}

// PartRequest is used to create or update a part
type PartRequest struct {
	Name        string `json:"name"`
	IPN         string `json:"ipn,omitempty"`
	Description string `json:"description,omitempty"`
	CategoryPK  int    `json:"category,omitempty"`
	Units       string `json:"units,omitempty"`
	Active      bool   `json:"active"`
}

type APIPartResponse struct {
	Status  string `json:"status" example:"ok"`
	Code    int    `json:"code" example:"200"`
	Details string `json:"details,omitempty"`
	Data    Part   `json:"data"`
}

type APIPartListResponse struct {
	Status  string `json:"status" example:"ok"`
	Code    int    `json:"code" example:"200"`
	Details string `json:"details,omitempty"`
	Data    []Part `json:"data"`
}

type APICategoryListResponse struct {
	Status string         `json:"status" example:"ok"`
	Code   int            `json:"code" example:"200"`
	Data   []PartCategory `json:"data"`
}
