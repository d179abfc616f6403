/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import "time"

// Order status lifecycle shared by purchase, sales, and build orders
//
//goland:noinspection GoUnusedConst
const (
	OrderStatusPending   = "pending"
	OrderStatusPlaced    = "placed"
	OrderStatusComplete  = "complete"
	OrderStatusCancelled = "cancelled"
)

// Order kinds as carried in the order record
const (
	OrderKindPurchase = "po"
	OrderKindSales    = "so"
	OrderKindBuild    = "bo"
)

// Order is a purchase, sales, or build order header
type Order struct {
	PK          int        `json:"pk" example:"1"`
	Kind        string     `json:"kind" example:"po"`
	Reference   string     `json:"reference" example:"PO-0001"`
	Status      string     `json:"status" example:"pending"`
	Description string     `json:"description,omitempty"`
	CompanyPK   int        `json:"company,omitempty"` // supplier or customer
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Created     time.Time  `json:"created,omitempty"`
	Lines       []OrderLine `json:"lines,omitempty"`
}

// OrderLine is a single line on an order
type OrderLine struct {
	PK       int     `json:"pk"`
	PartPK   int     `json:"part"`
	Quantity float64 `json:"quantity"`
	Received float64 `json:"received,omitempty"`
}

// BuildAllocateRequest allocates stock items against a build order output
type BuildAllocateRequest struct {
	StockItemPK int     `json:"stock_item"`
	Quantity    float64 `json:"quantity"`
	OutputPK    int     `json:"output,omitempty"`
}

type APIOrderListResponse struct {
	Status  string  `json:"status" example:"ok"`
	Code    int     `json:"code" example:"200"`
	Details string  `json:"details,omitempty"`
	Data    []Order `json:"data"`
}

type APIOrderResponse struct {
	Status  string `json:"status" example:"ok"`
	Code    int    `json:"code" example:"200"`
	Details string `json:"details,omitempty"`
	Data    Order  `json:"data"`
}
