//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package data

import (
	"fmt"

	"github.com/PartDesk/PartDesk/common/schema"
)

// ListOrders returns orders of one kind (po, so, or bo)
func (d *Data) ListOrders(kind string) ([]schema.Order, error) {
	switch kind {
	case schema.OrderKindPurchase, schema.OrderKindSales, schema.OrderKindBuild:
	default:
		return nil, fmt.Errorf("unknown order kind: %s", kind)
	}
	return d.database.ListOrders(kind)
}

// GetOrder returns one order
func (d *Data) GetOrder(pk int) (schema.Order, error) {
	return d.database.GetOrder(pk)
}

// CreateOrder validates and stores a new order
func (d *Data) CreateOrder(order schema.Order) (schema.Order, error) {
	fields := make(map[string][]string)
	switch order.Kind {
	case schema.OrderKindPurchase, schema.OrderKindSales, schema.OrderKindBuild:
	default:
		fields["kind"] = append(fields["kind"], "Order kind must be po, so, or bo.")
	}
	if order.Reference == "" {
		fields["reference"] = append(fields["reference"], "This field may not be blank.")
	}
	if len(fields) > 0 {
		return schema.Order{}, &schema.ValidationError{Fields: fields}
	}

	if order.Status == "" {
		order.Status = schema.OrderStatusPending
	}
	order.PK = 0
	return d.database.SetOrder(order)
}

// AllocateBuildStock allocates a stock item against a build order. The
// allocated quantity is deducted from the stock item and recorded on the
// order as a received line.
func (d *Data) AllocateBuildStock(orderPK int, req schema.BuildAllocateRequest) (schema.Order, error) {
	order, err := d.database.GetOrder(orderPK)
	if err != nil {
		return schema.Order{}, err
	}

	if order.Kind != schema.OrderKindBuild {
		return schema.Order{}, &schema.ValidationError{Fields: map[string][]string{
			"order": {"Allocation is only valid for build orders."},
		}}
	}

	item, err := d.database.GetStockItem(req.StockItemPK)
	if err != nil {
		return schema.Order{}, &schema.ValidationError{Fields: map[string][]string{
			"stock_item": {"Stock item does not exist."},
		}}
	}

	fields := make(map[string][]string)
	if req.Quantity <= 0 {
		fields["quantity"] = append(fields["quantity"], MsgQuantityNegative)
	} else if req.Quantity > item.Quantity {
		fields["quantity"] = append(fields["quantity"], "Quantity exceeds available stock.")
	}
	if len(fields) > 0 {
		return schema.Order{}, &schema.ValidationError{Fields: fields}
	}

	// Deduct from the stock item, removing it when fully consumed
	item.Quantity -= req.Quantity
	if item.Quantity == 0 {
		if err = d.database.DeleteStockItem(item.PK); err != nil {
			return schema.Order{}, err
		}
	} else {
		if _, err = d.database.SetStockItem(item); err != nil {
			return schema.Order{}, err
		}
	}

	// Record the allocation against a matching line, or add one
	matched := false
	for i := range order.Lines {
		if order.Lines[i].PartPK == item.PartPK {
			order.Lines[i].Received += req.Quantity
			matched = true
			break
		}
	}
	if !matched {
		order.Lines = append(order.Lines, schema.OrderLine{
			PK:       len(order.Lines) + 1,
			PartPK:   item.PartPK,
			Quantity: req.Quantity,
			Received: req.Quantity,
		})
	}

	return d.database.SetOrder(order)
}
