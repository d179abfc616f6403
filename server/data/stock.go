//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package data

import (
	"github.com/PartDesk/PartDesk/common/schema"
)

// MsgQuantityNegative is the field-level message returned when a quantity
// below zero is submitted
const MsgQuantityNegative = "Ensure this value is greater than or equal to 0."

// CreateStockItem validates and stores a new stock item. A negative
// quantity is rejected with a field-level validation error.
func (d *Data) CreateStockItem(req schema.StockItemRequest) (schema.StockItem, error) {
	if err := d.validateStockItem(req); err != nil {
		return schema.StockItem{}, err
	}

	item := schema.StockItem{
		PartPK:     req.PartPK,
		LocationPK: req.LocationPK,
		Quantity:   req.Quantity,
		Batch:      req.Batch,
		Serial:     req.Serial,
	}
	return d.database.SetStockItem(item)
}

// GetStockItem returns one stock item
func (d *Data) GetStockItem(pk int) (schema.StockItem, error) {
	return d.database.GetStockItem(pk)
}

// ListStock returns stock items, optionally filtered by part
func (d *Data) ListStock(partPK int) ([]schema.StockItem, error) {
	return d.database.ListStock(partPK)
}

// DeleteStockItem removes a stock item
func (d *Data) DeleteStockItem(pk int) error {
	if _, err := d.database.GetStockItem(pk); err != nil {
		return err
	}
	return d.database.DeleteStockItem(pk)
}

// TransferStock moves all or part of a stock item to another location. A
// partial transfer splits the item; the new item is returned.
func (d *Data) TransferStock(pk int, req schema.StockTransferRequest) (schema.StockItem, error) {
	item, err := d.database.GetStockItem(pk)
	if err != nil {
		return schema.StockItem{}, err
	}

	fields := make(map[string][]string)
	if req.Quantity < 0 {
		fields["quantity"] = append(fields["quantity"], MsgQuantityNegative)
	}
	if req.Quantity > item.Quantity {
		fields["quantity"] = append(fields["quantity"], "Quantity exceeds available stock.")
	}
	if req.LocationPK != 0 {
		if _, err = d.database.GetLocation(req.LocationPK); err != nil {
			fields["location"] = append(fields["location"], "Location does not exist.")
		}
	}
	if len(fields) > 0 {
		return schema.StockItem{}, &schema.ValidationError{Fields: fields}
	}

	// Zero quantity means the whole item moves
	if req.Quantity == 0 || req.Quantity == item.Quantity {
		item.LocationPK = req.LocationPK
		return d.database.SetStockItem(item)
	}

	// Partial transfer: reduce the source and create a new item at the
	// destination
	item.Quantity -= req.Quantity
	if _, err = d.database.SetStockItem(item); err != nil {
		return schema.StockItem{}, err
	}

	split := schema.StockItem{
		PartPK:     item.PartPK,
		LocationPK: req.LocationPK,
		Quantity:   req.Quantity,
		Batch:      item.Batch,
	}
	return d.database.SetStockItem(split)
}

// ListLocations returns all stock locations
func (d *Data) ListLocations() ([]schema.StockLocation, error) {
	return d.database.ListLocations()
}

// validateStockItem returns a ValidationError for any rejected field
func (d *Data) validateStockItem(req schema.StockItemRequest) error {
	fields := make(map[string][]string)

	if req.Quantity < 0 {
		fields["quantity"] = append(fields["quantity"], MsgQuantityNegative)
	}

	if req.PartPK == 0 {
		fields["part"] = append(fields["part"], "This field is required.")
	} else if _, err := d.database.GetPart(req.PartPK); err != nil {
		fields["part"] = append(fields["part"], "Part does not exist.")
	}

	if req.LocationPK != 0 {
		if _, err := d.database.GetLocation(req.LocationPK); err != nil {
			fields["location"] = append(fields["location"], "Location does not exist.")
		}
	}

	if len(fields) > 0 {
		return &schema.ValidationError{Fields: fields}
	}
	return nil
}
