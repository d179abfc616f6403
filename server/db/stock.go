//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package db

import (
	"time"

	"github.com/PartDesk/PartDesk/common/schema"
)

// SetStockItem stores a stock item. A zero PK is assigned the next sequence
// number; the stored record is returned.
func (d *DB) SetStockItem(item schema.StockItem) (schema.StockItem, error) {
	if item.PK == 0 {
		pk, err := d.NextID(BucketStock)
		if err != nil {
			return schema.StockItem{}, err
		}
		item.PK = pk
	}
	item.Updated = time.Now()
	return item, d.SetData(BucketStock, RecordKey(item.PK), item)
}

// GetStockItem retrieves a stock item by primary key
func (d *DB) GetStockItem(pk int) (schema.StockItem, error) {
	var item schema.StockItem
	err := d.GetData(BucketStock, RecordKey(pk), &item)
	if err != nil {
		return schema.StockItem{}, err
	}
	return item, nil
}

// DeleteStockItem removes a stock item record
func (d *DB) DeleteStockItem(pk int) error {
	return d.DeleteData(BucketStock, RecordKey(pk))
}

// ListStock returns all stock items in key order. When partPK is non-zero
// only items for that part are returned.
func (d *DB) ListStock(partPK int) ([]schema.StockItem, error) {
	var items []schema.StockItem
	err := d.Iterate(BucketStock, func(key string, value []byte) error {
		var item schema.StockItem
		if err := decode(value, &item); err != nil {
			d.logger.Warningf(2230, "skipping corrupt stock record %s: %s", key, err.Error())
			return nil
		}
		if partPK != 0 && item.PartPK != partPK {
			return nil
		}
		items = append(items, item)
		return nil
	})
	return items, err
}

// PartStockTotal sums the quantity of all stock items for a part
func (d *DB) PartStockTotal(partPK int) (float64, error) {
	items, err := d.ListStock(partPK)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, item := range items {
		total += item.Quantity
	}
	return total, nil
}

// SetLocation stores a stock location, assigning a PK if needed
func (d *DB) SetLocation(loc schema.StockLocation) (schema.StockLocation, error) {
	if loc.PK == 0 {
		pk, err := d.NextID(BucketLocations)
		if err != nil {
			return schema.StockLocation{}, err
		}
		loc.PK = pk
	}
	return loc, d.SetData(BucketLocations, RecordKey(loc.PK), loc)
}

// GetLocation retrieves a stock location by primary key
func (d *DB) GetLocation(pk int) (schema.StockLocation, error) {
	var loc schema.StockLocation
	err := d.GetData(BucketLocations, RecordKey(pk), &loc)
	if err != nil {
		return schema.StockLocation{}, err
	}
	return loc, nil
}

// ListLocations returns all stock locations in key order
func (d *DB) ListLocations() ([]schema.StockLocation, error) {
	var locs []schema.StockLocation
	err := d.Iterate(BucketLocations, func(key string, value []byte) error {
		var loc schema.StockLocation
		if err := decode(value, &loc); err != nil {
			d.logger.Warningf(2231, "skipping corrupt location record %s: %s", key, err.Error())
			return nil
		}
		locs = append(locs, loc)
		return nil
	})
	return locs, err
}
