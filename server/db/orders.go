//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package db

import (
	"time"

	"github.com/PartDesk/PartDesk/common/schema"
)

// SetOrder stores an order. A zero PK is assigned the next sequence number;
// the stored record is returned.
func (d *DB) SetOrder(order schema.Order) (schema.Order, error) {
	if order.PK == 0 {
		pk, err := d.NextID(BucketOrders)
		if err != nil {
			return schema.Order{}, err
		}
		order.PK = pk
		order.Created = time.Now()
	}
	return order, d.SetData(BucketOrders, RecordKey(order.PK), order)
}

// GetOrder retrieves an order by primary key
func (d *DB) GetOrder(pk int) (schema.Order, error) {
	var order schema.Order
	err := d.GetData(BucketOrders, RecordKey(pk), &order)
	if err != nil {
		return schema.Order{}, err
	}
	return order, nil
}

// DeleteOrder removes an order record
func (d *DB) DeleteOrder(pk int) error {
	return d.DeleteData(BucketOrders, RecordKey(pk))
}

// ListOrders returns orders in key order, filtered by kind when kind is not
// empty
func (d *DB) ListOrders(kind string) ([]schema.Order, error) {
	var orders []schema.Order
	err := d.Iterate(BucketOrders, func(key string, value []byte) error {
		var order schema.Order
		if err := decode(value, &order); err != nil {
			d.logger.Warningf(2240, "skipping corrupt order record %s: %s", key, err.Error())
			return nil
		}
		if kind != "" && order.Kind != kind {
			return nil
		}
		orders = append(orders, order)
		return nil
	})
	return orders, err
}
