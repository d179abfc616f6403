//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package data

import (
	"errors"

	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/db"
)

// Seed populates a fresh instance with a default admin account and a small
// demo dataset. Existing records are never modified, so running it on every
// start is safe.
func (d *Data) Seed() error {

	// Default admin account
	if _, err := d.database.GetAuth("admin"); err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			return err
		}
		d.logger.Info(2301, "creating default admin account", nil)
		if err = d.database.SetAuth("admin", "inventree", schema.RoleAdmin); err != nil {
			return err
		}
	}

	// Demo data only when the parts bucket is empty
	parts, err := d.database.ListParts()
	if err != nil {
		return err
	}
	if len(parts) > 0 {
		return nil
	}

	d.logger.Info(2302, "seeding demo data", nil)

	fasteners, err := d.database.SetCategory(schema.PartCategory{Name: "Fasteners"})
	if err != nil {
		return err
	}
	if _, err = d.database.SetCategory(schema.PartCategory{Name: "Screws", ParentPK: fasteners.PK}); err != nil {
		return err
	}
	electronics, err := d.database.SetCategory(schema.PartCategory{Name: "Electronics"})
	if err != nil {
		return err
	}

	warehouse, err := d.database.SetLocation(schema.StockLocation{Name: "Warehouse"})
	if err != nil {
		return err
	}
	shelf, err := d.database.SetLocation(schema.StockLocation{Name: "Shelf A1", ParentPK: warehouse.PK})
	if err != nil {
		return err
	}

	demoParts := []schema.Part{
		{Name: "M3x8 cap screw", IPN: "FAS-0001", CategoryPK: fasteners.PK, Units: "pcs", Active: true},
		{Name: "M3 hex nut", IPN: "FAS-0002", CategoryPK: fasteners.PK, Units: "pcs", Active: true},
		{Name: "10k resistor 0603", IPN: "ELC-0001", CategoryPK: electronics.PK, Units: "pcs", Active: true},
	}

	for i, p := range demoParts {
		stored, err := d.database.SetPart(p)
		if err != nil {
			return err
		}
		_, err = d.database.SetStockItem(schema.StockItem{
			PartPK:     stored.PK,
			LocationPK: shelf.PK,
			Quantity:   float64(25 * (i + 1)),
		})
		if err != nil {
			return err
		}
	}

	// One demo order of each kind
	orders := []schema.Order{
		{Kind: schema.OrderKindPurchase, Reference: "PO-0001", Status: schema.OrderStatusPending,
			Description: "Fastener restock"},
		{Kind: schema.OrderKindSales, Reference: "SO-0001", Status: schema.OrderStatusPending,
			Description: "Sample kit"},
		{Kind: schema.OrderKindBuild, Reference: "BO-0001", Status: schema.OrderStatusPending,
			Description: "Demo assembly"},
	}
	for _, o := range orders {
		if _, err = d.database.SetOrder(o); err != nil {
			return err
		}
	}

	return nil
}
