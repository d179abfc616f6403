//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package data

import (
	"errors"
	"strconv"

	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/db"
)

// ImportRow commits one accepted import row. Commits are idempotent: a
// row ID that was already imported is reported as a duplicate and no new
// record is created.
func (d *Data) ImportRow(req schema.ImportRowRequest) (schema.APIImportRowResponse, error) {

	if req.RowID == "" {
		return schema.APIImportRowResponse{}, &schema.ValidationError{Fields: map[string][]string{
			"row_id": {"This field may not be blank."},
		}}
	}

	// Replay of a committed row
	prior, err := d.database.GetImportRecord(req.RowID)
	if err == nil {
		return schema.APIImportRowResponse{
			Status:    schema.APIStatusOK,
			Code:      200,
			RowID:     req.RowID,
			Duplicate: true,
			PK:        prior.PK,
		}, nil
	}
	if !errors.Is(err, db.ErrKeyNotFound) {
		return schema.APIImportRowResponse{}, err
	}

	var pk int
	switch req.Model {
	case "part":
		pk, err = d.importPart(req.Values)
	case "stock":
		pk, err = d.importStock(req.Values)
	default:
		err = &schema.ValidationError{Fields: map[string][]string{
			"model": {"Model must be part or stock."},
		}}
	}
	if err != nil {
		return schema.APIImportRowResponse{}, err
	}

	if err = d.database.SetImportRecord(req.RowID, req.Model, pk); err != nil {
		return schema.APIImportRowResponse{}, err
	}

	return schema.APIImportRowResponse{
		Status:  schema.APIStatusOK,
		Code:    201,
		RowID:   req.RowID,
		Created: true,
		PK:      pk,
	}, nil
}

// importPart maps row values onto a part request and creates the part
func (d *Data) importPart(values map[string]string) (int, error) {
	req := schema.PartRequest{
		Name:        values["name"],
		IPN:         values["ipn"],
		Description: values["description"],
		Units:       values["units"],
		Active:      true,
	}
	if v := values["category"]; v != "" {
		req.CategoryPK, _ = strconv.Atoi(v)
	}

	part, err := d.CreatePart(req)
	if err != nil {
		return 0, err
	}
	return part.PK, nil
}

// importStock maps row values onto a stock item request and creates the item
func (d *Data) importStock(values map[string]string) (int, error) {
	req := schema.StockItemRequest{
		Batch:  values["batch"],
		Serial: values["serial"],
	}
	if v := values["part"]; v != "" {
		req.PartPK, _ = strconv.Atoi(v)
	}
	if v := values["location"]; v != "" {
		req.LocationPK, _ = strconv.Atoi(v)
	}
	if v := values["quantity"]; v != "" {
		q, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, &schema.ValidationError{Fields: map[string][]string{
				"quantity": {"A valid number is required."},
			}}
		}
		req.Quantity = q
	}

	item, err := d.CreateStockItem(req)
	if err != nil {
		return 0, err
	}
	return item.PK, nil
}
