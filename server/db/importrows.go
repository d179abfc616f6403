//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package db

import (
	"time"
)

// ImportRecord remembers that a client-chosen row ID was committed, making
// the import endpoint idempotent across retries
type ImportRecord struct {
	RowID    string    `json:"row_id"`
	Model    string    `json:"model"`
	PK       int       `json:"pk"`
	Imported time.Time `json:"imported"`
}

// GetImportRecord retrieves a prior commit for a row ID, or ErrKeyNotFound
func (d *DB) GetImportRecord(rowID string) (ImportRecord, error) {
	var rec ImportRecord
	err := d.GetData(BucketImportRows, rowID, &rec)
	if err != nil {
		return ImportRecord{}, err
	}
	return rec, nil
}

// SetImportRecord stores the commit record for a row ID
func (d *DB) SetImportRecord(rowID string, model string, pk int) error {
	rec := ImportRecord{
		RowID:    rowID,
		Model:    model,
		PK:       pk,
		Imported: time.Now(),
	}
	return d.SetData(BucketImportRows, rowID, rec)
}
