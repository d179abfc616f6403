//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package db

import (
	"time"

	"github.com/PartDesk/PartDesk/common/schema"
)

// SetPart stores a part record. A zero PK is assigned the next sequence
// number; the stored record is returned.
func (d *DB) SetPart(part schema.Part) (schema.Part, error) {
	if part.PK == 0 {
		pk, err := d.NextID(BucketParts)
		if err != nil {
			return schema.Part{}, err
		}
		part.PK = pk
		part.Created = time.Now()
	}
	return part, d.SetData(BucketParts, RecordKey(part.PK), part)
}

// GetPart retrieves a part by primary key
func (d *DB) GetPart(pk int) (schema.Part, error) {
	var part schema.Part
	err := d.GetData(BucketParts, RecordKey(pk), &part)
	if err != nil {
		return schema.Part{}, err
	}
	return part, nil
}

// DeletePart removes a part record
func (d *DB) DeletePart(pk int) error {
	return d.DeleteData(BucketParts, RecordKey(pk))
}

// ListParts returns all parts in key order
func (d *DB) ListParts() ([]schema.Part, error) {
	var parts []schema.Part
	err := d.Iterate(BucketParts, func(key string, value []byte) error {
		var part schema.Part
		if err := decode(value, &part); err != nil {
			d.logger.Warningf(2220, "skipping corrupt part record %s: %s", key, err.Error())
			return nil
		}
		parts = append(parts, part)
		return nil
	})
	return parts, err
}

// FindPartByIPN returns the first part with a matching internal part number.
// ErrKeyNotFound is returned if no part matches.
func (d *DB) FindPartByIPN(ipn string) (schema.Part, error) {
	var found schema.Part
	var ok bool
	err := d.Iterate(BucketParts, func(key string, value []byte) error {
		if ok {
			return nil
		}
		var part schema.Part
		if decode(value, &part) == nil && part.IPN == ipn {
			found = part
			ok = true
		}
		return nil
	})
	if err != nil {
		return schema.Part{}, err
	}
	if !ok {
		return schema.Part{}, ErrKeyNotFound
	}
	return found, nil
}

// SetCategory stores a category record, assigning a PK if needed
func (d *DB) SetCategory(cat schema.PartCategory) (schema.PartCategory, error) {
	if cat.PK == 0 {
		pk, err := d.NextID(BucketCategories)
		if err != nil {
			return schema.PartCategory{}, err
		}
		cat.PK = pk
	}
	return cat, d.SetData(BucketCategories, RecordKey(cat.PK), cat)
}

// GetCategory retrieves a category by primary key
func (d *DB) GetCategory(pk int) (schema.PartCategory, error) {
	var cat schema.PartCategory
	err := d.GetData(BucketCategories, RecordKey(pk), &cat)
	if err != nil {
		return schema.PartCategory{}, err
	}
	return cat, nil
}

// ListCategories returns all categories in key order
func (d *DB) ListCategories() ([]schema.PartCategory, error) {
	var cats []schema.PartCategory
	err := d.Iterate(BucketCategories, func(key string, value []byte) error {
		var cat schema.PartCategory
		if err := decode(value, &cat); err != nil {
			d.logger.Warningf(2221, "skipping corrupt category record %s: %s", key, err.Error())
			return nil
		}
		cats = append(cats, cat)
		return nil
	})
	return cats, err
}
