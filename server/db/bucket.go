//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"
)

// ErrKeyNotFound is returned when a key does not exist in a bucket
var ErrKeyNotFound = errors.New("key not found")

// SetData serializes and stores data in a specified bucket using a given key
func (d *DB) SetData(bucketName string, key string, value interface{}) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}

	return d.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}

		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to store data in bucket: %w", err)
		}
		return nil
	})
}

// GetData retrieves and deserializes data from a specified bucket
func (d *DB) GetData(bucketName string, key string, result interface{}) error {
	return d.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return ErrKeyNotFound
		}

		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to deserialize data: %w", err)
		}
		return nil
	})
}

// DeleteData removes a key from a bucket. Deleting an absent key is not an
// error.
func (d *DB) DeleteData(bucketName string, key string) error {
	return d.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}
		return bucket.Delete([]byte(key))
	})
}

// Exists reports whether a key is present in a bucket
func (d *DB) Exists(bucketName string, key string) bool {
	found := false
	_ = d.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		found = bucket.Get([]byte(key)) != nil
		return nil
	})
	return found
}

// Iterate walks a bucket in key order, passing each value to fn
func (d *DB) Iterate(bucketName string, fn func(key string, value []byte) error) error {
	return d.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}
		return bucket.ForEach(func(k, v []byte) error {
			return fn(string(k), v)
		})
	})
}

// NextID returns the next sequence number for a bucket. Sequence numbers
// are used as primary keys for parts, stock items, and orders.
func (d *DB) NextID(bucketName string) (int, error) {
	var id uint64
	err := d.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}
		var err error
		id, err = bucket.NextSequence()
		return err
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// RecordKey formats a numeric primary key as a fixed-width bucket key so
// that iteration order matches key order
func RecordKey(pk int) string {
	return fmt.Sprintf("%08d", pk)
}

// decode deserializes a raw bucket value into result
func decode(value []byte, result interface{}) error {
	return json.Unmarshal(value, result)
}
