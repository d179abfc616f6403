//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package interfaces

// Cache is a byte-oriented cache with a global time to live
type Cache interface {
	TTL(int)            // Cache time to live in seconds
	Clear()             // Clear the cache
	Set(string, []byte) // Set an item in the cache
	Get(string) []byte  // Get an item from the cache, nil on miss or expiry
}
