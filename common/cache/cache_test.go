/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := New(60)

	assert.Nil(t, c.Get("missing"))

	c.Set("key", []byte("value"))
	assert.Equal(t, []byte("value"), c.Get("key"))

	// Overwrite
	c.Set("key", []byte("other"))
	assert.Equal(t, []byte("other"), c.Get("key"))
}

func TestClear(t *testing.T) {
	c := New(60)
	c.Set("key", []byte("value"))
	c.Clear()
	assert.Nil(t, c.Get("key"))
}

func TestExpiry(t *testing.T) {
	c := New(0)
	c.Set("key", []byte("value"))

	// With a zero TTL everything is already expired
	time.Sleep(10 * time.Millisecond)
	assert.Nil(t, c.Get("key"))

	// Raising the TTL applies to subsequent lookups
	c.TTL(60)
	c.Set("key", []byte("value"))
	assert.Equal(t, []byte("value"), c.Get("key"))
}
