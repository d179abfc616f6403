/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"net/http"
	"time"

	"github.com/PartDesk/PartDesk/cli/global"
	"github.com/PartDesk/PartDesk/common/cache"
	"github.com/PartDesk/PartDesk/common/interfaces"
)

// Ensure that Communications implements the global.Comms interface
var _ global.Comms = &Communications{}

type Communications struct {
	token  string
	cache  interfaces.Cache
	client *http.Client
}

// New returns a new Communications object and optionally accepts a token
func New(token ...string) global.Comms {
	comms := &Communications{
		token:  "",
		cache:  cache.New(global.CacheTTL),
		client: &http.Client{Timeout: global.RequestTimeout * time.Second},
	}
	if len(token) > 0 {
		comms.token = token[0]
	}
	return comms
}

// SetToken replaces the bearer token. Cached responses were fetched under
// the old token's visibility, so the cache is dropped.
func (c *Communications) SetToken(token string) {
	c.token = token
	c.cache.Clear()
}
