/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"github.com/PartDesk/PartDesk/cli/util"
	"github.com/PartDesk/PartDesk/common/schema"
)

// Get sends a GET request to the specified endpoint and returns the response
// body. Successful responses are cached so repeated fetches of the same
// record within one invocation chain hit the server once.
func (c *Communications) Get(endpoint string) (int, []byte, error) {
	path := schema.Resolve(endpoint)

	if data := c.cache.Get(path); data != nil {
		return 200, data, nil
	}

	code, data, err := c.sendRequest("GET", path, nil)
	if err == nil && code == 200 {
		c.cache.Set(path, data)
	}
	return code, data, err
}

// GetQuery accepts pairs and turns them into query parameters for a GET
// request to the specified endpoint. The endpoint is resolved first so the
// query string is appended to a concrete path.
func (c *Communications) GetQuery(endpoint string, pairs *util.NVPairs) (int, []byte, error) {
	query := ""

	// Iterate through the pairs and add them to the URL as query parameters
	if pairs != nil {
		for n, v := range pairs.Pairs {
			if query == "" {
				query += "?"
			} else {
				query += "&"
			}
			query += n + "=" + v
		}
	}
	return c.sendRequest("GET", schema.Resolve(endpoint)+query, nil)
}
