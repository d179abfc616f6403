/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import "net/http"

// Delete sends a DELETE request for the given endpoint. The shared request
// path drops cached GET responses, so a deleted record is never served from
// cache afterwards.
func (c *Communications) Delete(endpoint string) (int, []byte, error) {
	return c.sendRequest(http.MethodDelete, endpoint, nil)
}
