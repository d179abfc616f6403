/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/PartDesk/PartDesk/cli/global"
	"github.com/PartDesk/PartDesk/common/schema"
)

// sendRequest performs one HTTP exchange with the server. Endpoints may be
// symbolic names from the registry or literal paths; either way the resolver
// produces the request path. Mutating methods drop cached GET responses
// because they may describe records the mutation just changed.
func (c *Communications) sendRequest(method, endpoint string, payload []byte) (int, []byte, error) {

	url := global.ServerURL + schema.Resolve(endpoint)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", global.Name, global.Version))
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if method != http.MethodGet {
		c.cache.Clear()
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, data, nil
}
