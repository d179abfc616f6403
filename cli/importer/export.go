//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PartDesk/PartDesk/cli/global"
	"github.com/PartDesk/PartDesk/common/schema"
)

// ExportParts fetches the part list and writes it as CSV. The header row
// uses the same field names the import wizard accepts, so an exported file
// can be re-imported unchanged.
func ExportParts(c global.Comms, w io.Writer) (int, error) {
	code, data, err := c.Get(schema.EndpointPartList)
	if err != nil {
		return 0, fmt.Errorf("part list fetch failed: %w", err)
	}
	if code != 200 {
		return 0, fmt.Errorf("part list fetch failed with HTTP status %d", code)
	}

	var resp schema.APIPartListResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return 0, fmt.Errorf("failed to unmarshal part list: %w", err)
	}

	writer := csv.NewWriter(w)
	if err = writer.Write([]string{"name", "ipn", "description", "category", "units"}); err != nil {
		return 0, err
	}

	for _, p := range resp.Data {
		record := []string{p.Name, p.IPN, p.Description, strconv.Itoa(p.CategoryPK), p.Units}
		if err = writer.Write(record); err != nil {
			return 0, err
		}
	}

	writer.Flush()
	return len(resp.Data), writer.Error()
}

// ExportStock fetches the stock list and writes it as CSV
func ExportStock(c global.Comms, w io.Writer) (int, error) {
	code, data, err := c.Get(schema.EndpointStockList)
	if err != nil {
		return 0, fmt.Errorf("stock list fetch failed: %w", err)
	}
	if code != 200 {
		return 0, fmt.Errorf("stock list fetch failed with HTTP status %d", code)
	}

	var resp schema.APIStockListResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return 0, fmt.Errorf("failed to unmarshal stock list: %w", err)
	}

	writer := csv.NewWriter(w)
	if err = writer.Write([]string{"part", "location", "quantity", "batch", "serial"}); err != nil {
		return 0, err
	}

	for _, s := range resp.Data {
		record := []string{
			strconv.Itoa(s.PartPK),
			strconv.Itoa(s.LocationPK),
			strconv.FormatFloat(s.Quantity, 'f', -1, 64),
			s.Batch,
			s.Serial,
		}
		if err = writer.Write(record); err != nil {
			return 0, err
		}
	}

	writer.Flush()
	return len(resp.Data), writer.Error()
}
