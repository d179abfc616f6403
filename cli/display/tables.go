//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package display

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/PartDesk/PartDesk/common/schema"
)

// Table rendering for list responses. Each renderer decodes the typed list
// response and prints an aligned table; callers that want raw JSON use
// AnyResp instead.

// PartTable renders a part list response as a table
func PartTable(statusCode int, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	if tErr := TypedError(statusCode, data); tErr != nil {
		return tErr
	}

	var resp schema.APIPartListResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	table := newTable("PK", "Name", "IPN", "Category", "In Stock", "Units", "Active")
	for _, p := range resp.Data {
		table.Append([]string{
			strconv.Itoa(p.PK),
			p.Name,
			p.IPN,
			strconv.Itoa(p.CategoryPK),
			formatQty(p.InStock),
			p.Units,
			strconv.FormatBool(p.Active),
		})
	}
	table.Render()
	return nil
}

// StockTable renders a stock list response as a table
func StockTable(statusCode int, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	if tErr := TypedError(statusCode, data); tErr != nil {
		return tErr
	}

	var resp schema.APIStockListResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	table := newTable("PK", "Part", "Location", "Quantity", "Batch", "Serial")
	for _, s := range resp.Data {
		table.Append([]string{
			strconv.Itoa(s.PK),
			strconv.Itoa(s.PartPK),
			strconv.Itoa(s.LocationPK),
			formatQty(s.Quantity),
			s.Batch,
			s.Serial,
		})
	}
	table.Render()
	return nil
}

// LocationTable renders a location list response as a table
func LocationTable(statusCode int, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	if tErr := TypedError(statusCode, data); tErr != nil {
		return tErr
	}

	var resp schema.APILocationListResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	table := newTable("PK", "Name", "Parent")
	for _, l := range resp.Data {
		table.Append([]string{
			strconv.Itoa(l.PK),
			l.Name,
			strconv.Itoa(l.ParentPK),
		})
	}
	table.Render()
	return nil
}

// CategoryTable renders a category list response as a table
func CategoryTable(statusCode int, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	if tErr := TypedError(statusCode, data); tErr != nil {
		return tErr
	}

	var resp schema.APICategoryListResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	table := newTable("PK", "Name", "Parent")
	for _, c := range resp.Data {
		table.Append([]string{
			strconv.Itoa(c.PK),
			c.Name,
			strconv.Itoa(c.ParentPK),
		})
	}
	table.Render()
	return nil
}

// OrderTable renders an order list response as a table
func OrderTable(statusCode int, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	if tErr := TypedError(statusCode, data); tErr != nil {
		return tErr
	}

	var resp schema.APIOrderListResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	table := newTable("PK", "Reference", "Status", "Description", "Lines")
	for _, o := range resp.Data {
		table.Append([]string{
			strconv.Itoa(o.PK),
			o.Reference,
			o.Status,
			o.Description,
			strconv.Itoa(len(o.Lines)),
		})
	}
	table.Render()
	return nil
}

// UserTable renders a user list response as a table
func UserTable(statusCode int, data []byte, err error) error {
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	if tErr := TypedError(statusCode, data); tErr != nil {
		return tErr
	}

	var resp schema.APIUserListResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	table := newTable("User", "Display Name", "Email", "Role")
	for _, u := range resp.Data {
		table.Append([]string{
			u.User,
			u.DisplayName,
			u.Email,
			strconv.Itoa(u.Role),
		})
	}
	table.Render()
	return nil
}

// newTable returns a tablewriter configured for compact CLI output
func newTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

// formatQty trims trailing zeros from a quantity
func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
