//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package e2e

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PartDesk/PartDesk/cli/communications"
	cliglobal "github.com/PartDesk/PartDesk/cli/global"
	"github.com/PartDesk/PartDesk/cli/importer"
	"github.com/PartDesk/PartDesk/cli/scan"
	"github.com/PartDesk/PartDesk/cli/session"
	"github.com/PartDesk/PartDesk/cli/util"
	"github.com/PartDesk/PartDesk/common/schema"
)

func TestSessionFetchesServerInfo(t *testing.T) {
	newServer(t)

	store := session.New("")
	state, err := store.FetchServerInfo(communications.New())
	require.NoError(t, err)

	assert.Equal(t, "PartDesk", state.Server.Server)
	assert.Equal(t, 1, state.Server.APIVersion)
	assert.Equal(t, "E2E Bench", state.Server.InstanceName)
	assert.False(t, store.RegistrationEnabled())
	assert.Equal(t, uint64(1), state.Generation)
}

func TestLoginAndPartList(t *testing.T) {
	newServer(t)
	c, _ := login(t)

	code, data, err := c.Get(schema.EndpointPartList)
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var resp schema.APIPartListResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Len(t, resp.Data, 3)

	// Seeded parts carry their stock totals
	assert.Equal(t, "M3x8 cap screw", resp.Data[0].Name)
	assert.Equal(t, 25.0, resp.Data[0].InStock)
	assert.Equal(t, 75.0, resp.Data[2].InStock)

	// Detail fetch through the resolver
	code, data, err = c.Get(schema.Resolve(schema.EndpointPartDetail, schema.WithPK(1)))
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var detail schema.APIPartResponse
	require.NoError(t, json.Unmarshal(data, &detail))
	assert.Equal(t, "FAS-0001", detail.Data.IPN)
}

func TestUnauthenticatedRequestIsRejected(t *testing.T) {
	newServer(t)

	code, data, err := communications.New().Get(schema.EndpointPartList)
	require.NoError(t, err)
	require.Equal(t, 401, code)

	var resp schema.APIErrorResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.ErrorIs(t, schema.ErrorFromResponse(code, resp), schema.ErrUnauthorized)
}

func TestRefreshToken(t *testing.T) {
	newServer(t)
	_, refreshToken := login(t)

	code, data, err := communications.New().Post(
		schema.EndpointRefresh, schema.RefreshRequest{RefreshToken: refreshToken})
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var resp schema.APITokenRefreshResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.NotEmpty(t, resp.AccessToken)

	// The refreshed token is accepted
	c := communications.New(resp.AccessToken)
	code, _, err = c.Get(schema.EndpointUserMe)
	require.NoError(t, err)
	assert.Equal(t, 200, code)
}

func TestBarcodeScanWorkflow(t *testing.T) {
	newServer(t)
	c, _ := login(t)

	scanner := scan.New(c)
	require.Equal(t, scan.StatusIdle, scanner.Status())

	// A known part barcode resolves to its detail URL
	record, err := scanner.Scan(`{"part": 1}`)
	require.NoError(t, err)
	assert.Equal(t, scan.StatusResolved, scanner.Status())
	assert.True(t, record.Success)
	assert.Equal(t, "/api/part/1/", record.URL)
	assert.Equal(t, "part", record.Kind)

	// The returned URL is a literal path the client can fetch directly
	code, data, err := c.Get(record.URL)
	require.NoError(t, err)
	require.Equal(t, 200, code)
	var part schema.APIPartResponse
	require.NoError(t, json.Unmarshal(data, &part))
	assert.Equal(t, "M3x8 cap screw", part.Data.Name)

	// An unknown barcode is a clean non-match, not an error
	record, err = scanner.Scan(`{"part": 999}`)
	require.NoError(t, err)
	assert.Equal(t, scan.StatusUnresolved, scanner.Status())
	assert.False(t, record.Success)

	// Both scans are remembered, most recent first
	history := scanner.History()
	require.Len(t, history, 2)
	assert.False(t, history[0].Success)
	assert.True(t, history[1].Success)
}

func TestStockValidationError(t *testing.T) {
	newServer(t)
	c, _ := login(t)

	before := stockCount(t, c)

	code, data, err := c.Post(schema.EndpointStockList,
		schema.StockItemRequest{PartPK: 1, LocationPK: 2, Quantity: -1})
	require.NoError(t, err)
	require.Equal(t, 400, code)

	var resp schema.APIErrorResponse
	require.NoError(t, json.Unmarshal(data, &resp))

	typed := schema.ErrorFromResponse(code, resp)
	var vErr *schema.ValidationError
	require.ErrorAs(t, typed, &vErr)
	assert.Equal(t,
		[]string{"Ensure this value is greater than or equal to 0."},
		vErr.FieldErrors("quantity"))

	// The rejected request persisted nothing
	assert.Equal(t, before, stockCount(t, c))
}

// stockCount returns the number of stock items the server holds
func stockCount(t *testing.T, c cliglobal.Comms) int {
	t.Helper()

	code, data, err := c.Get(schema.EndpointStockList)
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var list schema.APIStockListResponse
	require.NoError(t, json.Unmarshal(data, &list))
	return len(list.Data)
}

func TestStockTransfer(t *testing.T) {
	newServer(t)
	c, _ := login(t)

	// Move 5 of stock item 1 from Shelf A1 to the Warehouse (location 1)
	path, err := schema.ResolveStrict(schema.EndpointStockTransfer, schema.WithPK(1))
	require.NoError(t, err)

	code, data, err := c.Post(path, schema.StockTransferRequest{LocationPK: 1, Quantity: 5})
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var resp schema.APIStockItemResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, 1, resp.Data.LocationPK)
	assert.Equal(t, 5.0, resp.Data.Quantity)

	// The split item is new; the source kept the remainder
	assert.NotEqual(t, 1, resp.Data.PK)

	pairs := util.NewNVPairs([]string{"part=1"})
	code, data, err = c.GetQuery(schema.EndpointStockList, pairs)
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var list schema.APIStockListResponse
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list.Data, 2)
	assert.Equal(t, 25.0, list.Data[0].Quantity+list.Data[1].Quantity)
}

func TestImportCommitIsIdempotent(t *testing.T) {
	newServer(t)
	c, _ := login(t)

	csvFile := strings.Join([]string{
		"Name,IPN,Description",
		"M5 bolt,FAS-0201,Zinc plated",
		"M5 nut,FAS-0202,Zinc plated",
	}, "\n")

	s, err := importer.Upload("part", strings.NewReader(csvFile))
	require.NoError(t, err)

	result, err := s.Commit(c)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)

	// Replay the same rows against the server; it reports duplicates and
	// creates nothing
	for i := range s.Rows {
		s.Rows[i].Committed = false
	}
	result, err = s.Commit(c)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 2, result.Duplicates)

	code, data, err := c.Get(schema.EndpointPartList)
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var resp schema.APIPartListResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Len(t, resp.Data, 5) // 3 seeded + 2 imported
}

func TestExportedPartsReimportCleanly(t *testing.T) {
	newServer(t)
	c, _ := login(t)

	var buf bytes.Buffer
	count, err := importer.ExportParts(c, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// The export header matches the import field names, so the file maps
	// automatically
	s, err := importer.Upload("part", &buf)
	require.NoError(t, err)
	assert.Len(t, s.Rows, 3)
	assert.Equal(t, "name", s.Mapping[0])
	assert.Equal(t, "ipn", s.Mapping[1])
}

func TestOrderListsAndAllocation(t *testing.T) {
	newServer(t)
	c, _ := login(t)

	code, data, err := c.Get(schema.EndpointBuildOrderList)
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var orders schema.APIOrderListResponse
	require.NoError(t, json.Unmarshal(data, &orders))
	require.Len(t, orders.Data, 1)
	build := orders.Data[0]
	assert.Equal(t, "BO-0001", build.Reference)

	// Allocate 10 of stock item 1 against the build
	path, err := schema.ResolveStrict(schema.EndpointBuildAllocate, schema.WithPK(build.PK))
	require.NoError(t, err)

	code, data, err = c.Post(path, schema.BuildAllocateRequest{StockItemPK: 1, Quantity: 10})
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var resp schema.APIOrderResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Len(t, resp.Data.Lines, 1)
	assert.Equal(t, 10.0, resp.Data.Lines[0].Received)

	// The allocated quantity left the stock item
	code, data, err = c.Get(schema.Resolve(schema.EndpointStockDetail, schema.WithPK(1)))
	require.NoError(t, err)
	require.Equal(t, 200, code)

	var item schema.APIStockItemResponse
	require.NoError(t, json.Unmarshal(data, &item))
	assert.Equal(t, 15.0, item.Data.Quantity)
}
