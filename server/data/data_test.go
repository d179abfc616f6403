//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package data

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PartDesk/PartDesk/common/null"
	"github.com/PartDesk/PartDesk/common/pconf"
	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/db"
	"github.com/PartDesk/PartDesk/server/global"
)

func newTestData(t *testing.T) *Data {
	t.Helper()

	c, err := pconf.New()
	require.NoError(t, err)

	conf := &global.ServerConfig{C: c}
	conf.SC = c.NewSet(global.ConfigServerSet)
	conf.SP = c.NewSet(global.ConfigPrivate)
	conf.SC.Set(global.ConfigAccessTokenLife, 60)
	conf.SC.Set(global.ConfigRefreshTokenLife, 120)
	conf.SC.Set(global.ConfigInstanceName, "Test Bench")

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"), null.Logger())
	require.NoError(t, err)
	t.Cleanup(database.Close)

	return &Data{
		logger:   null.Logger(),
		conf:     conf,
		database: database,
		jwtKey:   []byte("0123456789abcdef0123456789abcdef"),
	}
}

// fixture creates a part and a location and returns their PKs
func fixture(t *testing.T, d *Data) (int, int) {
	t.Helper()
	part, err := d.CreatePart(schema.PartRequest{Name: "M3x8 cap screw", IPN: "FAS-0001", Active: true})
	require.NoError(t, err)
	loc, err := d.database.SetLocation(schema.StockLocation{Name: "Shelf A1"})
	require.NoError(t, err)
	return part.PK, loc.PK
}

func fieldErrors(t *testing.T, err error) *schema.ValidationError {
	t.Helper()
	var vErr *schema.ValidationError
	require.True(t, errors.As(err, &vErr), "expected a validation error, got %v", err)
	return vErr
}

func TestCreatePartValidation(t *testing.T) {
	d := newTestData(t)

	_, err := d.CreatePart(schema.PartRequest{Name: ""})
	vErr := fieldErrors(t, err)
	assert.Equal(t, []string{"This field may not be blank."}, vErr.FieldErrors("name"))
}

func TestPartInStockTotal(t *testing.T) {
	d := newTestData(t)
	partPK, locPK := fixture(t, d)

	_, err := d.CreateStockItem(schema.StockItemRequest{PartPK: partPK, LocationPK: locPK, Quantity: 25})
	require.NoError(t, err)
	_, err = d.CreateStockItem(schema.StockItemRequest{PartPK: partPK, LocationPK: locPK, Quantity: 50})
	require.NoError(t, err)

	part, err := d.GetPart(partPK)
	require.NoError(t, err)
	assert.Equal(t, 75.0, part.InStock)

	parts, err := d.ListParts()
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, 75.0, parts[0].InStock)
}

func TestCreateStockItemRejectsNegativeQuantity(t *testing.T) {
	d := newTestData(t)
	partPK, locPK := fixture(t, d)

	_, err := d.CreateStockItem(schema.StockItemRequest{
		PartPK: partPK, LocationPK: locPK, Quantity: -1})

	vErr := fieldErrors(t, err)
	assert.Equal(t, []string{MsgQuantityNegative}, vErr.FieldErrors("quantity"))

	// The rejected item was not persisted
	items, err := d.ListStock(0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateStockItemValidation(t *testing.T) {
	d := newTestData(t)

	// Missing part, unknown location, and negative quantity are all
	// reported in one response
	_, err := d.CreateStockItem(schema.StockItemRequest{LocationPK: 99, Quantity: -5})

	vErr := fieldErrors(t, err)
	assert.NotEmpty(t, vErr.FieldErrors("part"))
	assert.NotEmpty(t, vErr.FieldErrors("location"))
	assert.NotEmpty(t, vErr.FieldErrors("quantity"))
}

func TestTransferStockWholeItem(t *testing.T) {
	d := newTestData(t)
	partPK, locPK := fixture(t, d)
	dest, err := d.database.SetLocation(schema.StockLocation{Name: "Shelf B2"})
	require.NoError(t, err)

	item, err := d.CreateStockItem(schema.StockItemRequest{PartPK: partPK, LocationPK: locPK, Quantity: 10})
	require.NoError(t, err)

	// Zero quantity moves the whole item
	moved, err := d.TransferStock(item.PK, schema.StockTransferRequest{LocationPK: dest.PK})
	require.NoError(t, err)
	assert.Equal(t, item.PK, moved.PK)
	assert.Equal(t, dest.PK, moved.LocationPK)
	assert.Equal(t, 10.0, moved.Quantity)

	items, err := d.ListStock(partPK)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTransferStockPartialSplits(t *testing.T) {
	d := newTestData(t)
	partPK, locPK := fixture(t, d)
	dest, err := d.database.SetLocation(schema.StockLocation{Name: "Shelf B2"})
	require.NoError(t, err)

	item, err := d.CreateStockItem(schema.StockItemRequest{PartPK: partPK, LocationPK: locPK, Quantity: 10})
	require.NoError(t, err)

	split, err := d.TransferStock(item.PK, schema.StockTransferRequest{LocationPK: dest.PK, Quantity: 4})
	require.NoError(t, err)
	assert.NotEqual(t, item.PK, split.PK)
	assert.Equal(t, dest.PK, split.LocationPK)
	assert.Equal(t, 4.0, split.Quantity)

	source, err := d.GetStockItem(item.PK)
	require.NoError(t, err)
	assert.Equal(t, 6.0, source.Quantity)

	// The part total is unchanged by a transfer
	part, err := d.GetPart(partPK)
	require.NoError(t, err)
	assert.Equal(t, 10.0, part.InStock)
}

func TestTransferStockValidation(t *testing.T) {
	d := newTestData(t)
	partPK, locPK := fixture(t, d)

	item, err := d.CreateStockItem(schema.StockItemRequest{PartPK: partPK, LocationPK: locPK, Quantity: 10})
	require.NoError(t, err)

	_, err = d.TransferStock(item.PK, schema.StockTransferRequest{LocationPK: locPK, Quantity: 11})
	vErr := fieldErrors(t, err)
	assert.NotEmpty(t, vErr.FieldErrors("quantity"))

	_, err = d.TransferStock(item.PK, schema.StockTransferRequest{LocationPK: 99})
	vErr = fieldErrors(t, err)
	assert.NotEmpty(t, vErr.FieldErrors("location"))

	// Unknown stock item is a lookup failure, not a validation error
	_, err = d.TransferStock(999, schema.StockTransferRequest{LocationPK: locPK})
	assert.True(t, errors.Is(err, db.ErrKeyNotFound))
}

func TestResolveBarcodePart(t *testing.T) {
	d := newTestData(t)
	partPK, _ := fixture(t, d)

	resp, err := d.ResolveBarcode(`{"part": 1}`)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "/api/part/1/", resp.URL)
	require.NotNil(t, resp.Match)
	assert.Equal(t, "part", resp.Match.Kind)
	assert.Equal(t, partPK, resp.Match.PK)
	assert.Equal(t, "M3x8 cap screw", resp.Match.Name)
}

func TestResolveBarcodeStockItem(t *testing.T) {
	d := newTestData(t)
	partPK, locPK := fixture(t, d)

	item, err := d.CreateStockItem(schema.StockItemRequest{PartPK: partPK, LocationPK: locPK, Quantity: 5})
	require.NoError(t, err)

	resp, err := d.ResolveBarcode(`{"stockitem": 1}`)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "/api/stock/1/", resp.URL)
	assert.Equal(t, "stockitem", resp.Match.Kind)
	assert.Equal(t, item.PK, resp.Match.PK)
}

func TestResolveBarcodeNoMatch(t *testing.T) {
	d := newTestData(t)

	// Unknown record: success false, no error
	resp, err := d.ResolveBarcode(`{"part": 42}`)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "no matching records found", resp.Details)
	assert.Nil(t, resp.Match)

	// Unknown key
	resp, err = d.ResolveBarcode(`{"widget": 1}`)
	require.NoError(t, err)
	assert.False(t, resp.Success)

	// Not JSON at all
	resp, err = d.ResolveBarcode(`garbage`)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestImportRowIdempotent(t *testing.T) {
	d := newTestData(t)

	req := schema.ImportRowRequest{
		RowID: "row-abc",
		Model: "part",
		Values: map[string]string{
			"name": "M4 washer",
			"ipn":  "FAS-0103",
		},
	}

	first, err := d.ImportRow(req)
	require.NoError(t, err)
	assert.Equal(t, 201, first.Code)
	assert.True(t, first.Created)
	assert.NotZero(t, first.PK)

	// Replaying the same row ID creates nothing
	second, err := d.ImportRow(req)
	require.NoError(t, err)
	assert.Equal(t, 200, second.Code)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.PK, second.PK)

	parts, err := d.ListParts()
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}

func TestImportRowValidation(t *testing.T) {
	d := newTestData(t)
	partPK, _ := fixture(t, d)

	// Blank row ID
	_, err := d.ImportRow(schema.ImportRowRequest{Model: "part"})
	vErr := fieldErrors(t, err)
	assert.NotEmpty(t, vErr.FieldErrors("row_id"))

	// Unknown model
	_, err = d.ImportRow(schema.ImportRowRequest{RowID: "r1", Model: "widget"})
	vErr = fieldErrors(t, err)
	assert.NotEmpty(t, vErr.FieldErrors("model"))

	// Bad quantity in a stock row
	_, err = d.ImportRow(schema.ImportRowRequest{
		RowID: "r2", Model: "stock",
		Values: map[string]string{"part": "1", "quantity": "lots"}})
	vErr = fieldErrors(t, err)
	assert.Equal(t, []string{"A valid number is required."}, vErr.FieldErrors("quantity"))

	// A failed row is not recorded, so a retry with the same ID can succeed
	resp, err := d.ImportRow(schema.ImportRowRequest{
		RowID: "r2", Model: "stock",
		Values: map[string]string{"part": "1", "quantity": "3"}})
	require.NoError(t, err)
	assert.True(t, resp.Created)

	items, err := d.ListStock(partPK)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTokenRoundTrip(t *testing.T) {
	d := newTestData(t)

	require.NoError(t, d.SetAuth("admin", "inventree", schema.RoleAdmin))

	access, refresh, err := d.LoginGetToken("admin", "inventree")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	subject, role, err := d.ValidateToken(access, schema.TokenPurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
	assert.Equal(t, schema.RoleAdmin, role)

	// A refresh token is not valid as an access token
	_, _, err = d.ValidateToken(refresh, schema.TokenPurposeAccess)
	assert.Error(t, err)

	// But it mints a new access token
	newAccess, err := d.RefreshToken(refresh)
	require.NoError(t, err)
	subject, _, err = d.ValidateToken(newAccess, schema.TokenPurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLoginBadCredentials(t *testing.T) {
	d := newTestData(t)
	require.NoError(t, d.SetAuth("admin", "inventree", schema.RoleAdmin))

	_, _, err := d.LoginGetToken("admin", "wrong")
	assert.Error(t, err)

	_, _, err = d.LoginGetToken("nobody", "inventree")
	assert.Error(t, err)
}

func TestCategoryTree(t *testing.T) {
	d := newTestData(t)

	root, err := d.database.SetCategory(schema.PartCategory{Name: "Fasteners"})
	require.NoError(t, err)
	child, err := d.database.SetCategory(schema.PartCategory{Name: "Screws", ParentPK: root.PK})
	require.NoError(t, err)
	grandchild, err := d.database.SetCategory(schema.PartCategory{Name: "Cap screws", ParentPK: child.PK})
	require.NoError(t, err)
	_, err = d.database.SetCategory(schema.PartCategory{Name: "Electronics"})
	require.NoError(t, err)

	tree, err := d.CategoryTree(root.PK)
	require.NoError(t, err)

	// Root first, parents before children, unrelated roots excluded
	require.Len(t, tree, 3)
	assert.Equal(t, root.PK, tree[0].PK)
	assert.Equal(t, child.PK, tree[1].PK)
	assert.Equal(t, grandchild.PK, tree[2].PK)
}

func TestAllocateBuildStock(t *testing.T) {
	d := newTestData(t)
	partPK, locPK := fixture(t, d)

	item, err := d.CreateStockItem(schema.StockItemRequest{PartPK: partPK, LocationPK: locPK, Quantity: 10})
	require.NoError(t, err)

	build, err := d.CreateOrder(schema.Order{Kind: schema.OrderKindBuild, Reference: "BO-0001"})
	require.NoError(t, err)

	order, err := d.AllocateBuildStock(build.PK, schema.BuildAllocateRequest{
		StockItemPK: item.PK, Quantity: 4})
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	assert.Equal(t, partPK, order.Lines[0].PartPK)
	assert.Equal(t, 4.0, order.Lines[0].Received)

	remaining, err := d.GetStockItem(item.PK)
	require.NoError(t, err)
	assert.Equal(t, 6.0, remaining.Quantity)

	// Consuming the rest removes the stock item
	_, err = d.AllocateBuildStock(build.PK, schema.BuildAllocateRequest{
		StockItemPK: item.PK, Quantity: 6})
	require.NoError(t, err)

	_, err = d.GetStockItem(item.PK)
	assert.True(t, errors.Is(err, db.ErrKeyNotFound))
}

func TestAllocateRejectsNonBuildOrders(t *testing.T) {
	d := newTestData(t)
	partPK, locPK := fixture(t, d)

	item, err := d.CreateStockItem(schema.StockItemRequest{PartPK: partPK, LocationPK: locPK, Quantity: 10})
	require.NoError(t, err)

	po, err := d.CreateOrder(schema.Order{Kind: schema.OrderKindPurchase, Reference: "PO-0001"})
	require.NoError(t, err)

	_, err = d.AllocateBuildStock(po.PK, schema.BuildAllocateRequest{StockItemPK: item.PK, Quantity: 1})
	vErr := fieldErrors(t, err)
	assert.NotEmpty(t, vErr.FieldErrors("order"))
}

func TestServerInfo(t *testing.T) {
	d := newTestData(t)

	info := d.ServerInfo()
	assert.Equal(t, "PartDesk", info.Server)
	assert.Equal(t, APIVersion, info.APIVersion)
	assert.Equal(t, "Test Bench", info.InstanceName)
}
