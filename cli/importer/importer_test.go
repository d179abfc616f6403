/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package importer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PartDesk/PartDesk/cli/util"
	"github.com/PartDesk/PartDesk/common/schema"
)

// fakeComms imitates the server's import endpoint: it records every row ID
// it has seen and reports replays as duplicates
type fakeComms struct {
	seen    map[string]int // row ID to assigned PK
	nextPK  int
	rejects map[string]map[string][]string // values["name"] to field errors
	posts   int
}

func newFakeComms() *fakeComms {
	return &fakeComms{seen: make(map[string]int), rejects: make(map[string]map[string][]string)}
}

func (f *fakeComms) SetToken(_ string) {}

func (f *fakeComms) Post(_ string, payload interface{}) (int, []byte, error) {
	f.posts++
	req := payload.(schema.ImportRowRequest)

	if pk, ok := f.seen[req.RowID]; ok {
		data, _ := json.Marshal(schema.APIImportRowResponse{
			Status: "ok", Code: 200, RowID: req.RowID, Duplicate: true, PK: pk})
		return 200, data, nil
	}

	if fieldErrors, ok := f.rejects[req.Values["name"]]; ok {
		data, _ := json.Marshal(schema.APIImportRowResponse{
			Status: "error", Code: 400, RowID: req.RowID, Errors: fieldErrors})
		return 400, data, nil
	}

	f.nextPK++
	f.seen[req.RowID] = f.nextPK
	data, _ := json.Marshal(schema.APIImportRowResponse{
		Status: "ok", Code: 201, RowID: req.RowID, Created: true, PK: f.nextPK})
	return 201, data, nil
}

func (f *fakeComms) Put(_ string, _ interface{}) (int, []byte, error) { return 0, nil, nil }
func (f *fakeComms) Get(_ string) (int, []byte, error)                { return 0, nil, nil }
func (f *fakeComms) GetQuery(_ string, _ *util.NVPairs) (int, []byte, error) {
	return 0, nil, nil
}
func (f *fakeComms) Delete(_ string) (int, []byte, error) { return 0, nil, nil }

const partCSV = `Name,IPN,Description
M4x10 cap screw,FAS-0100,Stainless
M4 hex nut,FAS-0101,Stainless
M4 washer,FAS-0102,Stainless
`

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "in_stock", NormalizeHeader("In Stock"))
	assert.Equal(t, "in_stock", NormalizeHeader("in-stock"))
	assert.Equal(t, "in_stock", NormalizeHeader(" IN_STOCK "))
	assert.Equal(t, "ipn", NormalizeHeader("IPN"))
}

func TestUploadAutoMaps(t *testing.T) {
	s, err := Upload("part", strings.NewReader(partCSV))
	require.NoError(t, err)

	assert.Equal(t, "part", s.Model)
	assert.Equal(t, []string{"Name", "IPN", "Description"}, s.Headers)
	assert.Equal(t, map[int]string{0: "name", 1: "ipn", 2: "description"}, s.Mapping)

	require.Len(t, s.Rows, 3)
	for i, row := range s.Rows {
		assert.Equal(t, i+1, row.Index)
		assert.True(t, row.Accepted)
		assert.False(t, row.Committed)
		assert.NotEmpty(t, row.ID)
	}

	// Row IDs are unique within the session
	assert.NotEqual(t, s.Rows[0].ID, s.Rows[1].ID)
}

func TestUploadRejectsBadInput(t *testing.T) {
	_, err := Upload("widget", strings.NewReader(partCSV))
	assert.Error(t, err)

	_, err = Upload("part", strings.NewReader("Name,IPN\n"))
	assert.Error(t, err)

	_, err = Upload("part", strings.NewReader(""))
	assert.Error(t, err)
}

func TestMapColumn(t *testing.T) {
	s, err := Upload("part", strings.NewReader("A,B\nx,y\n"))
	require.NoError(t, err)
	require.Empty(t, s.Mapping)

	require.NoError(t, s.MapColumn(0, "name"))
	require.NoError(t, s.MapColumn(1, "ipn"))
	assert.Equal(t, map[int]string{0: "name", 1: "ipn"}, s.Mapping)

	// Empty field unmaps
	require.NoError(t, s.MapColumn(1, ""))
	assert.Equal(t, map[int]string{0: "name"}, s.Mapping)

	assert.Error(t, s.MapColumn(5, "name"))
	assert.Error(t, s.MapColumn(0, "bogus"))
}

func TestCommitRequiresMapping(t *testing.T) {
	s, err := Upload("part", strings.NewReader("A,B\nx,y\n"))
	require.NoError(t, err)

	_, err = s.Commit(newFakeComms())
	assert.Error(t, err)
}

func TestCommit(t *testing.T) {
	s, err := Upload("part", strings.NewReader(partCSV))
	require.NoError(t, err)

	s.Reject(2)

	c := newFakeComms()
	result, err := s.Commit(c)
	require.NoError(t, err)

	assert.Equal(t, Result{Created: 2, Skipped: 1}, result)
	assert.Equal(t, 2, c.posts)

	assert.True(t, s.Rows[0].Committed)
	assert.False(t, s.Rows[1].Committed)
	assert.True(t, s.Rows[2].Committed)
	assert.NotZero(t, s.Rows[0].PK)
}

func TestCommitIsIdempotent(t *testing.T) {
	s, err := Upload("part", strings.NewReader(partCSV))
	require.NoError(t, err)

	c := newFakeComms()
	first, err := s.Commit(c)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Created)

	// A second commit sends nothing; committed rows are reported as
	// duplicates locally
	second, err := s.Commit(c)
	require.NoError(t, err)
	assert.Equal(t, Result{Duplicates: 3}, second)
	assert.Equal(t, 3, c.posts)
}

func TestCommitRetriesFailedRowsWithSameID(t *testing.T) {
	s, err := Upload("part", strings.NewReader(partCSV))
	require.NoError(t, err)

	c := newFakeComms()
	c.rejects["M4 hex nut"] = map[string][]string{"name": {"This field may not be blank."}}

	result, err := s.Commit(c)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 2, Failed: 1}, result)

	failedID := s.Rows[1].ID
	assert.False(t, s.Rows[1].Committed)
	assert.Equal(t, map[string][]string{"name": {"This field may not be blank."}}, s.Rows[1].Errors)

	// The server accepts the row on retry; the row keeps its original ID
	// so the two successful rows are not re-imported
	delete(c.rejects, "M4 hex nut")
	result, err = s.Commit(c)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 1, Duplicates: 2}, result)

	assert.True(t, s.Rows[1].Committed)
	assert.Equal(t, failedID, s.Rows[1].ID)
	assert.Nil(t, s.Rows[1].Errors)
}

func TestCommitDuplicateFromServer(t *testing.T) {
	s, err := Upload("part", strings.NewReader("Name\nM4 washer\n"))
	require.NoError(t, err)

	c := newFakeComms()
	// The server already imported this row ID in an earlier session
	c.seen[s.Rows[0].ID] = 77

	result, err := s.Commit(c)
	require.NoError(t, err)
	assert.Equal(t, Result{Duplicates: 1}, result)
	assert.True(t, s.Rows[0].Committed)
	assert.True(t, s.Rows[0].Duplicate)
	assert.Equal(t, 77, s.Rows[0].PK)
}
