/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package scan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PartDesk/PartDesk/cli/util"
	"github.com/PartDesk/PartDesk/common/schema"
)

// fakeComms resolves barcodes from a fixed table, mimicking the server's
// barcode endpoint
type fakeComms struct {
	matches map[string]schema.BarcodeMatch
	fail    error
	code    int
	posts   int
}

func (f *fakeComms) SetToken(_ string) {}

func (f *fakeComms) Post(_ string, payload interface{}) (int, []byte, error) {
	f.posts++

	if f.fail != nil {
		return 0, nil, f.fail
	}
	if f.code != 0 && f.code != 200 {
		return f.code, nil, nil
	}

	req := payload.(schema.BarcodeRequest)
	resp := schema.APIBarcodeResponse{Status: "ok", Code: 200}

	if match, ok := f.matches[req.Barcode]; ok {
		resp.Success = true
		resp.Match = &match
		resp.URL = fmt.Sprintf("/api/%s/%d/", match.Kind, match.PK)
	} else {
		resp.Details = "no matching records found"
	}

	data, _ := json.Marshal(resp)
	return 200, data, nil
}

func (f *fakeComms) Put(_ string, _ interface{}) (int, []byte, error) { return 0, nil, nil }
func (f *fakeComms) Get(_ string) (int, []byte, error)                { return 0, nil, nil }
func (f *fakeComms) GetQuery(_ string, _ *util.NVPairs) (int, []byte, error) {
	return 0, nil, nil
}
func (f *fakeComms) Delete(_ string) (int, []byte, error) { return 0, nil, nil }

func partComms() *fakeComms {
	return &fakeComms{matches: map[string]schema.BarcodeMatch{
		`{"part": 1}`: {Kind: "part", PK: 1, Name: "M3x8 cap screw"},
	}}
}

func TestScannerStartsIdle(t *testing.T) {
	s := New(partComms())
	assert.Equal(t, StatusIdle, s.Status())
	assert.Empty(t, s.History())
}

func TestScanResolved(t *testing.T) {
	s := New(partComms())

	record, err := s.Scan(`{"part": 1}`)
	require.NoError(t, err)

	assert.Equal(t, StatusResolved, s.Status())
	assert.True(t, record.Success)
	assert.Equal(t, "/api/part/1/", record.URL)
	assert.Equal(t, "part", record.Kind)
	assert.Equal(t, 1, record.PK)
	assert.False(t, record.At.IsZero())
}

func TestScanUnresolved(t *testing.T) {
	s := New(partComms())

	record, err := s.Scan("garbage")
	require.NoError(t, err)

	assert.Equal(t, StatusUnresolved, s.Status())
	assert.False(t, record.Success)
	assert.Empty(t, record.URL)
	assert.Equal(t, "no matching records found", record.Details)
}

func TestScanTransportErrorReturnsToIdle(t *testing.T) {
	s := New(&fakeComms{fail: errors.New("connection refused")})

	_, err := s.Scan(`{"part": 1}`)
	require.Error(t, err)
	assert.Equal(t, StatusIdle, s.Status())

	// A failed submit is not remembered
	assert.Empty(t, s.History())
}

func TestScanServerErrorReturnsToIdle(t *testing.T) {
	s := New(&fakeComms{code: 500})

	_, err := s.Scan(`{"part": 1}`)
	require.Error(t, err)
	assert.Equal(t, StatusIdle, s.Status())
}

func TestReset(t *testing.T) {
	s := New(partComms())

	_, err := s.Scan(`{"part": 1}`)
	require.NoError(t, err)
	require.Equal(t, StatusResolved, s.Status())

	s.Reset()
	assert.Equal(t, StatusIdle, s.Status())
	assert.Len(t, s.History(), 1)
}

func TestHistoryBoundAndOrder(t *testing.T) {
	s := New(partComms(), WithHistorySize(3))

	for i := 0; i < 5; i++ {
		_, err := s.Scan(fmt.Sprintf("code-%d", i))
		require.NoError(t, err)
	}

	history := s.History()
	require.Len(t, history, 3)

	// Most recent first
	assert.Equal(t, "code-4", history[0].Input)
	assert.Equal(t, "code-3", history[1].Input)
	assert.Equal(t, "code-2", history[2].Input)
}

func TestRunConsumesSource(t *testing.T) {
	c := partComms()
	s := New(c)

	var seen []Record
	err := s.Run(NewSliceSource(`{"part": 1}`, "unknown"), func(r Record) {
		seen = append(seen, r)
	})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.True(t, seen[0].Success)
	assert.False(t, seen[1].Success)
	assert.Equal(t, 2, c.posts)
}

func TestReaderSourceSkipsBlankLines(t *testing.T) {
	src := NewReaderSource(strings.NewReader("one\n\n  \ntwo\n"))

	input, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", input)

	input, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, "two", input)

	_, err = src.Next()
	assert.Error(t, err)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "scanning", StatusScanning.String())
	assert.Equal(t, "resolved", StatusResolved.String())
	assert.Equal(t, "unresolved", StatusUnresolved.String())
}

// closableReader records whether Close was called
type closableReader struct {
	io.Reader
	closed bool
}

func (c *closableReader) Close() error {
	c.closed = true
	return nil
}

func TestRunReleasesSource(t *testing.T) {
	s := New(partComms())

	r := &closableReader{Reader: strings.NewReader(`{"part": 1}` + "\n")}
	require.NoError(t, s.Run(NewReaderSource(r), nil))
	assert.True(t, r.closed)

	// Sources without an underlying stream close without error
	assert.NoError(t, NewSliceSource("x").Close())
	assert.NoError(t, NewReaderSource(strings.NewReader("")).Close())
}
