/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package importer implements the CSV import wizard: upload a file, map
// its columns onto record fields, accept or reject individual rows, and
// commit the accepted rows. Each row carries a client-chosen ID so a
// retried commit never creates duplicates.
package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/PartDesk/PartDesk/cli/global"
	"github.com/PartDesk/PartDesk/common/schema"
)

// Fields accepted per model. Headers are matched against these after
// normalization.
var modelFields = map[string][]string{
	"part":  {"name", "ipn", "description", "category", "units"},
	"stock": {"part", "location", "quantity", "batch", "serial"},
}

// Row is one uploaded CSV row and its import lifecycle
type Row struct {
	ID        string   // client-chosen ID, stable across retries
	Index     int      // 1-based position in the file
	Values    []string // raw cell values
	Accepted  bool
	Committed bool
	Duplicate bool
	PK        int
	Errors    map[string][]string
}

// Session is one import in progress
type Session struct {
	Model   string
	Headers []string       // raw headers from the file
	Mapping map[int]string // column index to field name, unmapped columns absent
	Rows    []Row
}

var lower = cases.Lower(language.English)

// Upload parses a CSV stream and starts an import session. All rows start
// accepted; the caller rejects the ones it doesn't want. Column mapping is
// attempted automatically from the header row.
func Upload(model string, r io.Reader) (*Session, error) {
	if _, ok := modelFields[model]; !ok {
		return nil, fmt.Errorf("unknown import model: %s", model)
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	s := &Session{
		Model:   model,
		Headers: records[0],
		Mapping: make(map[int]string),
	}

	for i, record := range records[1:] {
		s.Rows = append(s.Rows, Row{
			ID:       uuid.New().String(),
			Index:    i + 1,
			Values:   record,
			Accepted: true,
		})
	}

	s.AutoMap()
	return s, nil
}

// AutoMap maps columns whose normalized header matches a known field name
func (s *Session) AutoMap() {
	fields := modelFields[s.Model]
	for i, header := range s.Headers {
		normalized := NormalizeHeader(header)
		for _, field := range fields {
			if normalized == field {
				s.Mapping[i] = field
				break
			}
		}
	}
}

// MapColumn assigns a field to a column, replacing any automatic mapping.
// An empty field unmaps the column.
func (s *Session) MapColumn(column int, field string) error {
	if column < 0 || column >= len(s.Headers) {
		return fmt.Errorf("column %d out of range", column)
	}
	if field == "" {
		delete(s.Mapping, column)
		return nil
	}
	for _, known := range modelFields[s.Model] {
		if field == known {
			s.Mapping[column] = field
			return nil
		}
	}
	return fmt.Errorf("unknown field %q for model %s", field, s.Model)
}

// NormalizeHeader lowercases a header and collapses separators so "In
// Stock", "in-stock", and "in_stock" all normalize identically
func NormalizeHeader(header string) string {
	h := lower.String(strings.TrimSpace(header))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// Accept marks a row (by file position) for import
func (s *Session) Accept(index int) {
	s.setAccepted(index, true)
}

// Reject excludes a row (by file position) from import
func (s *Session) Reject(index int) {
	s.setAccepted(index, false)
}

func (s *Session) setAccepted(index int, accepted bool) {
	for i := range s.Rows {
		if s.Rows[i].Index == index {
			s.Rows[i].Accepted = accepted
			return
		}
	}
}

// rowValues projects a row through the column mapping
func (s *Session) rowValues(row Row) map[string]string {
	values := make(map[string]string)
	for col, field := range s.Mapping {
		if col < len(row.Values) {
			values[field] = row.Values[col]
		}
	}
	return values
}

// Result summarizes a commit
type Result struct {
	Created    int
	Duplicates int
	Failed     int
	Skipped    int
}

// Commit submits every accepted, uncommitted row. Rows that fail keep
// their field errors and stay uncommitted; re-running Commit retries them
// with the same row IDs, so nothing is imported twice.
func (s *Session) Commit(c global.Comms) (Result, error) {
	var result Result

	if len(s.Mapping) == 0 {
		return result, fmt.Errorf("no columns are mapped")
	}

	for i := range s.Rows {
		row := &s.Rows[i]

		if !row.Accepted {
			result.Skipped++
			continue
		}
		if row.Committed {
			result.Duplicates++
			continue
		}

		req := schema.ImportRowRequest{
			RowID:  row.ID,
			Model:  s.Model,
			Values: s.rowValues(*row),
		}

		code, data, err := c.Post(schema.EndpointImport, req)
		if err != nil {
			return result, fmt.Errorf("import request failed: %w", err)
		}

		var resp schema.APIImportRowResponse
		if err = json.Unmarshal(data, &resp); err != nil {
			return result, fmt.Errorf("failed to unmarshal import response: %w", err)
		}

		switch {
		case code == 201 && resp.Created:
			row.Committed = true
			row.PK = resp.PK
			row.Errors = nil
			result.Created++
		case code == 200 && resp.Duplicate:
			row.Committed = true
			row.Duplicate = true
			row.PK = resp.PK
			row.Errors = nil
			result.Duplicates++
		default:
			row.Errors = resp.Errors
			result.Failed++
		}
	}

	return result, nil
}
