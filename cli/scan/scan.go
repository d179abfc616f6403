/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package scan implements the barcode scan workflow. A Scanner moves
// through idle, scanning, and resolved/unresolved states as payloads are
// submitted, and keeps a bounded history of past scans. Input can come
// from any Source: a hardware scanner feed, stdin, or a test fixture.
package scan

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/PartDesk/PartDesk/cli/global"
	"github.com/PartDesk/PartDesk/common/schema"
)

type Status int

const (
	StatusIdle Status = iota
	StatusScanning
	StatusResolved
	StatusUnresolved
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusScanning:
		return "scanning"
	case StatusResolved:
		return "resolved"
	case StatusUnresolved:
		return "unresolved"
	}
	return "unknown"
}

// Source supplies barcode payloads. Next blocks until a payload is
// available and returns io.EOF when the source is exhausted. Close releases
// whatever the source holds (a device stream, a file); it is safe to call
// after exhaustion.
type Source interface {
	Next() (string, error)
	Close() error
}

// Record is one completed scan
type Record struct {
	Input   string    `json:"input"`
	Success bool      `json:"success"`
	URL     string    `json:"url,omitempty"`
	Kind    string    `json:"kind,omitempty"`
	PK      int       `json:"pk,omitempty"`
	Details string    `json:"details,omitempty"`
	At      time.Time `json:"at"`
}

// DefaultHistorySize bounds the scan history
const DefaultHistorySize = 10

type Scanner struct {
	comms      global.Comms
	status     Status
	history    []Record
	maxHistory int
}

type Option func(*Scanner)

// WithHistorySize overrides the history bound
func WithHistorySize(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

// New returns an idle Scanner that submits scans via c
func New(c global.Comms, opts ...Option) *Scanner {
	s := &Scanner{
		comms:      c,
		status:     StatusIdle,
		maxHistory: DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Status returns the scanner's current state
func (s *Scanner) Status() Status {
	return s.status
}

// History returns past scans, most recent first
func (s *Scanner) History() []Record {
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// Reset returns the scanner to idle without touching the history
func (s *Scanner) Reset() {
	s.status = StatusIdle
}

// Scan submits one barcode payload and returns the outcome. The scanner
// passes through the scanning state and ends resolved or unresolved; a
// transport error returns it to idle so the caller can retry.
func (s *Scanner) Scan(input string) (Record, error) {
	s.status = StatusScanning

	code, data, err := s.comms.Post(schema.EndpointBarcode, schema.BarcodeRequest{Barcode: input})
	if err != nil {
		s.status = StatusIdle
		return Record{}, fmt.Errorf("barcode submit failed: %w", err)
	}
	if code != 200 {
		s.status = StatusIdle
		return Record{}, fmt.Errorf("barcode submit failed with HTTP status %d", code)
	}

	// Pick the fields of interest out of the response. Using path lookups
	// keeps the scanner tolerant of server-side additions.
	record := Record{
		Input:   input,
		Success: gjson.GetBytes(data, "success").Bool(),
		URL:     gjson.GetBytes(data, "url").String(),
		Kind:    gjson.GetBytes(data, "match.kind").String(),
		PK:      int(gjson.GetBytes(data, "match.pk").Int()),
		Details: gjson.GetBytes(data, "details").String(),
		At:      time.Now(),
	}

	if record.Success {
		s.status = StatusResolved
	} else {
		s.status = StatusUnresolved
	}

	s.remember(record)
	return record, nil
}

// Run consumes a source until it is exhausted, reporting each scan to fn.
// A nil fn just accumulates history. The source is closed when the session
// ends, whether by exhaustion or by error.
func (s *Scanner) Run(src Source, fn func(Record)) error {
	defer func() {
		_ = src.Close()
	}()

	for {
		input, err := src.Next()
		if err != nil {
			return stopErr(err)
		}

		record, err := s.Scan(input)
		if err != nil {
			return err
		}
		if fn != nil {
			fn(record)
		}
	}
}

// remember prepends a record and trims the history to its bound
func (s *Scanner) remember(r Record) {
	s.history = append([]Record{r}, s.history...)
	if len(s.history) > s.maxHistory {
		s.history = s.history[:s.maxHistory]
	}
}
