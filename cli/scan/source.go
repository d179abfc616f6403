//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package scan

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// stopErr maps a source's end-of-input to a clean stop
func stopErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ReaderSource reads one barcode payload per line. Blank lines are
// skipped so a scanner that sends a trailing newline doesn't produce
// empty scans.
type ReaderSource struct {
	scanner *bufio.Scanner
	reader  io.Reader
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{scanner: bufio.NewScanner(r), reader: r}
}

func (r *ReaderSource) Next() (string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close releases the underlying stream if it can be closed
func (r *ReaderSource) Close() error {
	if c, ok := r.reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// SliceSource replays a fixed list of payloads
type SliceSource struct {
	inputs []string
	pos    int
}

func NewSliceSource(inputs ...string) *SliceSource {
	return &SliceSource{inputs: inputs}
}

func (s *SliceSource) Next() (string, error) {
	if s.pos >= len(s.inputs) {
		return "", io.EOF
	}
	input := s.inputs[s.pos]
	s.pos++
	return input, nil
}

// Close is a no-op; a replay source holds nothing
func (s *SliceSource) Close() error {
	return nil
}
