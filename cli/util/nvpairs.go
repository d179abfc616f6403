//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

// Package util holds small helpers shared by the CLI command packages.
package util

import "strings"

// NVPairs holds field values parsed from key=value command arguments, as
// used by the part and stock create/update commands. Keys are lowercased
// and trimmed; arguments without an equals sign are skipped so positional
// arguments can precede the pairs. A repeated key keeps the last value.
type NVPairs struct {
	Pairs map[string]string
}

func NewNVPairs(args []string) *NVPairs {
	p := &NVPairs{Pairs: make(map[string]string, len(args))}

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		p.Pairs[key] = strings.TrimSpace(value)
	}

	return p
}

// ToMap exposes the parsed pairs for request construction
func (p *NVPairs) ToMap() map[string]string {
	return p.Pairs
}
