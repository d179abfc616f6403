//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package params

import (
	"encoding/base64"
	"strconv"

	"github.com/PartDesk/PartDesk/common/interfaces"
)

// Ensure Value implements the ParameterValue interface
var _ interfaces.ParameterValue = (*Value)(nil)

type Value string

// NewValue is a convenience function that returns "" as a ParameterValue
func NewValue() interfaces.ParameterValue {
	return Value("")
}

// String converts a Value to a string type
func (v Value) String() string {
	return string(v)
}

// Int converts a Value to an int type, 0 if not parseable
func (v Value) Int() int {
	i, err := strconv.Atoi(v.String())
	if err != nil {
		return 0
	}
	return i
}

// Bool converts a Value to a bool type, false if not parseable
func (v Value) Bool() bool {
	b, err := strconv.ParseBool(v.String())
	if err != nil {
		return false
	}
	return b
}

// Bytes decodes a base64-encoded Value, nil if empty or not decodable.
// Binary values are stored with Set([]byte), which encodes them.
func (v Value) Bytes() []byte {
	if v == "" {
		return nil
	}
	b, err := base64.StdEncoding.DecodeString(v.String())
	if err != nil {
		return nil
	}
	return b
}
