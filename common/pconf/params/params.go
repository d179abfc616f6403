/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package params implements a simple key/value store that can be
// serialized to JSON. Values are stored as strings and converted to the
// caller's type on access.
package params

import (
	"encoding/base64"
	"fmt"

	"github.com/PartDesk/PartDesk/common/interfaces"
)

// Ensure Params implements the Parameters interface
var _ interfaces.Parameters = (*Params)(nil)

type Element struct {
	Value   Value `json:"value"`
	Default Value `json:"default"`
}

type Params struct {
	Data map[string]Element
}

// New returns an initialized Params object
func New() Params {
	return Params{Data: make(map[string]Element)}
}

// Exists checks if a key exists in the Params object
func (p *Params) Exists(key string) bool {
	_, ok := p.Data[key]
	return ok
}

// Set a key/value pair in the Params object. Byte slices are base64
// encoded so they survive the JSON round trip.
func (p *Params) Set(key string, value any) {
	element, ok := p.Data[key]
	if !ok {
		element = Element{}
	}
	switch v := value.(type) {
	case []byte:
		element.Value = Value(base64.StdEncoding.EncodeToString(v))
	default:
		element.Value = Value(fmt.Sprintf("%v", value))
	}
	p.Data[key] = element
}

// SetDefault sets a default value for a key in the Params object
func (p *Params) SetDefault(key string, value any) {
	element, ok := p.Data[key]
	if !ok {
		element = Element{}
	}
	element.Default = Value(fmt.Sprintf("%v", value))
	p.Data[key] = element
}

// Delete clears the value for a key but leaves the default in place
func (p *Params) Delete(key string) {
	element, ok := p.Data[key]
	if !ok {
		return
	}
	element.Value = ""
	p.Data[key] = element
}

// Get a Value from the Params object, falling back to the default when the
// value is empty
func (p *Params) Get(key string) interfaces.ParameterValue {
	element, ok := p.Data[key]
	if !ok {
		return NewValue()
	}

	if element.Value == "" {
		return element.Default
	}
	return element.Value
}

// GetMap returns all parameters as a map of strings, using defaults where
// no value is set
func (p *Params) GetMap() map[string]string {
	m := make(map[string]string, len(p.Data))
	for key, element := range p.Data {
		if element.Value == "" {
			m[key] = element.Default.String()
		} else {
			m[key] = element.Value.String()
		}
	}
	return m
}
