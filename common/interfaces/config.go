/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package interfaces

// Config defines the methods for configuration management
type Config interface {
	Init()
	Load(string) error
	Save(string) error
	Checkpoint() error
	NewSet(string) Parameters
	GetSet(s string) Parameters
}

// Parameters is a named set of typed configuration values
type Parameters interface {
	Exists(key string) bool
	Set(key string, value any)
	SetDefault(key string, value any)
	Delete(key string)
	Get(key string) ParameterValue
	GetMap() map[string]string
}

// ParameterValue converts a stored parameter to the caller's type
type ParameterValue interface {
	String() string
	Int() int
	Bool() bool
	Bytes() []byte
}
