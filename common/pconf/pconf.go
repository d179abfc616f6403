/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package pconf implements file-backed configuration as named sets of
// typed parameters.
package pconf

import (
	"fmt"

	"github.com/PartDesk/PartDesk/common/interfaces"
	"github.com/PartDesk/PartDesk/common/pconf/params"
)

// Ensure PConf implements the Config interface
var _ interfaces.Config = (*PConf)(nil)

// PConf holds all configuration data
type PConf struct {
	file string                   // Path to configuration file
	Sets map[string]params.Params `json:"sets"`
}

// Null returns an empty PConf instance for testing
//
//goland:noinspection GoUnusedExportedFunction
func Null() interfaces.Config {
	return &PConf{
		file: "",
		Sets: make(map[string]params.Params)}
}

// New returns a PConf instance
func New(options ...func(*PConf) error) (interfaces.Config, error) {
	c := &PConf{
		file: "",
		Sets: make(map[string]params.Params)}

	for _, op := range options {
		err := op(c)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// WithFile sets the backing file
func WithFile(file string) func(*PConf) error {
	return func(c *PConf) error {
		c.file = file
		return nil
	}
}

// Init initializes the configuration data
func (c *PConf) Init() {
	for key := range c.Sets {
		c.Sets[key] = params.New()
	}
}

// NewSet creates (or resets) a named parameter set and returns it
func (c *PConf) NewSet(name string) interfaces.Parameters {
	set := params.New()
	c.Sets[name] = set
	return &set
}

// GetSet returns the named parameter set, creating it if required
func (c *PConf) GetSet(name string) interfaces.Parameters {
	set, ok := c.Sets[name]
	if !ok {
		return c.NewSet(name)
	}
	return &set
}

// Save the configuration to the specified file
func (c *PConf) Save(filename string) error {
	if filename != "" {
		c.file = filename
	}

	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.saveFile()
}

// Load the configuration from the specified file
func (c *PConf) Load(filename string) error {
	if filename != "" {
		c.file = filename
	}

	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.loadFile()
}

// Checkpoint saves the configuration to the last loaded file
func (c *PConf) Checkpoint() error {
	if c.file == "" {
		return fmt.Errorf("checkpoint requires a loaded configuration")
	}
	return c.saveFile()
}
