/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package pconf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// loadFile loads configuration from the backing file
func (c *PConf) loadFile() error {
	c.Init()

	file, err := os.Open(c.file)
	if err != nil {
		return fmt.Errorf("error opening file %s: %w", c.file, err)
	}

	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	decoder := json.NewDecoder(file)
	if err = decoder.Decode(&c); err != nil {
		return fmt.Errorf("deserialization error: %w", err)
	}
	return nil
}

// saveFile writes configuration to the backing file
func (c *PConf) saveFile() error {

	// Create the directory if it doesn't exist
	dir := filepath.Dir(c.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("serialization error: %w", err)
	}

	if err = os.WriteFile(c.file, data, 0600); err != nil {
		return fmt.Errorf("error writing file %s: %w", c.file, err)
	}
	return nil
}
