/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PartDesk/PartDesk/common/interfaces"
	"github.com/PartDesk/PartDesk/common/pconf"
)

type ServerConfig struct {
	C  interfaces.Config     // Config object
	SC interfaces.Parameters // Server configuration
	SP interfaces.Parameters // Server private configuration
}

// Config creates the configuration object, sets defaults, and loads the
// configuration from the file system. The first config file that exists is
// used; if none exists the last candidate is created on checkpoint.
func Config() (*ServerConfig, error) {
	var err error
	c := &ServerConfig{}

	file := findConfigFile(ConfigFiles)
	c.C, err = pconf.New(pconf.WithFile(file))
	if err != nil {
		return &ServerConfig{}, err
	}

	// Loading an absent file is fine on first run; defaults apply
	_ = c.C.Load(file)

	// SC is the general server configuration set, SP is the private set
	c.SC, c.SP = setDefaults(c.C)

	// Check for a data path
	dPath := c.SC.Get(ConfigDataPath).String()
	if dPath == "" {
		for _, path := range DataPaths {
			if createDir(path) {
				dPath = path
				break
			}
		}

		if dPath == "" {
			return &ServerConfig{}, fmt.Errorf("unable to determine or create data directory")
		}
		c.SC.Set(ConfigDataPath, dPath)
	}

	// Make sure there is a database path
	dbPath := c.SC.Get(ConfigDBPath).String()
	if dbPath == "" {
		dbPath = filepath.Join(dPath, "db")
		if !createDir(dbPath) {
			return &ServerConfig{}, fmt.Errorf("unable to create database directory in %s", dPath)
		}
		c.SC.Set(ConfigDBPath, dbPath)
	}

	// Persist any values established above
	if err = c.C.Checkpoint(); err != nil {
		return &ServerConfig{}, fmt.Errorf("unable to save configuration: %w", err)
	}

	return c, nil
}

// findConfigFile returns the first candidate that exists, or the last
// candidate so that a new file can be created there
func findConfigFile(candidates []string) string {
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			return f
		}
	}
	return candidates[len(candidates)-1]
}

// createDir returns true if the directory exists or was created
func createDir(path string) bool {
	if info, err := os.Stat(path); err == nil {
		return info.IsDir()
	}
	return os.MkdirAll(path, 0755) == nil
}
