//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package data

import (
	"crypto/rand"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PartDesk/PartDesk/common/interfaces"
	"github.com/PartDesk/PartDesk/server/db"
	"github.com/PartDesk/PartDesk/server/global"
)

type Data struct {
	logger   interfaces.Logger
	conf     *global.ServerConfig
	database *db.DB
	jwtKey   []byte
}

// New creates a new Data instance
func New(conf *global.ServerConfig, logger interfaces.Logger) (*Data, error) {
	var err error

	// Get or create the JWTKey
	jwtKey := conf.SP.Get(global.ConfigJWTKey).Bytes()
	if len(jwtKey) == 0 {

		// Generate a new key
		jwtKey, err = randomBytes(global.TokenLength)
		if err != nil {
			return nil, fmt.Errorf("unable to generate JWT key: %w", err)
		}

		// Save the key to the configuration
		conf.SP.Set(global.ConfigJWTKey, jwtKey)
	}

	// Get database path. If it doesn't exist, it will be created by global.Config()
	dbPath := conf.SC.Get(global.ConfigDBPath).String()
	if dbPath == "" {
		return nil, errors.New("database path missing from configuration")
	}

	dbInstance, err := db.Open(filepath.Join(dbPath, strings.ToLower(global.Name)+".db"), logger)
	if err != nil {
		return nil, fmt.Errorf("unable to open or create database: %w", err)
	}

	return &Data{
		logger:   logger,
		conf:     conf,
		database: dbInstance,
		jwtKey:   jwtKey,
	}, nil
}

// Close anything data-related that requires it.
func (d *Data) Close() {

	// If the data instance is nil, bail
	if d == nil {
		return
	}

	// Close the database connection
	if d.database != nil {
		d.database.Close()
	}
}

// randomBytes returns n cryptographically random bytes
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
