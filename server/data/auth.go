/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"math/rand"
	"time"

	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/db"
)

// Auth validates a user id and password and returns the account record
func (d *Data) Auth(id string, pass string) (db.AuthInfo, error) {
	info, err := d.database.CheckAuth(id, pass)
	if err != nil {
		// Impose a random delay to prevent timing attacks and make
		// brute force attacks take longer
		randomDelay()
		return db.AuthInfo{}, err
	}

	return info, nil
}

// SetAuth sets the password and role of a user
func (d *Data) SetAuth(id string, pass string, role int) error {
	return d.database.SetAuth(id, pass, role)
}

// GetUser returns the metadata for one account
func (d *Data) GetUser(id string) (schema.UserMeta, error) {
	info, err := d.database.GetAuth(id)
	if err != nil {
		return schema.UserMeta{}, err
	}
	return schema.UserMeta{
		User:        info.User,
		DisplayName: info.Display,
		Email:       info.Email,
		Role:        info.Role,
		CreatedAt:   info.Created,
		LastUpdated: info.LastLogin,
	}, nil
}

// ListUsers returns the metadata for all accounts
func (d *Data) ListUsers() ([]schema.UserMeta, error) {
	return d.database.ListAuth()
}

// LoginGetToken authenticates a user and returns access and refresh tokens or an error
func (d *Data) LoginGetToken(user string, pass string) (string, string, error) {
	var err error
	var refreshToken, accessToken string

	// Authenticate the user
	info, err := d.Auth(user, pass)
	if err != nil {
		return "", "", err
	}

	accessToken, err = d.createToken(tokenRequest{
		subject: user,
		role:    info.Role,
		purpose: schema.TokenPurposeAccess,
	})
	if err != nil {
		return "", "", err
	}

	refreshToken, err = d.createToken(tokenRequest{
		subject: user,
		role:    info.Role,
		purpose: schema.TokenPurposeRefresh})
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// randomDelay imposes a random delay between 0 and 1000ms
func randomDelay() {
	delay := rand.Intn(1000)
	time.Sleep(time.Duration(delay) * time.Millisecond)
}
