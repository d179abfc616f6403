/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/PartDesk/PartDesk/common/schema"
)

// AuthInfo is the stored record for one user account
type AuthInfo struct {
	User       string    `json:"user"`
	Active     bool      `json:"active"`
	HashedPass string    `json:"hashed_pass"`
	Role       int       `json:"role"`
	Email      string    `json:"email,omitempty"`
	Display    string    `json:"display,omitempty"`
	FailCount  int       `json:"fail_count"`
	LastLogin  time.Time `json:"last_login,omitempty"`
	Created    time.Time `json:"created,omitempty"`
}

// SetAuth hashes the supplied password and stores the account record
func (d *DB) SetAuth(user string, password string, role int) error {
	if user == "" || password == "" {
		return fmt.Errorf("user and password must not be empty")
	}

	hash, err := GenerateHash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	info := AuthInfo{
		User:       user,
		Active:     true,
		HashedPass: hash,
		Role:       role,
		Created:    time.Now(),
	}

	return d.SetData(BucketAuth, user, info)
}

// GetAuth retrieves the account record for a user
func (d *DB) GetAuth(user string) (AuthInfo, error) {
	var info AuthInfo
	err := d.GetData(BucketAuth, user, &info)
	if err != nil {
		return AuthInfo{}, err
	}
	return info, nil
}

// CheckAuth verifies a user's password. It returns the account record on
// success so the caller can read the role. Failed attempts increment the
// account's failure counter.
func (d *DB) CheckAuth(user string, password string) (AuthInfo, error) {
	info, err := d.GetAuth(user)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return AuthInfo{}, fmt.Errorf("unknown user")
		}
		return AuthInfo{}, err
	}

	if !info.Active {
		return AuthInfo{}, fmt.Errorf("account is disabled")
	}

	ok, err := VerifyHash(password, info.HashedPass)
	if err != nil {
		return AuthInfo{}, err
	}

	if !ok {
		info.FailCount++
		_ = d.SetData(BucketAuth, user, info)
		return AuthInfo{}, fmt.Errorf("invalid credentials")
	}

	info.FailCount = 0
	info.LastLogin = time.Now()
	if err = d.SetData(BucketAuth, user, info); err != nil {
		d.logger.Warningf(2210, "failed to update login record for %s: %s", user, err.Error())
	}

	return info, nil
}

// DeleteAuth removes a user account
func (d *DB) DeleteAuth(user string) error {
	return d.DeleteData(BucketAuth, user)
}

// ListAuth returns the metadata for all accounts. Password hashes are not
// included.
func (d *DB) ListAuth() ([]schema.UserMeta, error) {
	var users []schema.UserMeta
	err := d.Iterate(BucketAuth, func(key string, value []byte) error {
		var info AuthInfo
		if err := decode(value, &info); err != nil {
			d.logger.Warningf(2211, "skipping corrupt auth record %s: %s", key, err.Error())
			return nil
		}
		users = append(users, schema.UserMeta{
			User:        info.User,
			DisplayName: info.Display,
			Email:       info.Email,
			Role:        info.Role,
			CreatedAt:   info.Created,
			LastUpdated: info.LastLogin,
		})
		return nil
	})
	return users, err
}
