/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package credentials holds the session tokens for the current invocation.
// Tokens live only in process memory; the session store persists server
// metadata but never credentials.
package credentials

import "sync"

type holder struct {
	mu      sync.Mutex
	access  string
	refresh string
}

var tokens holder

func SetAccessToken(token string) {
	tokens.mu.Lock()
	defer tokens.mu.Unlock()
	tokens.access = token
}

func SetRefreshToken(token string) {
	tokens.mu.Lock()
	defer tokens.mu.Unlock()
	tokens.refresh = token
}

func GetAccessToken() string {
	tokens.mu.Lock()
	defer tokens.mu.Unlock()
	return tokens.access
}

func GetRefreshToken() string {
	tokens.mu.Lock()
	defer tokens.mu.Unlock()
	return tokens.refresh
}

// AccessExpired discards the access token so the next login attempt falls
// through to the refresh flow
func AccessExpired() {
	tokens.mu.Lock()
	defer tokens.mu.Unlock()
	tokens.access = ""
}

// RefreshExpired discards the refresh token, forcing a full re-login
func RefreshExpired() {
	tokens.mu.Lock()
	defer tokens.mu.Unlock()
	tokens.refresh = ""
}
