//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package schema

import "time"

// LoginRequest carries user credentials for the login endpoint
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password"`
}

func NewLoginRequest(username, password string) LoginRequest {
	return LoginRequest{Username: username, Password: password}
}

// RefreshRequest exchanges a refresh token for a new access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UserMeta describes a user account
type UserMeta struct {
	User        string    `json:"user" example:"alice"`
	DisplayName string    `json:"display_name,omitempty" example:"Alice Smith"`
	Email       string    `json:"email,omitempty" example:"alice@example.com"`
	Role        int       `json:"role" example:"3"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	LastUpdated time.Time `json:"last_updated,omitempty"`
}

// APIUserResponse wraps a single user record
type APIUserResponse struct {
	Status string   `json:"status" example:"ok"`
	Code   int      `json:"code" example:"200"`
	Data   UserMeta `json:"data"`
}

// APIUserListResponse wraps a list of user records
type APIUserListResponse struct {
	Status string     `json:"status" example:"ok"`
	Code   int        `json:"code" example:"200"`
	Data   []UserMeta `json:"data"`
}
