/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// There is deliberate redundancy in the API response structures. More
// specific structures make the API easier to understand and give clients a
// typed target for each endpoint instead of an untyped payload.

// All API responses include the Status and Code fields.

// APIAnyResponse can be used by a client to deserialize any API response.
// When data is included, a more specific struct is usually a better target.
type APIAnyResponse struct {
	Status       string              `json:"status"`                  // API status - see apiMeta.go
	Code         int                 `json:"code"`                    // HTTP status code
	Details      string              `json:"details,omitempty"`       // Optional details about the response
	AccessToken  string              `json:"access_token,omitempty"`  // JWT access token during authentication and refresh
	RefreshToken string              `json:"refresh_token,omitempty"` // JWT refresh token during authentication
	Errors       map[string][]string `json:"errors,omitempty"`        // Field-level validation errors
	Data         any                 `json:"data,omitempty"`          // optional data
}

// APIGenericResponse is used for successful responses that don't require a
// specific structure
type APIGenericResponse struct {
	Status  string `json:"status" example:"ok"`
	Code    int    `json:"code" example:"200"`
	Details string `json:"details,omitempty" example:"request processed"`
}

// APIErrorResponse is the common shape of all 4xx and 5xx responses
type APIErrorResponse struct {
	Status  string              `json:"status" example:"error"`
	Code    int                 `json:"code" example:"400"`
	Details string              `json:"details,omitempty" example:"bad request"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

type APILoginResponse struct {
	Status       string `json:"status" example:"ok"`
	Code         int    `json:"code" example:"200"`
	AccessToken  string `json:"access_token,omitempty" example:"jwt"`
	RefreshToken string `json:"refresh_token,omitempty" example:"jwt"`
}

type APITokenRefreshResponse struct {
	Status      string `json:"status" example:"ok"`
	Code        int    `json:"code" example:"200"`
	AccessToken string `json:"access_token,omitempty" example:"jwt"`
}
