/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// ServerInfo describes the connected backend instance. It is fetched once
// per session from EndpointServerInfo and cached by the client session
// store; a failed refresh leaves the previous value in place.
type ServerInfo struct {
	Server          string `json:"server" example:"PartDesk"`
	Version         string `json:"version" example:"0.4.2"`
	APIVersion      int    `json:"api_version" example:"1"`
	InstanceName    string `json:"instance_name" example:"PartDesk Demo"`
	PluginsEnabled  bool   `json:"plugins_enabled"`
	WorkerRunning   bool   `json:"worker_running"`
	EmailConfigured bool   `json:"email_configured"`
	DebugMode       bool   `json:"debug_mode"`
}

// SSOProvider describes a single external login provider
type SSOProvider struct {
	Name     string `json:"name" example:"github"`
	Display  string `json:"display,omitempty" example:"GitHub"`
	LoginURL string `json:"login_url" example:"/api/auth/sso/github/"`
}

// AuthConfig describes the authentication configuration of the backend.
// It must be reachable before login, so the endpoint serving it does not
// require credentials.
type AuthConfig struct {
	SSOProviders        []SSOProvider `json:"sso_providers,omitempty"`
	RegistrationEnabled bool          `json:"registration_enabled"`
	PasswordForgotten   bool          `json:"password_forgotten_enabled"`
}

// APIServerInfoResponse wraps ServerInfo for the wire
type APIServerInfoResponse struct {
	Status string     `json:"status" example:"ok"`
	Code   int        `json:"code" example:"200"`
	Data   ServerInfo `json:"data"`
}

// APIAuthConfigResponse wraps AuthConfig for the wire
type APIAuthConfigResponse struct {
	Status string     `json:"status" example:"ok"`
	Code   int        `json:"code" example:"200"`
	Data   AuthConfig `json:"data"`
}
