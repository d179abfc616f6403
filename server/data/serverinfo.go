//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package data

import (
	"github.com/PartDesk/PartDesk/common/schema"
	"github.com/PartDesk/PartDesk/server/global"
)

// APIVersion is incremented when the wire protocol changes incompatibly
const APIVersion = 1

// ServerInfo describes this instance for clients
func (d *Data) ServerInfo() schema.ServerInfo {
	return schema.ServerInfo{
		Server:          "PartDesk",
		Version:         global.Version,
		APIVersion:      APIVersion,
		InstanceName:    d.conf.SC.Get(global.ConfigInstanceName).String(),
		PluginsEnabled:  false,
		WorkerRunning:   d.conf.SC.Get(global.ConfigWorkerRunning).Bool(),
		EmailConfigured: d.conf.SC.Get(global.ConfigEmailConfigured).Bool(),
		DebugMode:       global.Debug,
	}
}

// AuthConfig describes the authentication options for clients. It is
// served without credentials so login screens can render before login.
func (d *Data) AuthConfig() schema.AuthConfig {
	return schema.AuthConfig{
		SSOProviders:        nil,
		RegistrationEnabled: d.conf.SC.Get(global.ConfigRegistration).Bool(),
		PasswordForgotten:   d.conf.SC.Get(global.ConfigEmailConfigured).Bool(),
	}
}
