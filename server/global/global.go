//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package global

import "github.com/PartDesk/PartDesk/common"

const (
	Version          = common.Version
	Build            = common.Build
	Name             = "PDServer"
	LogName          = "pd-server"
	Description      = "PartDesk Server"
	TokenLength      = 64  // Length of the JWT signing key prior to base-64 encoding
	MemoryCacheTTL   = 600 // Time to live for memory cache items in seconds
	ConsoleExitDelay = 5   // seconds to wait so that the user can read console output when exiting
)

var (
	ConfigFiles    = []string{"/etc/pd-server.conf", "/usr/local/etc/pd-server.conf", "pd-server.conf"}
	DataPaths      = []string{"/var/lib/pd-server", "/opt/pd-server", "pd-server-data"}
	Debug          = false
	ListenOverride = ""
)
