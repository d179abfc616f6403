/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"github.com/PartDesk/PartDesk/common/interfaces"
)

const (
	ConfigServerSet        = "server_config"
	ConfigLogFile          = "log_file"
	ConfigLogStdout        = "log_stdout"
	ConfigLogRetention     = "log_retention"
	ConfigListen           = "listen"
	ConfigInstanceName     = "instance_name"
	ConfigDataPath         = "data_path"
	ConfigDBPath           = "db_path"
	ConfigHTTPTimeout      = "http_timeout"
	ConfigHTTPIdleTimeout  = "http_idle_timeout"
	ConfigHandlerTimeout   = "handler_timeout"
	ConfigMaxConcurrent    = "max_concurrent"
	ConfigPenaltyBoxMin    = "penalty_box_min"
	ConfigPenaltyBoxMax    = "penalty_box_max"
	ConfigAccessTokenLife  = "access_token_life"
	ConfigRefreshTokenLife = "refresh_token_life"
	ConfigRegistration     = "registration_enabled"
	ConfigWorkerRunning    = "worker_running"
	ConfigEmailConfigured  = "email_configured"

	ConfigPrivate = "server_private"
	ConfigJWTKey  = "jwt_key"
)

// setDefaults makes sure the sets exist and sets default values
func setDefaults(c interfaces.Config) (interfaces.Parameters, interfaces.Parameters) {

	// Server configuration set
	sc := c.NewSet(ConfigServerSet)
	sc.SetDefault(ConfigLogFile, "")                   // no log file by default
	sc.SetDefault(ConfigLogStdout, true)               // by default log to stdout
	sc.SetDefault(ConfigLogRetention, 365)             // days
	sc.SetDefault(ConfigListen, "127.0.0.1:8080")      // listen address
	sc.SetDefault(ConfigInstanceName, "PartDesk Demo") // shown by clients as the instance title
	sc.SetDefault(ConfigDataPath, "")                  // base directory for data
	sc.SetDefault(ConfigDBPath, "")                    // database path
	sc.SetDefault(ConfigHTTPTimeout, 30)               // seconds
	sc.SetDefault(ConfigHTTPIdleTimeout, 30)           // seconds
	sc.SetDefault(ConfigHandlerTimeout, 30)            // seconds
	sc.SetDefault(ConfigMaxConcurrent, 100)            // concurrent connections, others wait
	sc.SetDefault(ConfigPenaltyBoxMin, 1000)           // minimum penalty box time in milliseconds
	sc.SetDefault(ConfigPenaltyBoxMax, 5000)           // maximum penalty box time in milliseconds
	sc.SetDefault(ConfigAccessTokenLife, 720)          // minutes
	sc.SetDefault(ConfigRefreshTokenLife, 1440)        // minutes
	sc.SetDefault(ConfigRegistration, false)           // self-registration disabled
	sc.SetDefault(ConfigWorkerRunning, true)           // background worker flag reported to clients
	sc.SetDefault(ConfigEmailConfigured, false)        // email flag reported to clients

	// Protected configuration items
	sp := c.NewSet(ConfigPrivate)
	sp.SetDefault(ConfigJWTKey, "")

	return sc, sp
}
