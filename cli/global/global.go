/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import "github.com/PartDesk/PartDesk/common"

//goland:noinspection GoUnusedConst
const (
	Version         = common.Version
	Build           = common.Build
	Name            = "PDCLI"
	Description     = "PartDesk CLI"
	LongDescription = "PartDesk inventory command line interface"
	Copyright       = "Copyright (c) 2025-2026 PartDesk Systems Inc."
	CacheTTL        = 60 // seconds; GET responses are reused within one invocation chain
	RequestTimeout  = 30 // seconds
)

var ServerURL string
