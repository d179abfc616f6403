//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// See LICENSE file for details
//

package global

import (
	"github.com/PartDesk/PartDesk/common"
)

func Banner() {
	common.Banner(Description, Version, Build)
}
