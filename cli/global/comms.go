/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import "github.com/PartDesk/PartDesk/cli/util"

type Comms interface {
	SetToken(token string)
	Post(endpoint string, payload interface{}) (int, []byte, error)
	Put(endpoint string, payload interface{}) (int, []byte, error)
	Get(endpoint string) (int, []byte, error)
	GetQuery(endpoint string, pairs *util.NVPairs) (int, []byte, error)
	Delete(endpoint string) (int, []byte, error)
}
