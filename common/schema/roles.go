/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

//goland:noinspection GoUnusedConst
const (
	RoleNone = iota
	RoleReadOnly
	RoleUser
	RoleAdmin
)

var (
	RolesAll = []int{RoleReadOnly, RoleUser, RoleAdmin}
)

// CanWrite reports whether the role may create or modify records
func CanWrite(role int) bool {
	return role >= RoleUser
}

// CanDelete reports whether the role may delete records
func CanDelete(role int) bool {
	return role >= RoleAdmin
}
