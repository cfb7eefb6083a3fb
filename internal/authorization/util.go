// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION       = "owner"
	SUPER_ADMIN_RELATION = "super_admin"
	PLATFORM_RELATION    = "platform"

	CAN_DELETE_PERMISSION = "can_delete"

	// PlatformID names the single platform object holding the super admins
	PlatformID = "barbersoft"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func CompanyTuple(companyId string) string {
	return "company:" + companyId
}

func PlatformTuple(platformId string) string {
	return "platform:" + platformId
}
