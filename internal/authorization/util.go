// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	LANDLORD_RELATION = "landlord"
	TENANT_RELATION   = "tenant"
	ASSIGNEE_RELATION = "assignee"

	CAN_VIEW_PERMISSION   = "can_view"
	CAN_MANAGE_PERMISSION = "can_manage"
	CAN_REVIEW_PERMISSION = "can_review"

	PROPERTY_TYPE = "property"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func PropertyTuple(propertyId string) string {
	return PROPERTY_TYPE + ":" + propertyId
}

func RoleTuple(role string) string {
	return "role:" + role
}
