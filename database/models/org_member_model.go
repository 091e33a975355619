// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package models

import "github.com/google/uuid"

type OrganizationRole string

const (
	RoleOrgAdmin  OrganizationRole = "ORG_ADMIN"
	RoleOrgMember OrganizationRole = "ORG_MEMBER"
)

func (r OrganizationRole) Valid() bool {
	return r == RoleOrgAdmin || r == RoleOrgMember
}

type OrganizationMember struct {
	Model
	UserID         uuid.UUID        `json:"userId" gorm:"uniqueIndex:idx_org_member_user_org;type:uuid;not null"`
	OrganizationID uuid.UUID        `json:"organizationId" gorm:"uniqueIndex:idx_org_member_user_org;type:uuid;not null"`
	Role           OrganizationRole `json:"role" gorm:"type:text;not null;default:'ORG_MEMBER'"`

	User         User         `json:"user" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m OrganizationMember) TableName() string {
	return "organization_members"
}
