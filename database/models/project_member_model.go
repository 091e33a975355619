// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package models

import "github.com/google/uuid"

type ProjectRole string

const (
	RoleProjectLead   ProjectRole = "PROJECT_LEAD"
	RoleProjectMember ProjectRole = "PROJECT_MEMBER"
)

func (r ProjectRole) Valid() bool {
	return r == RoleProjectLead || r == RoleProjectMember
}

type ProjectMember struct {
	Model
	ProjectID uuid.UUID   `json:"projectId" gorm:"uniqueIndex:idx_project_member_project_user;type:uuid;not null"`
	UserID    uuid.UUID   `json:"userId" gorm:"uniqueIndex:idx_project_member_project_user;type:uuid;not null"`
	Role      ProjectRole `json:"role" gorm:"type:text;not null;default:'PROJECT_MEMBER'"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
	User    User    `json:"user" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m ProjectMember) TableName() string {
	return "project_members"
}
