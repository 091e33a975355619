// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectInvitation targets an existing platform user, unlike organization
// invitations which target an email address. The invitee must already be a
// member of the project's organization.
type ProjectInvitation struct {
	Model
	ProjectID  uuid.UUID   `json:"projectId" gorm:"uniqueIndex:idx_project_invitation_project_user;type:uuid;not null"`
	UserID     uuid.UUID   `json:"userId" gorm:"uniqueIndex:idx_project_invitation_project_user;type:uuid;not null"`
	Role       ProjectRole `json:"role" gorm:"type:text;not null;default:'PROJECT_MEMBER'"`
	ExpiresAt  time.Time   `json:"expiresAt" gorm:"not null"`
	AcceptedAt *time.Time  `json:"acceptedAt"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
	User    User    `json:"user" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (i ProjectInvitation) TableName() string {
	return "project_invitations"
}
