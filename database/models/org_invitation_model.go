// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package models

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationInvitation is keyed by email, not user id - invitees do not need
// an account yet. At most one row exists per (email, organization) pair;
// re-inviting overwrites the existing row.
type OrganizationInvitation struct {
	Model
	Email          string           `json:"email" gorm:"uniqueIndex:idx_org_invitation_email_org;type:text;not null"`
	OrganizationID uuid.UUID        `json:"organizationId" gorm:"uniqueIndex:idx_org_invitation_email_org;type:uuid;not null"`
	Role           OrganizationRole `json:"role" gorm:"type:text;not null;default:'ORG_MEMBER'"`
	ExpiresAt      time.Time        `json:"expiresAt" gorm:"not null"`
	AcceptedAt     *time.Time       `json:"acceptedAt"`

	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (i OrganizationInvitation) TableName() string {
	return "organization_invitations"
}
