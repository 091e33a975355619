// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
)

type OrgInviteRequest struct {
	Emails []string                `json:"emails" validate:"required,min=1"`
	Role   models.OrganizationRole `json:"role" validate:"omitempty,oneof=ORG_ADMIN ORG_MEMBER"`
}

type ProjectInviteRequest struct {
	UserID uuid.UUID          `json:"userId" validate:"required"`
	Role   models.ProjectRole `json:"role" validate:"required,oneof=PROJECT_LEAD PROJECT_MEMBER"`
}

type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// ResolveInvitationRequest accepts or rejects an invitation from the caller's
// inbox. Type discriminates the two invitation tables.
type ResolveInvitationRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
	Type   string `json:"type" validate:"omitempty,oneof=organization project"`
}

// InvitationBatchResult reports the per-address outcome of a batch
// organization invite. A batch is not transactional: partial success is an
// intended outcome, and callers must be able to tell the four buckets apart.
type InvitationBatchResult struct {
	Success        []string      `json:"success"`
	Failed         []FailedEmail `json:"failed"`
	AlreadyMember  []string      `json:"alreadyMember"`
	AlreadyInvited []string      `json:"alreadyInvited"`
}

type FailedEmail struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type OrgInvitationDTO struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	OrganizationID uuid.UUID               `json:"organizationId"`
	Role           models.OrganizationRole `json:"role"`
	CreatedAt      time.Time               `json:"createdAt"`
	ExpiresAt      time.Time               `json:"expiresAt"`
	AcceptedAt     *time.Time              `json:"acceptedAt"`
	Organization   *OrgRefDTO              `json:"organization,omitempty"`
}

type ProjectInvitationDTO struct {
	ID         uuid.UUID          `json:"id"`
	ProjectID  uuid.UUID          `json:"projectId"`
	UserID     uuid.UUID          `json:"userId"`
	Role       models.ProjectRole `json:"role"`
	CreatedAt  time.Time          `json:"createdAt"`
	ExpiresAt  time.Time          `json:"expiresAt"`
	AcceptedAt *time.Time         `json:"acceptedAt"`
	User       *UserDTO           `json:"user,omitempty"`
	Project    *ProjectRefDTO     `json:"project,omitempty"`
}

type OrgRefDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProjectRefDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OrganizationID uuid.UUID `json:"organizationId"`
}

// UserInvitationsDTO is the caller's pending inbox across both scopes.
type UserInvitationsDTO struct {
	Organization []OrgInvitationDTO     `json:"organization"`
	Project      []ProjectInvitationDTO `json:"project"`
}
