// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
)

type OrgCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type OrgChangeRoleRequest struct {
	Role models.OrganizationRole `json:"role" validate:"required,oneof=ORG_ADMIN ORG_MEMBER"`
}

// OrgSummaryDTO is the caller-scoped view of an organization: the caller's
// own role plus the member count.
type OrgSummaryDTO struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Role        models.OrganizationRole `json:"role"`
	MemberCount int64                   `json:"memberCount"`
	IsActive    bool                    `json:"isActive"`
}

type OrgMemberDTO struct {
	ID             uuid.UUID               `json:"id"`
	UserID         uuid.UUID               `json:"userId"`
	OrganizationID uuid.UUID               `json:"organizationId"`
	Role           models.OrganizationRole `json:"role"`
	JoinedAt       time.Time               `json:"joinedAt"`
	User           UserDTO                 `json:"user"`
}

// OrgMemberListDTO combines current members with the still-pending
// invitations, the way the member management screen consumes them.
type OrgMemberListDTO struct {
	Members     []OrgMemberDTO     `json:"members"`
	Invitations []OrgInvitationDTO `json:"invitations"`
	Pagination  *PaginationDTO     `json:"pagination,omitempty"`
}

type PaginationDTO struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
