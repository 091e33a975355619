// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
)

type ProjectCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Key         string  `json:"key" validate:"required"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type ProjectPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type ProjectListQuery struct {
	Search         string
	Page           int
	Limit          int
	IncludeMembers bool
}

type ProjectChangeRoleRequest struct {
	Role models.ProjectRole `json:"role" validate:"required,oneof=PROJECT_LEAD PROJECT_MEMBER"`
}

type ProjectDTO struct {
	ID             uuid.UUID          `json:"id"`
	OrganizationID uuid.UUID          `json:"organizationId"`
	Name           string             `json:"name"`
	Key            string             `json:"key"`
	Description    *string            `json:"description"`
	Color          string             `json:"color"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      *UserDTO           `json:"createdBy,omitempty"`
	Members        []ProjectMemberDTO `json:"members,omitempty"`
	MemberCount    int64              `json:"memberCount"`
}

type ProjectMemberDTO struct {
	ID        uuid.UUID          `json:"id"`
	ProjectID uuid.UUID          `json:"projectId"`
	UserID    uuid.UUID          `json:"userId"`
	Role      models.ProjectRole `json:"role"`
	JoinedAt  time.Time          `json:"joinedAt"`
	User      UserDTO            `json:"user"`
}

type ProjectListDTO struct {
	Projects   []ProjectDTO  `json:"projects"`
	Pagination PaginationDTO `json:"pagination"`
}

// ProjectRoleDTO answers "what am I in this project" - role is null when the
// caller is not a member.
type ProjectRoleDTO struct {
	Role     *models.ProjectRole `json:"role"`
	IsMember bool                `json:"isMember"`
}
