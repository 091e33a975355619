// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package transformer

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/dtos"
)

func ProjectToDTO(project models.Project, memberCount int64, includeMembers bool) dtos.ProjectDTO {
	dto := dtos.ProjectDTO{
		ID:             project.ID,
		OrganizationID: project.OrganizationID,
		Name:           project.Name,
		Key:            project.Key,
		Description:    project.Description,
		Color:          project.Color,
		CreatedAt:      project.CreatedAt,
		MemberCount:    memberCount,
	}

	if project.CreatedBy.ID != uuid.Nil {
		createdBy := UserToDTO(project.CreatedBy)
		dto.CreatedBy = &createdBy
	}

	if includeMembers {
		dto.Members = ProjectMembersToDTOs(project.Members)
	}

	return dto
}

func ProjectMemberToDTO(member models.ProjectMember) dtos.ProjectMemberDTO {
	return dtos.ProjectMemberDTO{
		ID:        member.ID,
		ProjectID: member.ProjectID,
		UserID:    member.UserID,
		Role:      member.Role,
		JoinedAt:  member.CreatedAt,
		User:      UserToDTO(member.User),
	}
}

func ProjectMembersToDTOs(members []models.ProjectMember) []dtos.ProjectMemberDTO {
	result := make([]dtos.ProjectMemberDTO, 0, len(members))
	for _, member := range members {
		result = append(result, ProjectMemberToDTO(member))
	}
	return result
}
