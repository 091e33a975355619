// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package transformer

import (
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/dtos"
)

func OrgMemberToDTO(member models.OrganizationMember) dtos.OrgMemberDTO {
	return dtos.OrgMemberDTO{
		ID:             member.ID,
		UserID:         member.UserID,
		OrganizationID: member.OrganizationID,
		Role:           member.Role,
		JoinedAt:       member.CreatedAt,
		User:           UserToDTO(member.User),
	}
}

func OrgMembersToDTOs(members []models.OrganizationMember) []dtos.OrgMemberDTO {
	result := make([]dtos.OrgMemberDTO, 0, len(members))
	for _, member := range members {
		result = append(result, OrgMemberToDTO(member))
	}
	return result
}
