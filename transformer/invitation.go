// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package transformer

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/dtos"
)

func OrgInvitationToDTO(invitation models.OrganizationInvitation) dtos.OrgInvitationDTO {
	dto := dtos.OrgInvitationDTO{
		ID:             invitation.ID,
		Email:          invitation.Email,
		OrganizationID: invitation.OrganizationID,
		Role:           invitation.Role,
		CreatedAt:      invitation.CreatedAt,
		ExpiresAt:      invitation.ExpiresAt,
		AcceptedAt:     invitation.AcceptedAt,
	}
	if invitation.Organization.ID != uuid.Nil {
		dto.Organization = &dtos.OrgRefDTO{
			ID:   invitation.Organization.ID,
			Name: invitation.Organization.Name,
		}
	}
	return dto
}

func OrgInvitationsToDTOs(invitations []models.OrganizationInvitation) []dtos.OrgInvitationDTO {
	result := make([]dtos.OrgInvitationDTO, 0, len(invitations))
	for _, invitation := range invitations {
		result = append(result, OrgInvitationToDTO(invitation))
	}
	return result
}

func ProjectInvitationToDTO(invitation models.ProjectInvitation) dtos.ProjectInvitationDTO {
	dto := dtos.ProjectInvitationDTO{
		ID:         invitation.ID,
		ProjectID:  invitation.ProjectID,
		UserID:     invitation.UserID,
		Role:       invitation.Role,
		CreatedAt:  invitation.CreatedAt,
		ExpiresAt:  invitation.ExpiresAt,
		AcceptedAt: invitation.AcceptedAt,
	}
	if invitation.User.ID != uuid.Nil {
		user := UserToDTO(invitation.User)
		dto.User = &user
	}
	if invitation.Project.ID != uuid.Nil {
		dto.Project = &dtos.ProjectRefDTO{
			ID:             invitation.Project.ID,
			Name:           invitation.Project.Name,
			OrganizationID: invitation.Project.OrganizationID,
		}
	}
	return dto
}

func ProjectInvitationsToDTOs(invitations []models.ProjectInvitation) []dtos.ProjectInvitationDTO {
	result := make([]dtos.ProjectInvitationDTO, 0, len(invitations))
	for _, invitation := range invitations {
		result = append(result, ProjectInvitationToDTO(invitation))
	}
	return result
}
