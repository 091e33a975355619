// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/accesscontrol"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/dtos"
	"github.com/worknest-dev/worknest/shared"
)

type orgService struct {
	orgRepository    shared.OrganizationRepository
	memberRepository shared.OrganizationMemberRepository
}

func NewOrgService(orgRepository shared.OrganizationRepository, memberRepository shared.OrganizationMemberRepository) *orgService {
	return &orgService{
		orgRepository:    orgRepository,
		memberRepository: memberRepository,
	}
}

// CreateOrganization creates the organization and makes the creator its
// first admin in one transaction.
func (s *orgService) CreateOrganization(userID uuid.UUID, name string) (models.Organization, error) {
	var org models.Organization

	name = strings.TrimSpace(name)
	if name == "" {
		return org, echo.NewHTTPError(http.StatusBadRequest, "Organization name is required")
	}

	org.Name = name
	org.IsActive = true

	err := s.orgRepository.Transaction(func(tx shared.DB) error {
		if err := s.orgRepository.Create(tx, &org); err != nil {
			return err
		}
		member := models.OrganizationMember{
			UserID:         userID,
			OrganizationID: org.ID,
			Role:           models.RoleOrgAdmin,
		}
		return s.memberRepository.Create(tx, &member)
	})
	if err != nil {
		return org, err
	}

	return org, nil
}

func (s *orgService) ListOrganizations(userID uuid.UUID) ([]dtos.OrgSummaryDTO, error) {
	memberships, err := s.memberRepository.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	orgIDs := make([]uuid.UUID, 0, len(memberships))
	for _, membership := range memberships {
		orgIDs = append(orgIDs, membership.OrganizationID)
	}

	counts, err := s.memberRepository.CountByOrgIDs(orgIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.OrgSummaryDTO, 0, len(memberships))
	for _, membership := range memberships {
		summaries = append(summaries, dtos.OrgSummaryDTO{
			ID:          membership.OrganizationID,
			Name:        membership.Organization.Name,
			Role:        membership.Role,
			MemberCount: counts[membership.OrganizationID],
			IsActive:    membership.Organization.IsActive,
		})
	}
	return summaries, nil
}

// ChangeMemberRole demotes or promotes a member. Demoting the last admin is
// refused so the organization can never end up without one.
func (s *orgService) ChangeMemberRole(orgID, memberID uuid.UUID, role models.OrganizationRole) (models.OrganizationMember, error) {
	member, err := s.memberRepository.FindInOrg(orgID, memberID)
	if err != nil {
		return member, echo.NewHTTPError(http.StatusNotFound, "Member not found").WithInternal(err)
	}

	if !role.Valid() {
		return member, echo.NewHTTPError(http.StatusBadRequest, "Invalid role")
	}

	err = s.memberRepository.Transaction(func(tx shared.DB) error {
		if member.Role == models.RoleOrgAdmin && role != models.RoleOrgAdmin {
			admins, err := s.memberRepository.CountAdmins(tx, orgID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return echo.NewHTTPError(http.StatusBadRequest, "Cannot remove the last organization admin")
			}
		}

		member.Role = role
		return s.memberRepository.Save(tx, &member)
	})
	if err != nil {
		return member, err
	}
	return member, nil
}

// RemoveMember handles both leave (caller removes itself) and kick (an admin
// removes someone else). Either way the last admin stays.
func (s *orgService) RemoveMember(caller models.OrganizationMember, memberID uuid.UUID) error {
	member, err := s.memberRepository.FindInOrg(caller.OrganizationID, memberID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Member not found").WithInternal(err)
	}

	if !accesscontrol.CanRemoveOrgMember(&caller, member) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden: only admins can remove other members")
	}

	return s.memberRepository.Transaction(func(tx shared.DB) error {
		if member.Role == models.RoleOrgAdmin {
			admins, err := s.memberRepository.CountAdmins(tx, caller.OrganizationID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return echo.NewHTTPError(http.StatusBadRequest, "Cannot remove the last organization admin")
			}
		}

		return s.memberRepository.Delete(tx, member.ID)
	})
}
