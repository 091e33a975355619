// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/accesscontrol"
	"github.com/worknest-dev/worknest/dtos"
	"github.com/worknest-dev/worknest/shared"
	"github.com/worknest-dev/worknest/transformer"
)

type OrgController struct {
	orgService           shared.OrgService
	memberRepository     shared.OrganizationMemberRepository
	invitationRepository shared.OrganizationInvitationRepository
}

func NewOrgController(orgService shared.OrgService, memberRepository shared.OrganizationMemberRepository, invitationRepository shared.OrganizationInvitationRepository) *OrgController {
	return &OrgController{
		orgService:           orgService,
		memberRepository:     memberRepository,
		invitationRepository: invitationRepository,
	}
}

func (controller *OrgController) Create(ctx shared.Context) error {
	var req dtos.OrgCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Organization name is required").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Organization name is required").WithInternal(err)
	}

	user := shared.GetUser(ctx)
	org, err := controller.orgService.CreateOrganization(user.ID, req.Name)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusCreated, org)
}

func (controller *OrgController) List(ctx shared.Context) error {
	user := shared.GetUser(ctx)

	summaries, err := controller.orgService.ListOrganizations(user.ID)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, summaries)
}

// Read returns the org detail. Non-members get the same 404 a nonexistent id
// gets, so org ids cannot be probed.
func (controller *OrgController) Read(ctx shared.Context) error {
	membership := shared.GetOrgMembership(ctx)
	if membership == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Organization not found or access denied")
	}

	org := shared.GetOrg(ctx)
	count, err := controller.memberRepository.CountByOrg(org.ID)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, dtos.OrgSummaryDTO{
		ID:          org.ID,
		Name:        org.Name,
		Role:        membership.Role,
		MemberCount: count,
		IsActive:    org.IsActive,
	})
}

// ListMembers returns current members and still-pending invitations in one
// payload, the way the member management screen consumes them.
func (controller *OrgController) ListMembers(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	if limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	members, total, err := controller.memberRepository.ListByOrg(org.ID, ctx.QueryParam("search"), page, limit)
	if err != nil {
		return err
	}

	invitations, err := controller.invitationRepository.ListPendingByOrg(org.ID)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, dtos.OrgMemberListDTO{
		Members:     transformer.OrgMembersToDTOs(members),
		Invitations: transformer.OrgInvitationsToDTOs(invitations),
		Pagination: &dtos.PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	})
}

func (controller *OrgController) ChangeMemberRole(ctx shared.Context) error {
	membership := shared.GetOrgMembership(ctx)
	if !accesscontrol.CanManageOrganization(membership) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden: only organization admins can update member roles")
	}

	memberID, err := shared.GetUUIDParam(ctx, "memberID")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Member not found").WithInternal(err)
	}

	var req dtos.OrgChangeRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role").WithInternal(err)
	}

	org := shared.GetOrg(ctx)
	member, err := controller.orgService.ChangeMemberRole(org.ID, memberID, req.Role)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, transformer.OrgMemberToDTO(member))
}

func (controller *OrgController) RemoveMember(ctx shared.Context) error {
	membership := shared.GetOrgMembership(ctx)

	memberID, err := shared.GetUUIDParam(ctx, "memberID")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Member not found").WithInternal(err)
	}

	if err := controller.orgService.RemoveMember(*membership, memberID); err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, nil)
}
