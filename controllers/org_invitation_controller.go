// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/accesscontrol"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/dtos"
	"github.com/worknest-dev/worknest/shared"
	"github.com/worknest-dev/worknest/transformer"
)

type OrgInvitationController struct {
	invitationService    shared.OrgInvitationService
	invitationRepository shared.OrganizationInvitationRepository
}

func NewOrgInvitationController(invitationService shared.OrgInvitationService, invitationRepository shared.OrganizationInvitationRepository) *OrgInvitationController {
	return &OrgInvitationController{
		invitationService:    invitationService,
		invitationRepository: invitationRepository,
	}
}

// Invite sends a batch of invitations. The response reports the outcome per
// address instead of failing the whole batch.
func (controller *OrgInvitationController) Invite(ctx shared.Context) error {
	if !accesscontrol.CanManageOrganization(shared.GetOrgMembership(ctx)) {
		return echo.NewHTTPError(http.StatusForbidden, "Only organization admins can invite members")
	}

	var req dtos.OrgInviteRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one email is required").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one email is required").WithInternal(err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleOrgMember
	}

	org := shared.GetOrg(ctx)
	result := controller.invitationService.InviteMembers(org, req.Emails, role)

	return shared.Ok(ctx, http.StatusOK, result)
}

// List returns the live invitations: accepted and expired rows stay in the
// store but are filtered out here.
func (controller *OrgInvitationController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	invitations, err := controller.invitationRepository.ListPendingByOrg(org.ID)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, transformer.OrgInvitationsToDTOs(invitations))
}

func (controller *OrgInvitationController) Read(ctx shared.Context) error {
	invitationID, err := shared.GetUUIDParam(ctx, "invitationID")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	org := shared.GetOrg(ctx)
	invitation, err := controller.invitationRepository.FindInOrg(org.ID, invitationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	return shared.Ok(ctx, http.StatusOK, transformer.OrgInvitationToDTO(invitation))
}

func (controller *OrgInvitationController) Cancel(ctx shared.Context) error {
	if !accesscontrol.CanManageOrganization(shared.GetOrgMembership(ctx)) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden: only organization admins can cancel invitations")
	}

	invitationID, err := shared.GetUUIDParam(ctx, "invitationID")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	org := shared.GetOrg(ctx)
	if err := controller.invitationService.Cancel(org.ID, invitationID); err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, nil)
}
