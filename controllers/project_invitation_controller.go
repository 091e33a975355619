// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/accesscontrol"
	"github.com/worknest-dev/worknest/dtos"
	"github.com/worknest-dev/worknest/shared"
	"github.com/worknest-dev/worknest/transformer"
)

type ProjectInvitationController struct {
	invitationService    shared.ProjectInvitationService
	invitationRepository shared.ProjectInvitationRepository
}

func NewProjectInvitationController(invitationService shared.ProjectInvitationService, invitationRepository shared.ProjectInvitationRepository) *ProjectInvitationController {
	return &ProjectInvitationController{
		invitationService:    invitationService,
		invitationRepository: invitationRepository,
	}
}

func (controller *ProjectInvitationController) Invite(ctx shared.Context) error {
	if !accesscontrol.CanManageProject(shared.GetOrgMembership(ctx), shared.GetProjectMembership(ctx)) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden: insufficient role")
	}

	var req dtos.ProjectInviteRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").WithInternal(err)
	}

	project := shared.GetProject(ctx)
	invitation, err := controller.invitationService.Invite(project, req.UserID, req.Role)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusCreated, transformer.ProjectInvitationToDTO(invitation))
}

func (controller *ProjectInvitationController) List(ctx shared.Context) error {
	if !accesscontrol.CanManageProject(shared.GetOrgMembership(ctx), shared.GetProjectMembership(ctx)) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden: insufficient role")
	}

	project := shared.GetProject(ctx)

	invitations, err := controller.invitationRepository.ListByProject(project.ID, ctx.QueryParam("status"))
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, transformer.ProjectInvitationsToDTOs(invitations))
}

func (controller *ProjectInvitationController) Cancel(ctx shared.Context) error {
	if !accesscontrol.CanManageProject(shared.GetOrgMembership(ctx), shared.GetProjectMembership(ctx)) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden: insufficient role")
	}

	invitationID, err := shared.GetUUIDParam(ctx, "invitationID")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	project := shared.GetProject(ctx)
	if err := controller.invitationService.Cancel(project.ID, invitationID); err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, nil)
}
