// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/dtos"
	"github.com/worknest-dev/worknest/shared"
	"github.com/worknest-dev/worknest/transformer"
)

// UserInvitationController is the caller's invitation inbox: both scopes in
// one listing, accept/reject via an explicit type discriminator since the
// two invitation tables are distinct.
type UserInvitationController struct {
	orgInvitationService        shared.OrgInvitationService
	projectInvitationService    shared.ProjectInvitationService
	orgInvitationRepository     shared.OrganizationInvitationRepository
	projectInvitationRepository shared.ProjectInvitationRepository
}

func NewUserInvitationController(orgInvitationService shared.OrgInvitationService, projectInvitationService shared.ProjectInvitationService, orgInvitationRepository shared.OrganizationInvitationRepository, projectInvitationRepository shared.ProjectInvitationRepository) *UserInvitationController {
	return &UserInvitationController{
		orgInvitationService:        orgInvitationService,
		projectInvitationService:    projectInvitationService,
		orgInvitationRepository:     orgInvitationRepository,
		projectInvitationRepository: projectInvitationRepository,
	}
}

func (controller *UserInvitationController) List(ctx shared.Context) error {
	user := shared.GetUser(ctx)

	var orgID *uuid.UUID
	if raw := ctx.QueryParam("orgId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid orgId parameter").WithInternal(err)
		}
		orgID = &id
	}

	orgInvitations, err := controller.orgInvitationRepository.ListPendingByEmail(user.Email, orgID)
	if err != nil {
		return err
	}

	projectInvitations, err := controller.projectInvitationRepository.ListPendingByUser(user.ID, orgID)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, dtos.UserInvitationsDTO{
		Organization: transformer.OrgInvitationsToDTOs(orgInvitations),
		Project:      transformer.ProjectInvitationsToDTOs(projectInvitations),
	})
}

// Resolve accepts or rejects one invitation from the inbox. Without an
// explicit type the organization table is probed first.
func (controller *UserInvitationController) Resolve(ctx shared.Context) error {
	invitationID, err := shared.GetUUIDParam(ctx, "invitationID")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	var req dtos.ResolveInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").WithInternal(err)
	}

	scope := req.Type
	if scope == "" {
		if _, err := controller.orgInvitationRepository.Read(invitationID); err == nil {
			scope = "organization"
		} else {
			scope = "project"
		}
	}

	user := shared.GetUser(ctx)

	if scope == "organization" {
		if req.Action == "accept" {
			invitation, err := controller.orgInvitationService.Accept(user, invitationID)
			if err != nil {
				return err
			}
			return shared.Ok(ctx, http.StatusOK, transformer.OrgInvitationToDTO(invitation))
		}
		if err := controller.orgInvitationService.Reject(user, invitationID); err != nil {
			return err
		}
		return shared.Ok(ctx, http.StatusOK, nil)
	}

	if req.Action == "accept" {
		invitation, err := controller.projectInvitationService.Accept(user, invitationID)
		if err != nil {
			return err
		}
		return shared.Ok(ctx, http.StatusOK, transformer.ProjectInvitationToDTO(invitation))
	}
	if err := controller.projectInvitationService.Reject(user, invitationID); err != nil {
		return err
	}
	return shared.Ok(ctx, http.StatusOK, nil)
}

// AcceptByToken is the path invitation emails link to. The token is the
// organization invitation's opaque id.
func (controller *UserInvitationController) AcceptByToken(ctx shared.Context) error {
	var req dtos.AcceptInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Token is required").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Token is required").WithInternal(err)
	}

	token, err := uuid.Parse(req.Token)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	user := shared.GetUser(ctx)
	invitation, err := controller.orgInvitationService.Accept(user, token)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, transformer.OrgInvitationToDTO(invitation))
}
