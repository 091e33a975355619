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

type ProjectMemberController struct {
	memberRepository shared.ProjectMemberRepository
}

func NewProjectMemberController(memberRepository shared.ProjectMemberRepository) *ProjectMemberController {
	return &ProjectMemberController{memberRepository: memberRepository}
}

func (controller *ProjectMemberController) List(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	members, err := controller.memberRepository.ListByProject(project.ID)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, transformer.ProjectMembersToDTOs(members))
}

// Me answers "what am I in this project". Not being a member is a regular
// answer here, not an error.
func (controller *ProjectMemberController) Me(ctx shared.Context) error {
	membership := shared.GetProjectMembership(ctx)
	if membership == nil {
		return shared.Ok(ctx, http.StatusOK, dtos.ProjectRoleDTO{Role: nil, IsMember: false})
	}

	return shared.Ok(ctx, http.StatusOK, dtos.ProjectRoleDTO{Role: &membership.Role, IsMember: true})
}

func (controller *ProjectMemberController) ChangeRole(ctx shared.Context) error {
	if !accesscontrol.CanManageProject(shared.GetOrgMembership(ctx), shared.GetProjectMembership(ctx)) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden: insufficient role")
	}

	memberID, err := shared.GetUUIDParam(ctx, "memberID")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Member not found").WithInternal(err)
	}

	var req dtos.ProjectChangeRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid role").WithInternal(err)
	}

	project := shared.GetProject(ctx)
	member, err := controller.memberRepository.FindInProject(project.ID, memberID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Member not found").WithInternal(err)
	}

	member.Role = req.Role
	if err := controller.memberRepository.Save(nil, &member); err != nil {
		return err
	}

	member, err = controller.memberRepository.Read(member.ID)
	if err != nil {
		return err
	}
	return shared.Ok(ctx, http.StatusOK, transformer.ProjectMemberToDTO(member))
}

func (controller *ProjectMemberController) Remove(ctx shared.Context) error {
	memberID, err := shared.GetUUIDParam(ctx, "memberID")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Member not found").WithInternal(err)
	}

	project := shared.GetProject(ctx)
	member, err := controller.memberRepository.FindInProject(project.ID, memberID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Member not found").WithInternal(err)
	}

	user := shared.GetUser(ctx)
	if !accesscontrol.CanRemoveProjectMember(shared.GetOrgMembership(ctx), shared.GetProjectMembership(ctx), user.ID, member) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden: insufficient role")
	}

	if err := controller.memberRepository.Delete(nil, member.ID); err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, nil)
}
