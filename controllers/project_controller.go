// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/dtos"
	"github.com/worknest-dev/worknest/shared"
	"github.com/worknest-dev/worknest/transformer"
)

type ProjectController struct {
	projectService   shared.ProjectService
	memberRepository shared.ProjectMemberRepository
}

func NewProjectController(projectService shared.ProjectService, memberRepository shared.ProjectMemberRepository) *ProjectController {
	return &ProjectController{
		projectService:   projectService,
		memberRepository: memberRepository,
	}
}

func (controller *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Project name is required").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Project name and key are required").WithInternal(err)
	}

	org := shared.GetOrg(ctx)
	user := shared.GetUser(ctx)

	project, err := controller.projectService.CreateProject(org.ID, user.ID, req)
	if err != nil {
		return err
	}

	count, err := controller.memberRepository.CountByProject(project.ID)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusCreated, transformer.ProjectToDTO(project, count, false))
}

func (controller *ProjectController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	query := dtos.ProjectListQuery{
		Search:         ctx.QueryParam("search"),
		Page:           page,
		Limit:          limit,
		IncludeMembers: ctx.QueryParam("includeMembers") == "true",
	}

	result, err := controller.projectService.ListProjects(org.ID, query)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, result)
}

func (controller *ProjectController) Read(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	count, err := controller.memberRepository.CountByProject(project.ID)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, transformer.ProjectToDTO(project, count, false))
}

func (controller *ProjectController) Patch(ctx shared.Context) error {
	var req dtos.ProjectPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").WithInternal(err)
	}

	project, err := controller.projectService.UpdateProject(shared.GetProject(ctx), req)
	if err != nil {
		return err
	}

	count, err := controller.memberRepository.CountByProject(project.ID)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, transformer.ProjectToDTO(project, count, false))
}

func (controller *ProjectController) Delete(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	if err := controller.projectService.DeleteProject(project.ID); err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, nil)
}
