// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/controllers"
	"github.com/worknest-dev/worknest/middlewares"
	"github.com/worknest-dev/worknest/shared"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	orgRouter OrgRouter,
	projectController *controllers.ProjectController,
	projectMemberController *controllers.ProjectMemberController,
	projectInvitationController *controllers.ProjectInvitationController,
	projectRepository shared.ProjectRepository,
	projectMemberRepository shared.ProjectMemberRepository,
) ProjectRouter {
	projectsRouter := orgRouter.Group.Group("/projects", middlewares.RequireOrgMembership)
	projectsRouter.GET("/", projectController.List)
	projectsRouter.POST("/", projectController.Create)

	// everything below is scoped to one project
	projectRouter := projectsRouter.Group("/:projectID",
		middlewares.ProjectMiddleware(projectRepository, projectMemberRepository),
	)

	projectRouter.GET("/", projectController.Read)
	projectRouter.PATCH("/", projectController.Patch,
		middlewares.RequireProjectManage("Forbidden: insufficient role"))
	projectRouter.DELETE("/", projectController.Delete,
		middlewares.RequireProjectManage("Forbidden: insufficient role"))

	projectRouter.GET("/members/", projectMemberController.List)
	projectRouter.GET("/members/me/", projectMemberController.Me)
	projectRouter.PATCH("/members/:memberID/", projectMemberController.ChangeRole)
	projectRouter.DELETE("/members/:memberID/", projectMemberController.Remove)

	projectRouter.GET("/invitations/", projectInvitationController.List)
	projectRouter.POST("/invitations/", projectInvitationController.Invite)
	projectRouter.DELETE("/invitations/:invitationID/", projectInvitationController.Cancel)

	return ProjectRouter{projectRouter}
}
