// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/controllers"
	"github.com/worknest-dev/worknest/middlewares"
	"github.com/worknest-dev/worknest/shared"
)

type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	sessionRouter SessionRouter,
	orgController *controllers.OrgController,
	orgInvitationController *controllers.OrgInvitationController,
	orgRepository shared.OrganizationRepository,
	orgMemberRepository shared.OrganizationMemberRepository,
) OrgRouter {
	orgRouter := sessionRouter.Group.Group("/organizations")
	orgRouter.GET("/", orgController.List)
	orgRouter.POST("/", orgController.Create)

	// everything below is scoped to one organization
	organizationRouter := orgRouter.Group("/:orgID",
		middlewares.OrgMiddleware(orgRepository, orgMemberRepository),
	)

	// the detail route answers non-members with a scoped 404 itself
	organizationRouter.GET("/", orgController.Read)

	memberRouter := organizationRouter.Group("", middlewares.RequireOrgMembership)
	memberRouter.GET("/members/", orgController.ListMembers)
	memberRouter.PATCH("/members/:memberID/", orgController.ChangeMemberRole)
	memberRouter.DELETE("/members/:memberID/", orgController.RemoveMember)

	memberRouter.GET("/invitations/", orgInvitationController.List)
	memberRouter.POST("/invitations/", orgInvitationController.Invite)
	memberRouter.GET("/invitations/:invitationID/", orgInvitationController.Read)
	memberRouter.DELETE("/invitations/:invitationID/", orgInvitationController.Cancel)

	return OrgRouter{organizationRouter}
}
