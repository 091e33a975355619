// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/controllers"
)

type UserRouter struct {
	*echo.Group
}

func NewUserRouter(
	sessionRouter SessionRouter,
	userInvitationController *controllers.UserInvitationController,
) UserRouter {
	userRouter := sessionRouter.Group.Group("/user")
	userRouter.GET("/invitations/", userInvitationController.List)
	userRouter.POST("/invitations/:invitationID/", userInvitationController.Resolve)

	// invitation emails link here with the token from the mail
	sessionRouter.POST("/invitations/accept/", userInvitationController.AcceptByToken)

	return UserRouter{userRouter}
}
