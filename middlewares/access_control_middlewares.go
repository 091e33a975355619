// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/accesscontrol"
	"github.com/worknest-dev/worknest/shared"
)

// RequireSession rejects unauthenticated requests. The session middleware
// always sets a session value, authenticated or not.
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		session, ok := shared.GetSession(ctx).(accesscontrol.Session)
		if !ok || !session.IsAuthenticated() {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return next(ctx)
	}
}

// RequireOrgMembership rejects callers without a membership row in the
// organization the request is scoped to.
func RequireOrgMembership(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if shared.GetOrgMembership(ctx) == nil {
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		}
		return next(ctx)
	}
}

// RequireOrgAdmin gates an endpoint on the admin role. The message is
// per-endpoint so the response names the operation that was refused.
func RequireOrgAdmin(message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			membership := shared.GetOrgMembership(ctx)
			if membership == nil {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			if !accesscontrol.CanManageOrganization(membership) {
				return echo.NewHTTPError(http.StatusForbidden, message)
			}
			return next(ctx)
		}
	}
}

// RequireProjectManage allows organization admins and project leads through.
func RequireProjectManage(message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			orgMembership := shared.GetOrgMembership(ctx)
			if orgMembership == nil {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			if !accesscontrol.CanManageProject(orgMembership, shared.GetProjectMembership(ctx)) {
				return echo.NewHTTPError(http.StatusForbidden, message)
			}
			return next(ctx)
		}
	}
}
