// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package middlewares

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/shared"
	"gorm.io/gorm"
)

// UserMiddleware resolves the local user row for the authenticated session
// and attaches it to the request. A session without a row yet (first request
// after sign-in) is synced on the fly, which also provisions the default
// workspace.
func UserMiddleware(userRepository shared.UserRepository, userService shared.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session := shared.GetSession(ctx)

			user, err := userRepository.FindByExternalID(session.GetUserID())
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				user, err = userService.SyncSession(session)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized").WithInternal(err)
				}
			}

			shared.SetUser(ctx, user)
			return next(ctx)
		}
	}
}

// OrgMiddleware resolves the organization from the orgID path parameter and
// the caller's membership in it. The membership may be nil: some routes let
// non-members through with a scoped 404 instead of leaking existence via 403.
func OrgMiddleware(orgRepository shared.OrganizationRepository, memberRepository shared.OrganizationMemberRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			orgID, err := shared.GetUUIDParam(ctx, "orgID")
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "Organization not found or access denied").WithInternal(err)
			}

			org, err := orgRepository.Read(orgID)
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "Organization not found or access denied").WithInternal(err)
			}
			shared.SetOrg(ctx, org)

			user := shared.GetUser(ctx)
			membership, err := memberRepository.FindByUserAndOrg(user.ID, org.ID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				shared.SetOrgMembership(ctx, nil)
				return next(ctx)
			}

			shared.SetOrgMembership(ctx, &membership)
			return next(ctx)
		}
	}
}

// ProjectMiddleware resolves the project from the projectID path parameter,
// scoped to the organization already on the context.
func ProjectMiddleware(projectRepository shared.ProjectRepository, memberRepository shared.ProjectMemberRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			projectID, err := shared.GetUUIDParam(ctx, "projectID")
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "Project not found").WithInternal(err)
			}

			org := shared.GetOrg(ctx)
			project, err := projectRepository.FindInOrg(org.ID, projectID)
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "Project not found").WithInternal(err)
			}
			shared.SetProject(ctx, project)

			user := shared.GetUser(ctx)
			membership, err := memberRepository.FindByUserAndProject(user.ID, project.ID)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				shared.SetProjectMembership(ctx, nil)
				return next(ctx)
			}

			shared.SetProjectMembership(ctx, &membership)
			return next(ctx)
		}
	}
}
