// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package shared

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ory/client-go"
	"github.com/worknest-dev/worknest/database/models"
)

// AuthSession is the resolved caller identity attached to the request by the
// session middleware. A session does not imply a local user row exists.
type AuthSession interface {
	GetUserID() string
	GetEmail() string
	GetName() string
	GetAvatar() string
}

// AdminClient wraps the identity provider's admin API. Only the session
// lookup is needed by the request path; identity listing is used by tooling.
type AdminClient interface {
	GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error)
	GetIdentity(ctx context.Context, userID string) (client.Identity, error)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

// GetUser returns the local user row resolved by the user middleware.
func GetUser(ctx Context) models.User {
	return ctx.Get("user").(models.User)
}

func SetUser(ctx Context, user models.User) {
	ctx.Set("user", user)
}

func SetOrg(ctx Context, org models.Organization) {
	ctx.Set("organization", org)
}

func GetOrg(ctx Context) models.Organization {
	return ctx.Get("organization").(models.Organization)
}

// SetOrgMembership stashes the caller's membership row in the current
// organization. A missing row is stashed as nil - authorization decisions
// distinguish "not a member" from "insufficient role".
func SetOrgMembership(ctx Context, member *models.OrganizationMember) {
	ctx.Set("orgMembership", member)
}

func GetOrgMembership(ctx Context) *models.OrganizationMember {
	member, ok := ctx.Get("orgMembership").(*models.OrganizationMember)
	if !ok {
		return nil
	}
	return member
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func SetProjectMembership(ctx Context, member *models.ProjectMember) {
	ctx.Set("projectMembership", member)
}

func GetProjectMembership(ctx Context) *models.ProjectMember {
	member, ok := ctx.Get("projectMembership").(*models.ProjectMember)
	if !ok {
		return nil
	}
	return member
}

// GetUUIDParam parses a path parameter as a UUID.
func GetUUIDParam(ctx Context, name string) (uuid.UUID, error) {
	v := ctx.Param(name)
	if v == "" {
		return uuid.Nil, fmt.Errorf("missing %s parameter", name)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return id, nil
}
