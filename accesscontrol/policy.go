// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package accesscontrol holds the pure authorization decisions. Every
// function takes the caller's membership rows - nil when the caller holds no
// membership at that scope - and returns a verdict without touching the
// store. Absence of a membership row is checked before role sufficiency, so
// handlers can keep "Forbidden" and "Forbidden: insufficient role" apart.
package accesscontrol

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
)

// CanManageOrganization governs inviting and cancelling organization
// invitations, changing member roles and removing members other than self.
func CanManageOrganization(orgMember *models.OrganizationMember) bool {
	return orgMember != nil && orgMember.Role == models.RoleOrgAdmin
}

// CanManageProject governs project invitations, project member management and
// project update/delete. Org admins keep management rights over every project
// in their organization, even projects they are not a member of.
func CanManageProject(orgMember *models.OrganizationMember, projectMember *models.ProjectMember) bool {
	if orgMember != nil && orgMember.Role == models.RoleOrgAdmin {
		return true
	}
	return projectMember != nil && projectMember.Role == models.RoleProjectLead
}

// CanRemoveOrgMember permits self-removal regardless of role; removing
// someone else requires admin. The last-admin invariant is enforced
// separately at mutation time.
func CanRemoveOrgMember(caller *models.OrganizationMember, target models.OrganizationMember) bool {
	if caller == nil {
		return false
	}
	if caller.UserID == target.UserID {
		return true
	}
	return CanManageOrganization(caller)
}

// CanRemoveProjectMember permits self-removal regardless of role; removing
// someone else requires lead or org admin.
func CanRemoveProjectMember(orgMember *models.OrganizationMember, callerProjectMember *models.ProjectMember, callerUserID uuid.UUID, target models.ProjectMember) bool {
	if target.UserID == callerUserID {
		return true
	}
	return CanManageProject(orgMember, callerProjectMember)
}
