// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package accesscontrol

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/worknest-dev/worknest/database/models"
)

func orgMember(role models.OrganizationRole) *models.OrganizationMember {
	return &models.OrganizationMember{UserID: uuid.New(), Role: role}
}

func projectMember(userID uuid.UUID, role models.ProjectRole) models.ProjectMember {
	return models.ProjectMember{UserID: userID, Role: role}
}

func TestCanManageOrganization(t *testing.T) {
	assert.True(t, CanManageOrganization(orgMember(models.RoleOrgAdmin)))
	assert.False(t, CanManageOrganization(orgMember(models.RoleOrgMember)))
	assert.False(t, CanManageOrganization(nil))
}

func TestCanManageProject(t *testing.T) {
	lead := projectMember(uuid.New(), models.RoleProjectLead)
	member := projectMember(uuid.New(), models.RoleProjectMember)

	t.Run("org admins manage every project, member or not", func(t *testing.T) {
		assert.True(t, CanManageProject(orgMember(models.RoleOrgAdmin), nil))
		assert.True(t, CanManageProject(orgMember(models.RoleOrgAdmin), &member))
	})

	t.Run("leads manage their project", func(t *testing.T) {
		assert.True(t, CanManageProject(orgMember(models.RoleOrgMember), &lead))
	})

	t.Run("regular project members do not", func(t *testing.T) {
		assert.False(t, CanManageProject(orgMember(models.RoleOrgMember), &member))
		assert.False(t, CanManageProject(orgMember(models.RoleOrgMember), nil))
	})
}

func TestCanRemoveOrgMember(t *testing.T) {
	t.Run("anyone can remove themselves", func(t *testing.T) {
		caller := orgMember(models.RoleOrgMember)
		target := models.OrganizationMember{UserID: caller.UserID, Role: models.RoleOrgMember}
		target.ID = caller.ID

		assert.True(t, CanRemoveOrgMember(caller, target))
	})

	t.Run("admins can remove others", func(t *testing.T) {
		caller := orgMember(models.RoleOrgAdmin)
		target := models.OrganizationMember{UserID: uuid.New(), Role: models.RoleOrgMember}
		target.ID = uuid.New()

		assert.True(t, CanRemoveOrgMember(caller, target))
	})

	t.Run("members cannot remove others", func(t *testing.T) {
		caller := orgMember(models.RoleOrgMember)
		target := models.OrganizationMember{UserID: uuid.New(), Role: models.RoleOrgMember}
		target.ID = uuid.New()

		assert.False(t, CanRemoveOrgMember(caller, target))
	})
}

func TestCanRemoveProjectMember(t *testing.T) {
	callerID := uuid.New()

	t.Run("a member can remove themselves", func(t *testing.T) {
		self := projectMember(callerID, models.RoleProjectMember)
		callerMembership := projectMember(callerID, models.RoleProjectMember)

		assert.True(t, CanRemoveProjectMember(orgMember(models.RoleOrgMember), &callerMembership, callerID, self))
	})

	t.Run("a lead can remove others", func(t *testing.T) {
		callerMembership := projectMember(callerID, models.RoleProjectLead)
		target := projectMember(uuid.New(), models.RoleProjectMember)

		assert.True(t, CanRemoveProjectMember(orgMember(models.RoleOrgMember), &callerMembership, callerID, target))
	})

	t.Run("an org admin outside the project can remove members", func(t *testing.T) {
		target := projectMember(uuid.New(), models.RoleProjectMember)

		assert.True(t, CanRemoveProjectMember(orgMember(models.RoleOrgAdmin), nil, callerID, target))
	})

	t.Run("a regular member cannot remove someone else", func(t *testing.T) {
		callerMembership := projectMember(callerID, models.RoleProjectMember)
		target := projectMember(uuid.New(), models.RoleProjectMember)

		assert.False(t, CanRemoveProjectMember(orgMember(models.RoleOrgMember), &callerMembership, callerID, target))
	})
}
