// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/mocks"
)

func TestCreateOrganization(t *testing.T) {
	userID := uuid.New()

	t.Run("rejects a name that is empty after trimming", func(t *testing.T) {
		svc := NewOrgService(mocks.NewOrganizationRepository(t), mocks.NewOrganizationMemberRepository(t))

		_, err := svc.CreateOrganization(userID, "   ")

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Organization name is required", httpErr.Message)
	})

	t.Run("creates the organization and the first admin in one transaction", func(t *testing.T) {
		orgRepository := mocks.NewOrganizationRepository(t)
		memberRepository := mocks.NewOrganizationMemberRepository(t)

		orgRepository.On("Transaction", mock.Anything).Run(runTransaction).Return(nil)
		orgRepository.On("Create", mock.Anything, mock.MatchedBy(func(org *models.Organization) bool {
			return org.Name == "Acme" && org.IsActive
		})).Return(nil)
		memberRepository.On("Create", mock.Anything, mock.MatchedBy(func(member *models.OrganizationMember) bool {
			return member.UserID == userID && member.Role == models.RoleOrgAdmin
		})).Return(nil)

		svc := NewOrgService(orgRepository, memberRepository)

		org, err := svc.CreateOrganization(userID, "  Acme  ")

		assert.NoError(t, err)
		assert.Equal(t, "Acme", org.Name)
	})
}

func TestChangeMemberRole(t *testing.T) {
	orgID := uuid.New()

	t.Run("unknown member yields 404", func(t *testing.T) {
		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("FindInOrg", orgID, mock.Anything).Return(models.OrganizationMember{}, assert.AnError)

		svc := NewOrgService(mocks.NewOrganizationRepository(t), memberRepository)

		_, err := svc.ChangeMemberRole(orgID, uuid.New(), models.RoleOrgAdmin)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
		assert.Equal(t, "Member not found", httpErr.Message)
	})

	t.Run("demoting the last admin is refused", func(t *testing.T) {
		admin := models.OrganizationMember{OrganizationID: orgID, Role: models.RoleOrgAdmin}
		admin.ID = uuid.New()

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("FindInOrg", orgID, admin.ID).Return(admin, nil)
		memberRepository.On("Transaction", mock.Anything).Return(execTransaction)
		memberRepository.On("CountAdmins", mock.Anything, orgID).Return(int64(1), nil)

		svc := NewOrgService(mocks.NewOrganizationRepository(t), memberRepository)

		_, err := svc.ChangeMemberRole(orgID, admin.ID, models.RoleOrgMember)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, "Cannot remove the last organization admin", httpErr.Message)
	})

	t.Run("demoting one of two admins succeeds", func(t *testing.T) {
		admin := models.OrganizationMember{OrganizationID: orgID, Role: models.RoleOrgAdmin}
		admin.ID = uuid.New()

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("FindInOrg", orgID, admin.ID).Return(admin, nil)
		memberRepository.On("Transaction", mock.Anything).Return(execTransaction)
		memberRepository.On("CountAdmins", mock.Anything, orgID).Return(int64(2), nil)
		memberRepository.On("Save", mock.Anything, mock.MatchedBy(func(member *models.OrganizationMember) bool {
			return member.Role == models.RoleOrgMember
		})).Return(nil)

		svc := NewOrgService(mocks.NewOrganizationRepository(t), memberRepository)

		member, err := svc.ChangeMemberRole(orgID, admin.ID, models.RoleOrgMember)

		assert.NoError(t, err)
		assert.Equal(t, models.RoleOrgMember, member.Role)
	})

	t.Run("promoting a member never triggers the last admin check", func(t *testing.T) {
		member := models.OrganizationMember{OrganizationID: orgID, Role: models.RoleOrgMember}
		member.ID = uuid.New()

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("FindInOrg", orgID, member.ID).Return(member, nil)
		memberRepository.On("Transaction", mock.Anything).Return(execTransaction)
		memberRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		svc := NewOrgService(mocks.NewOrganizationRepository(t), memberRepository)

		updated, err := svc.ChangeMemberRole(orgID, member.ID, models.RoleOrgAdmin)

		assert.NoError(t, err)
		assert.Equal(t, models.RoleOrgAdmin, updated.Role)
	})
}

func TestRemoveMember(t *testing.T) {
	orgID := uuid.New()

	newCaller := func(role models.OrganizationRole) models.OrganizationMember {
		caller := models.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: role}
		caller.ID = uuid.New()
		return caller
	}

	t.Run("a regular member cannot remove someone else", func(t *testing.T) {
		caller := newCaller(models.RoleOrgMember)
		target := models.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: models.RoleOrgMember}
		target.ID = uuid.New()

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("FindInOrg", orgID, target.ID).Return(target, nil)

		svc := NewOrgService(mocks.NewOrganizationRepository(t), memberRepository)

		err := svc.RemoveMember(caller, target.ID)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
		assert.Equal(t, "Forbidden: only admins can remove other members", httpErr.Message)
	})

	t.Run("a member can leave on their own", func(t *testing.T) {
		caller := newCaller(models.RoleOrgMember)

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("FindInOrg", orgID, caller.ID).Return(caller, nil)
		memberRepository.On("Transaction", mock.Anything).Return(execTransaction)
		memberRepository.On("Delete", mock.Anything, caller.ID).Return(nil)

		svc := NewOrgService(mocks.NewOrganizationRepository(t), memberRepository)

		assert.NoError(t, svc.RemoveMember(caller, caller.ID))
	})

	t.Run("the last admin cannot be removed, not even by themselves", func(t *testing.T) {
		caller := newCaller(models.RoleOrgAdmin)

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("FindInOrg", orgID, caller.ID).Return(caller, nil)
		memberRepository.On("Transaction", mock.Anything).Return(execTransaction)
		memberRepository.On("CountAdmins", mock.Anything, orgID).Return(int64(1), nil)

		svc := NewOrgService(mocks.NewOrganizationRepository(t), memberRepository)

		err := svc.RemoveMember(caller, caller.ID)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, "Cannot remove the last organization admin", httpErr.Message)
	})

	t.Run("an admin removes a regular member", func(t *testing.T) {
		caller := newCaller(models.RoleOrgAdmin)
		target := models.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: models.RoleOrgMember}
		target.ID = uuid.New()

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("FindInOrg", orgID, target.ID).Return(target, nil)
		memberRepository.On("Transaction", mock.Anything).Return(execTransaction)
		memberRepository.On("Delete", mock.Anything, target.ID).Return(nil)

		svc := NewOrgService(mocks.NewOrganizationRepository(t), memberRepository)

		assert.NoError(t, svc.RemoveMember(caller, target.ID))
	})

	t.Run("the admin count and the delete share a transaction", func(t *testing.T) {
		caller := newCaller(models.RoleOrgAdmin)
		target := models.OrganizationMember{OrganizationID: orgID, UserID: uuid.New(), Role: models.RoleOrgAdmin}
		target.ID = uuid.New()

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("FindInOrg", orgID, target.ID).Return(target, nil)
		memberRepository.On("Transaction", mock.Anything).Return(execTransaction)
		memberRepository.On("CountAdmins", mock.Anything, orgID).Return(int64(2), nil)
		memberRepository.On("Delete", mock.Anything, target.ID).Return(nil)

		svc := NewOrgService(mocks.NewOrganizationRepository(t), memberRepository)

		assert.NoError(t, svc.RemoveMember(caller, target.ID))
		memberRepository.AssertCalled(t, "CountAdmins", mock.Anything, orgID)
	})
}
