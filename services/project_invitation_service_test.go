// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/mocks"
	"github.com/worknest-dev/worknest/shared"
	"gorm.io/gorm"
)

func newTestProject() models.Project {
	project := models.Project{OrganizationID: uuid.New(), Name: "Marketing", Key: "MKTG"}
	project.ID = uuid.New()
	return project
}

func TestProjectInvite(t *testing.T) {
	project := newTestProject()
	inviteeID := uuid.New()

	t.Run("an invitee outside the organization is refused, no row created", func(t *testing.T) {
		orgMemberRepository := mocks.NewOrganizationMemberRepository(t)
		orgMemberRepository.On("FindByUserAndOrg", inviteeID, project.OrganizationID).Return(models.OrganizationMember{}, gorm.ErrRecordNotFound)

		svc := NewProjectInvitationService(mocks.NewProjectInvitationRepository(t), mocks.NewProjectMemberRepository(t), orgMemberRepository, mocks.NewUserRepository(t), mocks.NewMailer(t))

		_, err := svc.Invite(project, inviteeID, models.RoleProjectMember)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "User is not a member of this organization", httpErr.Message)
	})

	t.Run("an existing project member is refused", func(t *testing.T) {
		orgMemberRepository := mocks.NewOrganizationMemberRepository(t)
		orgMemberRepository.On("FindByUserAndOrg", inviteeID, project.OrganizationID).Return(models.OrganizationMember{}, nil)

		projectMemberRepository := mocks.NewProjectMemberRepository(t)
		projectMemberRepository.On("FindByUserAndProject", inviteeID, project.ID).Return(models.ProjectMember{}, nil)

		svc := NewProjectInvitationService(mocks.NewProjectInvitationRepository(t), projectMemberRepository, orgMemberRepository, mocks.NewUserRepository(t), mocks.NewMailer(t))

		_, err := svc.Invite(project, inviteeID, models.RoleProjectMember)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, "User is already a project member", httpErr.Message)
	})

	t.Run("re-inviting refreshes the single row keyed by project and user", func(t *testing.T) {
		existing := models.ProjectInvitation{
			ProjectID: project.ID,
			UserID:    inviteeID,
			Role:      models.RoleProjectMember,
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		existing.ID = uuid.New()

		orgMemberRepository := mocks.NewOrganizationMemberRepository(t)
		orgMemberRepository.On("FindByUserAndOrg", inviteeID, project.OrganizationID).Return(models.OrganizationMember{}, nil)

		projectMemberRepository := mocks.NewProjectMemberRepository(t)
		projectMemberRepository.On("FindByUserAndProject", inviteeID, project.ID).Return(models.ProjectMember{}, gorm.ErrRecordNotFound)

		invitationRepository := mocks.NewProjectInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Run(runTransaction).Return(nil)
		invitationRepository.On("FindByUserAndProject", mock.Anything, inviteeID, project.ID).Return(existing, nil)
		invitationRepository.On("Save", mock.Anything, mock.MatchedBy(func(invitation *models.ProjectInvitation) bool {
			return invitation.ID == existing.ID &&
				invitation.Role == models.RoleProjectLead &&
				invitation.ExpiresAt.After(time.Now())
		})).Return(nil)
		invitationRepository.On("Read", existing.ID).Return(existing, nil)

		mailer := mocks.NewMailer(t)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", inviteeID).Return(models.User{Email: "c@x.com"}, nil).Maybe()

		svc := NewProjectInvitationService(invitationRepository, projectMemberRepository, orgMemberRepository, userRepository, mailer)

		_, err := svc.Invite(project, inviteeID, models.RoleProjectLead)

		assert.NoError(t, err)
	})

	t.Run("the upsert reads and writes on the same transaction handle", func(t *testing.T) {
		orgMemberRepository := mocks.NewOrganizationMemberRepository(t)
		orgMemberRepository.On("FindByUserAndOrg", inviteeID, project.OrganizationID).Return(models.OrganizationMember{}, nil)

		projectMemberRepository := mocks.NewProjectMemberRepository(t)
		projectMemberRepository.On("FindByUserAndProject", inviteeID, project.ID).Return(models.ProjectMember{}, gorm.ErrRecordNotFound)

		txHandle := &gorm.DB{}
		invitationRepository := mocks.NewProjectInvitationRepository(t)
		invitationRepository.On("Transaction", mock.Anything).Run(func(args mock.Arguments) {
			fn := args.Get(0).(func(tx shared.DB) error)
			_ = fn(txHandle)
		}).Return(nil)
		invitationRepository.On("FindByUserAndProject", txHandle, inviteeID, project.ID).Return(models.ProjectInvitation{}, gorm.ErrRecordNotFound)
		invitationRepository.On("Create", txHandle, mock.Anything).Return(nil)
		invitationRepository.On("Read", mock.Anything).Return(models.ProjectInvitation{}, nil)

		mailer := mocks.NewMailer(t)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", inviteeID).Return(models.User{Email: "c@x.com"}, nil).Maybe()

		svc := NewProjectInvitationService(invitationRepository, projectMemberRepository, orgMemberRepository, userRepository, mailer)

		_, err := svc.Invite(project, inviteeID, models.RoleProjectMember)

		assert.NoError(t, err)
	})
}

func TestProjectInvitationAccept(t *testing.T) {
	project := newTestProject()
	user := models.User{Email: "c@x.com"}
	user.ID = uuid.New()

	newInvitation := func() models.ProjectInvitation {
		invitation := models.ProjectInvitation{
			ProjectID: project.ID,
			UserID:    user.ID,
			Role:      models.RoleProjectMember,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		invitation.ID = uuid.New()
		return invitation
	}

	t.Run("someone else's invitation yields 403", func(t *testing.T) {
		invitation := newInvitation()
		invitation.UserID = uuid.New()

		invitationRepository := mocks.NewProjectInvitationRepository(t)
		invitationRepository.On("Read", invitation.ID).Return(invitation, nil)

		svc := NewProjectInvitationService(invitationRepository, mocks.NewProjectMemberRepository(t), mocks.NewOrganizationMemberRepository(t), mocks.NewUserRepository(t), mocks.NewMailer(t))

		_, err := svc.Accept(user, invitation.ID)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
		assert.Equal(t, "Forbidden", httpErr.Message)
	})

	t.Run("already a project member is refused", func(t *testing.T) {
		invitation := newInvitation()

		invitationRepository := mocks.NewProjectInvitationRepository(t)
		invitationRepository.On("Read", invitation.ID).Return(invitation, nil)

		projectMemberRepository := mocks.NewProjectMemberRepository(t)
		projectMemberRepository.On("FindByUserAndProject", user.ID, project.ID).Return(models.ProjectMember{}, nil)

		svc := NewProjectInvitationService(invitationRepository, projectMemberRepository, mocks.NewOrganizationMemberRepository(t), mocks.NewUserRepository(t), mocks.NewMailer(t))

		_, err := svc.Accept(user, invitation.ID)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, "Already a member of this project", httpErr.Message)
	})

	t.Run("accept creates the membership at the invited role and stamps acceptedAt", func(t *testing.T) {
		invitation := newInvitation()
		invitation.Role = models.RoleProjectLead

		invitationRepository := mocks.NewProjectInvitationRepository(t)
		invitationRepository.On("Read", invitation.ID).Return(invitation, nil)
		invitationRepository.On("Transaction", mock.Anything).Run(runTransaction).Return(nil)
		invitationRepository.On("Save", mock.Anything, mock.MatchedBy(func(saved *models.ProjectInvitation) bool {
			return saved.AcceptedAt != nil
		})).Return(nil)

		projectMemberRepository := mocks.NewProjectMemberRepository(t)
		projectMemberRepository.On("FindByUserAndProject", user.ID, project.ID).Return(models.ProjectMember{}, gorm.ErrRecordNotFound)
		projectMemberRepository.On("Create", mock.Anything, mock.MatchedBy(func(member *models.ProjectMember) bool {
			return member.UserID == user.ID &&
				member.ProjectID == project.ID &&
				member.Role == models.RoleProjectLead
		})).Return(nil)

		svc := NewProjectInvitationService(invitationRepository, projectMemberRepository, mocks.NewOrganizationMemberRepository(t), mocks.NewUserRepository(t), mocks.NewMailer(t))

		accepted, err := svc.Accept(user, invitation.ID)

		assert.NoError(t, err)
		assert.NotNil(t, accepted.AcceptedAt)
	})

	t.Run("reject deletes the row without creating a membership", func(t *testing.T) {
		invitation := newInvitation()

		invitationRepository := mocks.NewProjectInvitationRepository(t)
		invitationRepository.On("Read", invitation.ID).Return(invitation, nil)
		invitationRepository.On("Delete", mock.Anything, invitation.ID).Return(nil)

		svc := NewProjectInvitationService(invitationRepository, mocks.NewProjectMemberRepository(t), mocks.NewOrganizationMemberRepository(t), mocks.NewUserRepository(t), mocks.NewMailer(t))

		assert.NoError(t, svc.Reject(user, invitation.ID))
	})

	t.Run("an accepted invitation cannot be accepted twice", func(t *testing.T) {
		invitation := newInvitation()
		invitation.AcceptedAt = shared.Ptr(time.Now())

		invitationRepository := mocks.NewProjectInvitationRepository(t)
		invitationRepository.On("Read", invitation.ID).Return(invitation, nil)

		svc := NewProjectInvitationService(invitationRepository, mocks.NewProjectMemberRepository(t), mocks.NewOrganizationMemberRepository(t), mocks.NewUserRepository(t), mocks.NewMailer(t))

		_, err := svc.Accept(user, invitation.ID)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, "Invitation already accepted", httpErr.Message)
	})
}
