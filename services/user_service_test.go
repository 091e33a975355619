// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/mocks"
	"github.com/worknest-dev/worknest/shared"
	"gorm.io/gorm"
)

func newSessionMock(t *testing.T, externalID, email string) *mocks.AuthSession {
	session := mocks.NewAuthSession(t)
	session.On("GetUserID").Return(externalID).Maybe()
	session.On("GetEmail").Return(email).Maybe()
	session.On("GetName").Return("Ada").Maybe()
	session.On("GetAvatar").Return("").Maybe()
	return session
}

func TestSyncSession(t *testing.T) {
	t.Run("first sign-in creates the user and a personal workspace", func(t *testing.T) {
		session := newSessionMock(t, "ext-1", "Ada@X.com")

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("FindByExternalID", "ext-1").Return(models.User{}, gorm.ErrRecordNotFound)
		userRepository.On("FindByEmail", "ada@x.com").Return(models.User{}, gorm.ErrRecordNotFound)
		userRepository.On("Create", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Email == "ada@x.com" && user.IsVerified && *user.ExternalID == "ext-1"
		})).Return(nil)

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("ListByUser", mock.Anything).Return([]models.OrganizationMember{}, nil)
		memberRepository.On("Create", mock.Anything, mock.MatchedBy(func(member *models.OrganizationMember) bool {
			return member.Role == models.RoleOrgAdmin
		})).Return(nil)

		orgRepository := mocks.NewOrganizationRepository(t)
		orgRepository.On("Transaction", mock.Anything).Run(runTransaction).Return(nil)
		orgRepository.On("Create", mock.Anything, mock.MatchedBy(func(org *models.Organization) bool {
			return org.Name == "Personal workspace" && org.IsActive
		})).Return(nil)

		svc := NewUserService(userRepository, orgRepository, memberRepository)

		user, err := svc.SyncSession(session)

		assert.NoError(t, err)
		assert.Equal(t, "ada@x.com", user.Email)
	})

	t.Run("an existing account is matched by email and linked to the subject id", func(t *testing.T) {
		session := newSessionMock(t, "ext-2", "ada@x.com")

		existing := models.User{Email: "ada@x.com"}
		existing.ID = uuid.New()

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("FindByExternalID", "ext-2").Return(models.User{}, gorm.ErrRecordNotFound)
		userRepository.On("FindByEmail", "ada@x.com").Return(existing, nil)
		userRepository.On("Save", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.ID == existing.ID && *user.ExternalID == "ext-2" && user.IsVerified
		})).Return(nil)

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("ListByUser", existing.ID).Return([]models.OrganizationMember{{UserID: existing.ID}}, nil)

		svc := NewUserService(userRepository, mocks.NewOrganizationRepository(t), memberRepository)

		user, err := svc.SyncSession(session)

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
	})

	t.Run("a returning user with memberships gets no extra workspace", func(t *testing.T) {
		session := newSessionMock(t, "ext-3", "ada@x.com")

		existing := models.User{Email: "ada@x.com", Name: shared.Ptr("Ada")}
		existing.ID = uuid.New()
		existing.ExternalID = shared.Ptr("ext-3")

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("FindByExternalID", "ext-3").Return(existing, nil)

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("ListByUser", existing.ID).Return([]models.OrganizationMember{{UserID: existing.ID}}, nil)

		svc := NewUserService(userRepository, mocks.NewOrganizationRepository(t), memberRepository)

		user, err := svc.SyncSession(session)

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
	})
}
