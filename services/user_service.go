// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"errors"
	"strings"

	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/shared"
	"gorm.io/gorm"
)

const defaultOrgName = "Personal workspace"

type userService struct {
	userRepository   shared.UserRepository
	orgRepository    shared.OrganizationRepository
	memberRepository shared.OrganizationMemberRepository
}

func NewUserService(userRepository shared.UserRepository, orgRepository shared.OrganizationRepository, memberRepository shared.OrganizationMemberRepository) *userService {
	return &userService{
		userRepository:   userRepository,
		orgRepository:    orgRepository,
		memberRepository: memberRepository,
	}
}

// SyncSession reconciles the identity-provider session with the local user
// row. Matching prefers the stable subject id over the email, so an email
// change at the provider does not fork the account.
func (s *userService) SyncSession(session shared.AuthSession) (models.User, error) {
	user, err := s.syncUser(session)
	if err != nil {
		return user, err
	}

	if err := s.provisionDefaultOrg(user); err != nil {
		return user, err
	}

	return user, nil
}

func (s *userService) syncUser(session shared.AuthSession) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(session.GetEmail()))
	externalID := session.GetUserID()

	user, err := s.userRepository.FindByExternalID(externalID)
	if err == nil {
		changed := false
		if user.Email != email && email != "" {
			user.Email = email
			changed = true
		}
		if name := session.GetName(); name != "" && (user.Name == nil || *user.Name != name) {
			user.Name = &name
			changed = true
		}
		if avatar := session.GetAvatar(); avatar != "" && (user.Avatar == nil || *user.Avatar != avatar) {
			user.Avatar = &avatar
			changed = true
		}
		if changed {
			if err := s.userRepository.Save(nil, &user); err != nil {
				return user, err
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	// an account that signed up before the provider issued this subject id
	user, err = s.userRepository.FindByEmail(email)
	if err == nil {
		user.ExternalID = &externalID
		user.Name = optionalString(session.GetName())
		user.Avatar = optionalString(session.GetAvatar())
		user.IsVerified = true
		if err := s.userRepository.Save(nil, &user); err != nil {
			return user, err
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	user = models.User{
		Email:      email,
		Name:       optionalString(session.GetName()),
		Avatar:     optionalString(session.GetAvatar()),
		ExternalID: &externalID,
		IsVerified: true,
	}
	if err := s.userRepository.Create(nil, &user); err != nil {
		return user, err
	}
	return user, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// provisionDefaultOrg gives a brand-new user a workspace of their own so the
// first screen is never empty.
func (s *userService) provisionDefaultOrg(user models.User) error {
	memberships, err := s.memberRepository.ListByUser(user.ID)
	if err != nil {
		return err
	}
	if len(memberships) > 0 {
		return nil
	}

	return s.orgRepository.Transaction(func(tx shared.DB) error {
		org := models.Organization{
			Name:     defaultOrgName,
			IsActive: true,
		}
		if err := s.orgRepository.Create(tx, &org); err != nil {
			return err
		}
		member := models.OrganizationMember{
			UserID:         user.ID,
			OrganizationID: org.ID,
			Role:           models.RoleOrgAdmin,
		}
		return s.memberRepository.Create(tx, &member)
	})
}
