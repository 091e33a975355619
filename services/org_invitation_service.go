// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/dtos"
	"github.com/worknest-dev/worknest/mail"
	"github.com/worknest-dev/worknest/shared"
	"gorm.io/gorm"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const invitationTTL = 7 * 24 * time.Hour

type orgInvitationService struct {
	invitationRepository shared.OrganizationInvitationRepository
	memberRepository     shared.OrganizationMemberRepository
	userRepository       shared.UserRepository
	mailer               shared.Mailer
}

func NewOrgInvitationService(invitationRepository shared.OrganizationInvitationRepository, memberRepository shared.OrganizationMemberRepository, userRepository shared.UserRepository, mailer shared.Mailer) *orgInvitationService {
	return &orgInvitationService{
		invitationRepository: invitationRepository,
		memberRepository:     memberRepository,
		userRepository:       userRepository,
		mailer:               mailer,
	}
}

// InviteMembers processes each address independently and never fails the
// batch: every address ends up in exactly one result bucket. A re-invite
// overwrites the existing row (role, expiry, acceptedAt) instead of creating
// a duplicate; when that row was still pending the address is reported under
// alreadyInvited so callers can tell a refresh from a first invite.
func (s *orgInvitationService) InviteMembers(org models.Organization, emails []string, role models.OrganizationRole) dtos.InvitationBatchResult {
	result := dtos.InvitationBatchResult{
		Success:        []string{},
		Failed:         []dtos.FailedEmail{},
		AlreadyMember:  []string{},
		AlreadyInvited: []string{},
	}

	for _, raw := range emails {
		email := strings.ToLower(strings.TrimSpace(raw))
		if !emailRegexp.MatchString(email) {
			result.Failed = append(result.Failed, dtos.FailedEmail{Email: raw, Reason: "Invalid email format"})
			continue
		}

		if s.isMember(email, org.ID) {
			result.AlreadyMember = append(result.AlreadyMember, email)
			continue
		}

		refreshed, err := s.upsertInvitation(email, org.ID, role)
		if err != nil {
			slog.Error("could not upsert invitation", "email", email, "orgID", org.ID, "err", err)
			result.Failed = append(result.Failed, dtos.FailedEmail{Email: email, Reason: "Could not create invitation"})
			continue
		}

		if refreshed {
			result.AlreadyInvited = append(result.AlreadyInvited, email)
		} else {
			result.Success = append(result.Success, email)
		}

		go s.sendInvitationMail(email, org)
	}

	return result
}

func (s *orgInvitationService) isMember(email string, orgID uuid.UUID) bool {
	user, err := s.userRepository.FindByEmail(email)
	if err != nil {
		return false
	}
	_, err = s.memberRepository.FindByUserAndOrg(user.ID, orgID)
	return err == nil
}

// upsertInvitation refreshes the single row keyed by (email, organization).
// The read and the write run in one transaction so two concurrent invites
// for the same address cannot race past the unique index.
func (s *orgInvitationService) upsertInvitation(email string, orgID uuid.UUID, role models.OrganizationRole) (refreshed bool, err error) {
	err = s.invitationRepository.Transaction(func(tx shared.DB) error {
		existing, err := s.invitationRepository.FindByEmailAndOrg(tx, email, orgID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			invitation := models.OrganizationInvitation{
				Email:          email,
				OrganizationID: orgID,
				Role:           role,
				ExpiresAt:      time.Now().Add(invitationTTL),
			}
			return s.invitationRepository.Create(tx, &invitation)
		}

		refreshed = existing.AcceptedAt == nil && existing.ExpiresAt.After(time.Now())

		existing.Role = role
		existing.ExpiresAt = time.Now().Add(invitationTTL)
		existing.AcceptedAt = nil
		return s.invitationRepository.Save(tx, &existing)
	})
	return refreshed, err
}

func (s *orgInvitationService) sendInvitationMail(email string, org models.Organization) {
	link := fmt.Sprintf("%s/invitations/accept", os.Getenv("FRONTEND_URL"))
	subject, body := mail.OrgInvitationEmail(org.Name, link)
	if err := s.mailer.Send(email, subject, body); err != nil {
		slog.Error("could not send invitation email", "email", email, "orgID", org.ID, "err", err)
	}
}

// Accept turns the invitation into a membership. Creating the membership row
// and stamping acceptedAt happen in one transaction.
func (s *orgInvitationService) Accept(user models.User, invitationID uuid.UUID) (models.OrganizationInvitation, error) {
	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		return invitation, echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	if !strings.EqualFold(invitation.Email, user.Email) {
		return invitation, echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	}

	if invitation.ExpiresAt.Before(time.Now()) {
		return invitation, echo.NewHTTPError(http.StatusBadRequest, "Invitation has expired")
	}

	if invitation.AcceptedAt != nil {
		return invitation, echo.NewHTTPError(http.StatusBadRequest, "Invitation already accepted")
	}

	if _, err := s.memberRepository.FindByUserAndOrg(user.ID, invitation.OrganizationID); err == nil {
		return invitation, echo.NewHTTPError(http.StatusBadRequest, "Already a member of this organization")
	}

	err = s.invitationRepository.Transaction(func(tx shared.DB) error {
		member := models.OrganizationMember{
			UserID:         user.ID,
			OrganizationID: invitation.OrganizationID,
			Role:           invitation.Role,
		}
		if err := s.memberRepository.Create(tx, &member); err != nil {
			return err
		}
		invitation.AcceptedAt = shared.Ptr(time.Now())
		return s.invitationRepository.Save(tx, &invitation)
	})
	if err != nil {
		return invitation, err
	}

	return invitation, nil
}

func (s *orgInvitationService) Reject(user models.User, invitationID uuid.UUID) error {
	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	if !strings.EqualFold(invitation.Email, user.Email) {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	}

	return s.invitationRepository.Delete(nil, invitation.ID)
}

func (s *orgInvitationService) Cancel(orgID, invitationID uuid.UUID) error {
	invitation, err := s.invitationRepository.FindInOrg(orgID, invitationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	if invitation.AcceptedAt != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot cancel an already accepted invitation")
	}

	return s.invitationRepository.Delete(nil, invitation.ID)
}
