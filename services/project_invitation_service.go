// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/mail"
	"github.com/worknest-dev/worknest/shared"
	"gorm.io/gorm"
)

type projectInvitationService struct {
	invitationRepository    shared.ProjectInvitationRepository
	projectMemberRepository shared.ProjectMemberRepository
	orgMemberRepository     shared.OrganizationMemberRepository
	userRepository          shared.UserRepository
	mailer                  shared.Mailer
}

func NewProjectInvitationService(invitationRepository shared.ProjectInvitationRepository, projectMemberRepository shared.ProjectMemberRepository, orgMemberRepository shared.OrganizationMemberRepository, userRepository shared.UserRepository, mailer shared.Mailer) *projectInvitationService {
	return &projectInvitationService{
		invitationRepository:    invitationRepository,
		projectMemberRepository: projectMemberRepository,
		orgMemberRepository:     orgMemberRepository,
		userRepository:          userRepository,
		mailer:                  mailer,
	}
}

// Invite targets an existing user who must already belong to the project's
// organization. Re-inviting the same user refreshes the single row keyed by
// (project, user) instead of creating a duplicate.
func (s *projectInvitationService) Invite(project models.Project, inviteeID uuid.UUID, role models.ProjectRole) (models.ProjectInvitation, error) {
	var invitation models.ProjectInvitation

	if _, err := s.orgMemberRepository.FindByUserAndOrg(inviteeID, project.OrganizationID); err != nil {
		return invitation, echo.NewHTTPError(http.StatusBadRequest, "User is not a member of this organization").WithInternal(err)
	}

	if _, err := s.projectMemberRepository.FindByUserAndProject(inviteeID, project.ID); err == nil {
		return invitation, echo.NewHTTPError(http.StatusBadRequest, "User is already a project member")
	}

	err := s.invitationRepository.Transaction(func(tx shared.DB) error {
		existing, err := s.invitationRepository.FindByUserAndProject(tx, inviteeID, project.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			invitation = models.ProjectInvitation{
				ProjectID: project.ID,
				UserID:    inviteeID,
				Role:      role,
				ExpiresAt: time.Now().Add(invitationTTL),
			}
			return s.invitationRepository.Create(tx, &invitation)
		}

		existing.Role = role
		existing.ExpiresAt = time.Now().Add(invitationTTL)
		existing.AcceptedAt = nil
		invitation = existing
		return s.invitationRepository.Save(tx, &existing)
	})
	if err != nil {
		return invitation, err
	}

	go s.sendInvitationMail(inviteeID, project)

	// re-read so the response carries the preloaded user and project
	return s.invitationRepository.Read(invitation.ID)
}

func (s *projectInvitationService) sendInvitationMail(inviteeID uuid.UUID, project models.Project) {
	invitee, err := s.userRepository.Read(inviteeID)
	if err != nil {
		return
	}
	link := fmt.Sprintf("%s/invitations", os.Getenv("FRONTEND_URL"))
	subject, body := mail.ProjectInvitationEmail(project.Name, link)
	if err := s.mailer.Send(invitee.Email, subject, body); err != nil {
		slog.Error("could not send invitation email", "userID", inviteeID, "projectID", project.ID, "err", err)
	}
}

func (s *projectInvitationService) Accept(user models.User, invitationID uuid.UUID) (models.ProjectInvitation, error) {
	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		return invitation, echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	if invitation.UserID != user.ID {
		return invitation, echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	}

	if invitation.ExpiresAt.Before(time.Now()) {
		return invitation, echo.NewHTTPError(http.StatusBadRequest, "Invitation has expired")
	}

	if invitation.AcceptedAt != nil {
		return invitation, echo.NewHTTPError(http.StatusBadRequest, "Invitation already accepted")
	}

	if _, err := s.projectMemberRepository.FindByUserAndProject(user.ID, invitation.ProjectID); err == nil {
		return invitation, echo.NewHTTPError(http.StatusBadRequest, "Already a member of this project")
	}

	err = s.invitationRepository.Transaction(func(tx shared.DB) error {
		member := models.ProjectMember{
			ProjectID: invitation.ProjectID,
			UserID:    user.ID,
			Role:      invitation.Role,
		}
		if err := s.projectMemberRepository.Create(tx, &member); err != nil {
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

func (s *projectInvitationService) Reject(user models.User, invitationID uuid.UUID) error {
	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	if invitation.UserID != user.ID {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	}

	return s.invitationRepository.Delete(nil, invitation.ID)
}

func (s *projectInvitationService) Cancel(projectID, invitationID uuid.UUID) error {
	invitation, err := s.invitationRepository.FindInProject(projectID, invitationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Invitation not found").WithInternal(err)
	}

	return s.invitationRepository.Delete(nil, invitation.ID)
}
