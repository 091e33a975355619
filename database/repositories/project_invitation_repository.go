// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"gorm.io/gorm"
)

type projectInvitationRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ProjectInvitation]
}

func NewProjectInvitationRepository(db *gorm.DB) *projectInvitationRepository {
	return &projectInvitationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ProjectInvitation](db),
	}
}

func (g *projectInvitationRepository) Read(id uuid.UUID) (models.ProjectInvitation, error) {
	var invitation models.ProjectInvitation
	err := g.db.Model(models.ProjectInvitation{}).Preload("Project").Preload("User").
		Where("id = ?", id).First(&invitation).Error
	return invitation, err
}

func (g *projectInvitationRepository) FindByUserAndProject(tx *gorm.DB, userID, projectID uuid.UUID) (models.ProjectInvitation, error) {
	var invitation models.ProjectInvitation
	err := g.GetDB(tx).Model(models.ProjectInvitation{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&invitation).Error
	return invitation, err
}

func (g *projectInvitationRepository) FindInProject(projectID, invitationID uuid.UUID) (models.ProjectInvitation, error) {
	var invitation models.ProjectInvitation
	err := g.db.Model(models.ProjectInvitation{}).
		Where("id = ? AND project_id = ?", invitationID, projectID).
		First(&invitation).Error
	return invitation, err
}

func (g *projectInvitationRepository) ListByProject(projectID uuid.UUID, status string) ([]models.ProjectInvitation, error) {
	query := g.db.Model(models.ProjectInvitation{}).Preload("User").
		Where("project_id = ?", projectID)

	now := time.Now()
	switch status {
	case "pending":
		query = query.Where("accepted_at IS NULL AND expires_at >= ?", now)
	case "accepted":
		query = query.Where("accepted_at IS NOT NULL")
	case "expired":
		query = query.Where("accepted_at IS NULL AND expires_at < ?", now)
	}

	var invitations []models.ProjectInvitation
	err := query.Order("created_at desc").Find(&invitations).Error
	return invitations, err
}

func (g *projectInvitationRepository) ListPendingByUser(userID uuid.UUID, orgID *uuid.UUID) ([]models.ProjectInvitation, error) {
	query := g.db.Model(models.ProjectInvitation{}).Preload("Project").
		Where("user_id = ? AND accepted_at IS NULL AND expires_at >= ?", userID, time.Now())
	if orgID != nil {
		query = query.Joins("JOIN projects ON projects.id = project_invitations.project_id").
			Where("projects.organization_id = ?", *orgID)
	}

	var invitations []models.ProjectInvitation
	err := query.Order("project_invitations.created_at desc").Find(&invitations).Error
	return invitations, err
}
