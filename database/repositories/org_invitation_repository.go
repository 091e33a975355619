// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"gorm.io/gorm"
)

type orgInvitationRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.OrganizationInvitation]
}

func NewOrgInvitationRepository(db *gorm.DB) *orgInvitationRepository {
	return &orgInvitationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.OrganizationInvitation](db),
	}
}

func (g *orgInvitationRepository) Read(id uuid.UUID) (models.OrganizationInvitation, error) {
	var invitation models.OrganizationInvitation
	err := g.db.Model(models.OrganizationInvitation{}).Preload("Organization").
		Where("id = ?", id).First(&invitation).Error
	return invitation, err
}

func (g *orgInvitationRepository) FindByEmailAndOrg(tx *gorm.DB, email string, orgID uuid.UUID) (models.OrganizationInvitation, error) {
	var invitation models.OrganizationInvitation
	err := g.GetDB(tx).Model(models.OrganizationInvitation{}).
		Where("email = ? AND organization_id = ?", email, orgID).
		First(&invitation).Error
	return invitation, err
}

func (g *orgInvitationRepository) FindInOrg(orgID, invitationID uuid.UUID) (models.OrganizationInvitation, error) {
	var invitation models.OrganizationInvitation
	err := g.db.Model(models.OrganizationInvitation{}).Preload("Organization").
		Where("id = ? AND organization_id = ?", invitationID, orgID).
		First(&invitation).Error
	return invitation, err
}

// ListPendingByOrg returns live invitations only. Expiry is evaluated lazily
// at read time - expired rows stay in the store until overwritten by a
// re-invite.
func (g *orgInvitationRepository) ListPendingByOrg(orgID uuid.UUID) ([]models.OrganizationInvitation, error) {
	var invitations []models.OrganizationInvitation
	err := g.db.Model(models.OrganizationInvitation{}).
		Where("organization_id = ? AND accepted_at IS NULL AND expires_at >= ?", orgID, time.Now()).
		Order("created_at desc").
		Find(&invitations).Error
	return invitations, err
}

func (g *orgInvitationRepository) ListPendingByEmail(email string, orgID *uuid.UUID) ([]models.OrganizationInvitation, error) {
	query := g.db.Model(models.OrganizationInvitation{}).Preload("Organization").
		Where("email = ? AND accepted_at IS NULL AND expires_at >= ?", email, time.Now())
	if orgID != nil {
		query = query.Where("organization_id = ?", *orgID)
	}

	var invitations []models.OrganizationInvitation
	err := query.Order("created_at desc").Find(&invitations).Error
	return invitations, err
}
