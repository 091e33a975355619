// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package repositories

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"gorm.io/gorm"
)

type orgMemberRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.OrganizationMember]
}

func NewOrgMemberRepository(db *gorm.DB) *orgMemberRepository {
	return &orgMemberRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.OrganizationMember](db),
	}
}

func (g *orgMemberRepository) Read(id uuid.UUID) (models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := g.db.Model(models.OrganizationMember{}).Preload("User").Where("id = ?", id).First(&member).Error
	return member, err
}

func (g *orgMemberRepository) FindByUserAndOrg(userID, orgID uuid.UUID) (models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := g.db.Model(models.OrganizationMember{}).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		First(&member).Error
	return member, err
}

func (g *orgMemberRepository) FindInOrg(orgID, memberID uuid.UUID) (models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := g.db.Model(models.OrganizationMember{}).Preload("User").
		Where("id = ? AND organization_id = ?", memberID, orgID).
		First(&member).Error
	return member, err
}

func (g *orgMemberRepository) ListByOrg(orgID uuid.UUID, search string, page, limit int) ([]models.OrganizationMember, int64, error) {
	query := g.db.Model(&models.OrganizationMember{}).
		Joins("JOIN users ON users.id = organization_members.user_id").
		Where("organization_members.organization_id = ?", orgID)

	if search != "" {
		query = query.Where("users.name ILIKE ? OR users.email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []models.OrganizationMember
	err := query.Preload("User").
		Order("organization_members.role asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&members).Error
	return members, total, err
}

func (g *orgMemberRepository) ListByUser(userID uuid.UUID) ([]models.OrganizationMember, error) {
	var members []models.OrganizationMember
	err := g.db.Model(models.OrganizationMember{}).Preload("Organization").
		Where("user_id = ?", userID).
		Find(&members).Error
	return members, err
}

func (g *orgMemberRepository) CountByOrg(orgID uuid.UUID) (int64, error) {
	var count int64
	err := g.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error
	return count, err
}

func (g *orgMemberRepository) CountByOrgIDs(orgIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(orgIDs))
	if len(orgIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		OrganizationID uuid.UUID
		Count          int64
	}
	err := g.db.Model(&models.OrganizationMember{}).
		Select("organization_id, count(*) as count").
		Where("organization_id IN ?", orgIDs).
		Group("organization_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.OrganizationID] = row.Count
	}
	return counts, nil
}

func (g *orgMemberRepository) CountAdmins(tx *gorm.DB, orgID uuid.UUID) (int64, error) {
	var count int64
	err := g.GetDB(tx).Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND role = ?", orgID, models.RoleOrgAdmin).
		Count(&count).Error
	return count, err
}
