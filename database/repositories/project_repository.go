// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package repositories

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (g *projectRepository) FindInOrg(orgID, projectID uuid.UUID) (models.Project, error) {
	var project models.Project
	err := g.db.Model(models.Project{}).Preload("CreatedBy").
		Where("id = ? AND organization_id = ?", projectID, orgID).
		First(&project).Error
	return project, err
}

func (g *projectRepository) FindByKey(orgID uuid.UUID, key string) (models.Project, error) {
	var project models.Project
	err := g.db.Model(models.Project{}).
		Where("organization_id = ? AND key = ?", orgID, key).
		First(&project).Error
	return project, err
}

func (g *projectRepository) ListByOrg(orgID uuid.UUID, search string, page, limit int, includeMembers bool) ([]models.Project, int64, error) {
	query := g.db.Model(&models.Project{}).Where("organization_id = ?", orgID)

	if search != "" {
		query = query.Where("name ILIKE ? OR key ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("CreatedBy")
	if includeMembers {
		query = query.Preload("Members.User")
	}

	var projects []models.Project
	err := query.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&projects).Error
	return projects, total, err
}
