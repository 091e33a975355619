// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package repositories

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"gorm.io/gorm"
)

type projectMemberRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ProjectMember]
}

func NewProjectMemberRepository(db *gorm.DB) *projectMemberRepository {
	return &projectMemberRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ProjectMember](db),
	}
}

func (g *projectMemberRepository) Read(id uuid.UUID) (models.ProjectMember, error) {
	var member models.ProjectMember
	err := g.db.Model(models.ProjectMember{}).Preload("User").Where("id = ?", id).First(&member).Error
	return member, err
}

func (g *projectMemberRepository) FindByUserAndProject(userID, projectID uuid.UUID) (models.ProjectMember, error) {
	var member models.ProjectMember
	err := g.db.Model(models.ProjectMember{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&member).Error
	return member, err
}

func (g *projectMemberRepository) FindInProject(projectID, memberID uuid.UUID) (models.ProjectMember, error) {
	var member models.ProjectMember
	err := g.db.Model(models.ProjectMember{}).Preload("User").
		Where("id = ? AND project_id = ?", memberID, projectID).
		First(&member).Error
	return member, err
}

func (g *projectMemberRepository) ListByProject(projectID uuid.UUID) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	err := g.db.Model(models.ProjectMember{}).Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at asc").
		Find(&members).Error
	return members, err
}

func (g *projectMemberRepository) CountByProject(projectID uuid.UUID) (int64, error) {
	var count int64
	err := g.db.Model(&models.ProjectMember{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}
