// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package repositories

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.User]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.User](db),
	}
}

func (g *userRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := g.db.Model(models.User{}).Where("email = ?", email).First(&user).Error
	return user, err
}

func (g *userRepository) FindByExternalID(externalID string) (models.User, error) {
	var user models.User
	err := g.db.Model(models.User{}).Where("external_id = ?", externalID).First(&user).Error
	return user, err
}
