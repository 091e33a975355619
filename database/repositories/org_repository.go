// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package repositories

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"gorm.io/gorm"
)

type orgRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Organization]
}

func NewOrgRepository(db *gorm.DB) *orgRepository {
	return &orgRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Organization](db),
	}
}
