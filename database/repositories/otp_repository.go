// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package repositories

import (
	"github.com/google/uuid"
	"github.com/worknest-dev/worknest/database/models"
	"gorm.io/gorm"
)

type otpRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.OTP]
}

func NewOTPRepository(db *gorm.DB) *otpRepository {
	return &otpRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.OTP](db),
	}
}

func (g *otpRepository) FindByEmailAndCode(email, code string) (models.OTP, error) {
	var otp models.OTP
	err := g.db.Model(models.OTP{}).
		Where("email = ? AND code = ?", email, code).
		First(&otp).Error
	return otp, err
}

func (g *otpRepository) DeleteByEmail(tx *gorm.DB, email string) error {
	return g.GetDB(tx).Where("email = ?", email).Delete(&models.OTP{}).Error
}
