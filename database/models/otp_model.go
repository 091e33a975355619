// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package models

import "time"

// OTP is a short-lived email verification code. At most one live code exists
// per email - generating a new code deletes any previous one.
type OTP struct {
	Model
	Email     string    `json:"email" gorm:"type:text;not null;index"`
	Code      string    `json:"-" gorm:"type:text;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
}

func (o OTP) TableName() string {
	return "otps"
}
