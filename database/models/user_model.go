// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package models

type User struct {
	Model
	Email string `json:"email" gorm:"type:text;unique;not null;index"`
	// Name and Avatar come from the external identity provider and may be absent.
	Name   *string `json:"name" gorm:"type:text"`
	Avatar *string `json:"avatar" gorm:"type:text"`
	// ExternalID is the subject identifier issued by the identity provider.
	ExternalID *string `json:"-" gorm:"type:text;uniqueIndex"`
	IsVerified bool    `json:"isVerified" gorm:"default:false"`
}

func (u User) TableName() string {
	return "users"
}
