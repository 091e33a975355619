// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package models

type Organization struct {
	Model
	Name     string `json:"name" gorm:"type:text;not null"`
	IsActive bool   `json:"isActive" gorm:"default:true"`

	Members  []OrganizationMember `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`
	Projects []Project            `json:"projects,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;"`
}

func (o Organization) TableName() string {
	return "organizations"
}
