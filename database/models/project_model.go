// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package models

import "github.com/google/uuid"

type Project struct {
	Model
	OrganizationID uuid.UUID `json:"organizationId" gorm:"uniqueIndex:idx_project_org_key;type:uuid;not null"`
	Name           string    `json:"name" gorm:"type:text;not null"`
	// Key is normalized to uppercase and unique within the organization,
	// not globally.
	Key         string    `json:"key" gorm:"uniqueIndex:idx_project_org_key;type:text;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Color       string    `json:"color" gorm:"type:text;default:'#3b82f6'"`
	CreatedByID uuid.UUID `json:"createdById" gorm:"type:uuid;not null"`

	Organization Organization    `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	CreatedBy    User            `json:"createdBy" gorm:"foreignKey:CreatedByID;references:ID"`
	Members      []ProjectMember `json:"members,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
}

func (p Project) TableName() string {
	return "projects"
}
