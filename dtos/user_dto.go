// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package dtos

import "github.com/google/uuid"

type UserDTO struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   *string   `json:"name"`
	Avatar *string   `json:"avatar"`
}

type SessionUserDTO struct {
	UserDTO
	IsVerified bool `json:"isVerified"`
}
