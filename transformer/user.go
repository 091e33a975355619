// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package transformer

import (
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/dtos"
)

func UserToDTO(user models.User) dtos.UserDTO {
	return dtos.UserDTO{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
}

func SessionUserToDTO(user models.User) dtos.SessionUserDTO {
	return dtos.SessionUserDTO{
		UserDTO:    UserToDTO(user),
		IsVerified: user.IsVerified,
	}
}
