// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package dtos

type OTPVerifyRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}
