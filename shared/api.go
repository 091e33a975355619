// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package shared

// APIResponse is the envelope every endpoint responds with. Failures are
// rendered by the central HTTP error handler, successes by Ok.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// Ok writes a success envelope with the given status code.
func Ok(ctx Context, status int, data any) error {
	return ctx.JSON(status, APIResponse{Success: true, Data: data})
}
