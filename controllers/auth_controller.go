// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/dtos"
	"github.com/worknest-dev/worknest/shared"
	"github.com/worknest-dev/worknest/transformer"
)

type AuthController struct {
	userService shared.UserService
	otpService  shared.OTPService
}

func NewAuthController(userService shared.UserService, otpService shared.OTPService) *AuthController {
	return &AuthController{
		userService: userService,
		otpService:  otpService,
	}
}

// SyncSession is called by the frontend right after sign-in. It creates or
// refreshes the local user row and provisions the default workspace for
// first-time users.
func (controller *AuthController) SyncSession(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	user, err := controller.userService.SyncSession(session)
	if err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, transformer.SessionUserToDTO(user))
}

// SendOTP mails a fresh verification code to the signed-in user's address,
// replacing any earlier one.
func (controller *AuthController) SendOTP(ctx shared.Context) error {
	user := shared.GetUser(ctx)

	if err := controller.otpService.GenerateAndSend(user.Email); err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, nil)
}

func (controller *AuthController) VerifyOTP(ctx shared.Context) error {
	var req dtos.OTPVerifyRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or expired OTP").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or expired OTP").WithInternal(err)
	}

	user := shared.GetUser(ctx)
	if err := controller.otpService.Verify(user.Email, req.Code); err != nil {
		return err
	}

	return shared.Ok(ctx, http.StatusOK, nil)
}
