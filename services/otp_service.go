// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/mail"
	"github.com/worknest-dev/worknest/shared"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

type otpService struct {
	otpRepository  shared.OTPRepository
	userRepository shared.UserRepository
	mailer         shared.Mailer
}

func NewOTPService(otpRepository shared.OTPRepository, userRepository shared.UserRepository, mailer shared.Mailer) *otpService {
	return &otpService{
		otpRepository:  otpRepository,
		userRepository: userRepository,
		mailer:         mailer,
	}
}

// GenerateAndSend replaces any previous code for the address, so only the
// latest one verifies. Delivery is part of the contract: a failed send is a
// failed request.
func (s *otpService) GenerateAndSend(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	err = s.otpRepository.Transaction(func(tx shared.DB) error {
		if err := s.otpRepository.DeleteByEmail(tx, email); err != nil {
			return err
		}
		otp := models.OTP{
			Email:     email,
			Code:      code,
			ExpiresAt: time.Now().Add(otpTTL),
		}
		return s.otpRepository.Create(tx, &otp)
	})
	if err != nil {
		return err
	}

	subject, body := mail.OTPEmail(code)
	if err := s.mailer.Send(email, subject, body); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send OTP").WithInternal(err)
	}
	return nil
}

// Verify consumes the code: valid or expired, the row is gone afterwards.
func (s *otpService) Verify(email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	otp, err := s.otpRepository.FindByEmailAndCode(email, code)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or expired OTP").WithInternal(err)
	}

	if otp.ExpiresAt.Before(time.Now()) {
		_ = s.otpRepository.Delete(nil, otp.ID)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or expired OTP")
	}

	return s.otpRepository.Transaction(func(tx shared.DB) error {
		if err := s.otpRepository.Delete(tx, otp.ID); err != nil {
			return err
		}

		user, err := s.userRepository.FindByEmail(email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if user.IsVerified {
			return nil
		}
		user.IsVerified = true
		return s.userRepository.Save(tx, &user)
	})
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
