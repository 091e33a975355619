// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/mocks"
	"gorm.io/gorm"
)

func TestGenerateAndSend(t *testing.T) {
	t.Run("replaces the previous code and mails the new one", func(t *testing.T) {
		otpRepository := mocks.NewOTPRepository(t)
		otpRepository.On("Transaction", mock.Anything).Run(runTransaction).Return(nil)
		otpRepository.On("DeleteByEmail", mock.Anything, "ada@x.com").Return(nil)
		otpRepository.On("Create", mock.Anything, mock.MatchedBy(func(otp *models.OTP) bool {
			return otp.Email == "ada@x.com" && len(otp.Code) == 6 && otp.ExpiresAt.After(time.Now())
		})).Return(nil)

		mailer := mocks.NewMailer(t)
		mailer.On("Send", "ada@x.com", mock.Anything, mock.Anything).Return(nil)

		svc := NewOTPService(otpRepository, mocks.NewUserRepository(t), mailer)

		assert.NoError(t, svc.GenerateAndSend("Ada@X.com "))
	})

	t.Run("a failed send surfaces as a 500", func(t *testing.T) {
		otpRepository := mocks.NewOTPRepository(t)
		otpRepository.On("Transaction", mock.Anything).Run(runTransaction).Return(nil)
		otpRepository.On("DeleteByEmail", mock.Anything, mock.Anything).Return(nil)
		otpRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		mailer := mocks.NewMailer(t)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		svc := NewOTPService(otpRepository, mocks.NewUserRepository(t), mailer)

		err := svc.GenerateAndSend("ada@x.com")

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
		assert.Equal(t, "Failed to send OTP", httpErr.Message)
	})
}

func TestVerifyOTP(t *testing.T) {
	t.Run("an unknown code is rejected", func(t *testing.T) {
		otpRepository := mocks.NewOTPRepository(t)
		otpRepository.On("FindByEmailAndCode", "ada@x.com", "123456").Return(models.OTP{}, gorm.ErrRecordNotFound)

		svc := NewOTPService(otpRepository, mocks.NewUserRepository(t), mocks.NewMailer(t))

		err := svc.Verify("ada@x.com", "123456")

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, "Invalid or expired OTP", httpErr.Message)
	})

	t.Run("an expired code is consumed and rejected", func(t *testing.T) {
		otp := models.OTP{Email: "ada@x.com", Code: "123456", ExpiresAt: time.Now().Add(-time.Minute)}
		otp.ID = uuid.New()

		otpRepository := mocks.NewOTPRepository(t)
		otpRepository.On("FindByEmailAndCode", "ada@x.com", "123456").Return(otp, nil)
		otpRepository.On("Delete", mock.Anything, otp.ID).Return(nil)

		svc := NewOTPService(otpRepository, mocks.NewUserRepository(t), mocks.NewMailer(t))

		err := svc.Verify("ada@x.com", "123456")

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, "Invalid or expired OTP", httpErr.Message)
	})

	t.Run("a valid code marks the user verified and is consumed", func(t *testing.T) {
		otp := models.OTP{Email: "ada@x.com", Code: "123456", ExpiresAt: time.Now().Add(time.Minute)}
		otp.ID = uuid.New()

		user := models.User{Email: "ada@x.com"}
		user.ID = uuid.New()

		otpRepository := mocks.NewOTPRepository(t)
		otpRepository.On("FindByEmailAndCode", "ada@x.com", "123456").Return(otp, nil)
		otpRepository.On("Transaction", mock.Anything).Run(runTransaction).Return(nil)
		otpRepository.On("Delete", mock.Anything, otp.ID).Return(nil)

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("FindByEmail", "ada@x.com").Return(user, nil)
		userRepository.On("Save", mock.Anything, mock.MatchedBy(func(saved *models.User) bool {
			return saved.IsVerified
		})).Return(nil)

		svc := NewOTPService(otpRepository, userRepository, mocks.NewMailer(t))

		assert.NoError(t, svc.Verify("ada@x.com", "123456"))
	})
}
