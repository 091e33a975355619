// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/mocks"
	"github.com/worknest-dev/worknest/services"
	"github.com/worknest-dev/worknest/shared"
)

func newContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestOrgControllerCreate(t *testing.T) {
	t.Run("rejects a missing name", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPost, `{}`)
		shared.SetUser(ctx, models.User{})

		controller := NewOrgController(services.NewOrgService(mocks.NewOrganizationRepository(t), mocks.NewOrganizationMemberRepository(t)), mocks.NewOrganizationMemberRepository(t), mocks.NewOrganizationInvitationRepository(t))

		err := controller.Create(ctx)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Organization name is required", httpErr.Message)
	})

	t.Run("wraps the created organization in the success envelope", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodPost, `{"name": "Acme"}`)
		user := models.User{Email: "ada@x.com"}
		user.ID = uuid.New()
		shared.SetUser(ctx, user)

		orgRepository := mocks.NewOrganizationRepository(t)
		memberRepository := mocks.NewOrganizationMemberRepository(t)
		orgRepository.On("Transaction", mock.Anything).Run(func(args mock.Arguments) {
			_ = args.Get(0).(func(tx shared.DB) error)(nil)
		}).Return(nil)
		orgRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		memberRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		controller := NewOrgController(services.NewOrgService(orgRepository, memberRepository), memberRepository, mocks.NewOrganizationInvitationRepository(t))

		err := controller.Create(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var envelope shared.APIResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
	})
}

func TestOrgControllerRead(t *testing.T) {
	t.Run("a non-member gets the same 404 as a nonexistent org", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodGet, "")
		shared.SetOrg(ctx, models.Organization{Name: "Acme"})
		shared.SetOrgMembership(ctx, nil)

		controller := NewOrgController(nil, mocks.NewOrganizationMemberRepository(t), mocks.NewOrganizationInvitationRepository(t))

		err := controller.Read(ctx)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
		assert.Equal(t, "Organization not found or access denied", httpErr.Message)
	})

	t.Run("a member gets their role and the member count", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodGet, "")

		org := models.Organization{Name: "Acme", IsActive: true}
		org.ID = uuid.New()
		shared.SetOrg(ctx, org)
		shared.SetOrgMembership(ctx, &models.OrganizationMember{OrganizationID: org.ID, Role: models.RoleOrgAdmin})

		memberRepository := mocks.NewOrganizationMemberRepository(t)
		memberRepository.On("CountByOrg", org.ID).Return(int64(2), nil)

		controller := NewOrgController(nil, memberRepository, mocks.NewOrganizationInvitationRepository(t))

		err := controller.Read(ctx)

		assert.NoError(t, err)

		var envelope shared.APIResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)

		data := envelope.Data.(map[string]any)
		assert.Equal(t, "ORG_ADMIN", data["role"])
		assert.Equal(t, float64(2), data["memberCount"])
	})
}

func TestOrgInvitationControllerInvite(t *testing.T) {
	t.Run("non-admins cannot invite", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPost, `{"emails": ["b@x.com"]}`)
		shared.SetOrgMembership(ctx, &models.OrganizationMember{Role: models.RoleOrgMember})

		controller := NewOrgInvitationController(nil, mocks.NewOrganizationInvitationRepository(t))

		err := controller.Invite(ctx)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
		assert.Equal(t, "Only organization admins can invite members", httpErr.Message)
	})

	t.Run("an empty email list is rejected", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodPost, `{"emails": []}`)
		shared.SetOrgMembership(ctx, &models.OrganizationMember{Role: models.RoleOrgAdmin})

		controller := NewOrgInvitationController(nil, mocks.NewOrganizationInvitationRepository(t))

		err := controller.Invite(ctx)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
