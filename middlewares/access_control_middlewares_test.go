// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/worknest-dev/worknest/accesscontrol"
	"github.com/worknest-dev/worknest/database/models"
	"github.com/worknest-dev/worknest/shared"
)

func newGateContext(t *testing.T) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func passthrough(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

func TestRequireSession(t *testing.T) {
	t.Run("an unauthenticated session gets a 401", func(t *testing.T) {
		ctx := newGateContext(t)
		shared.SetSession(ctx, accesscontrol.NoSession)

		err := RequireSession(passthrough)(ctx)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.Equal(t, "Unauthorized", httpErr.Message)
	})

	t.Run("an authenticated session passes through", func(t *testing.T) {
		ctx := newGateContext(t)
		shared.SetSession(ctx, accesscontrol.NewSession("kratos-1", "ada@x.com", "Ada", ""))

		err := RequireSession(passthrough)(ctx)

		assert.NoError(t, err)
	})
}

func TestRequireOrgMembership(t *testing.T) {
	t.Run("non-members get a plain 403", func(t *testing.T) {
		ctx := newGateContext(t)
		shared.SetOrgMembership(ctx, nil)

		err := RequireOrgMembership(passthrough)(ctx)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
		assert.Equal(t, "Forbidden", httpErr.Message)
	})

	t.Run("members pass through", func(t *testing.T) {
		ctx := newGateContext(t)
		shared.SetOrgMembership(ctx, &models.OrganizationMember{Role: models.RoleOrgMember})

		assert.NoError(t, RequireOrgMembership(passthrough)(ctx))
	})
}

func TestRequireOrgAdmin(t *testing.T) {
	gate := RequireOrgAdmin("Only organization admins can invite members")

	t.Run("members get the endpoint specific message", func(t *testing.T) {
		ctx := newGateContext(t)
		shared.SetOrgMembership(ctx, &models.OrganizationMember{Role: models.RoleOrgMember})

		err := gate(passthrough)(ctx)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
		assert.Equal(t, "Only organization admins can invite members", httpErr.Message)
	})

	t.Run("admins pass through", func(t *testing.T) {
		ctx := newGateContext(t)
		shared.SetOrgMembership(ctx, &models.OrganizationMember{Role: models.RoleOrgAdmin})

		assert.NoError(t, gate(passthrough)(ctx))
	})
}

func TestRequireProjectManage(t *testing.T) {
	gate := RequireProjectManage("Forbidden: insufficient role")

	t.Run("project members cannot manage", func(t *testing.T) {
		ctx := newGateContext(t)
		shared.SetOrgMembership(ctx, &models.OrganizationMember{Role: models.RoleOrgMember})
		shared.SetProjectMembership(ctx, &models.ProjectMember{Role: models.RoleProjectMember})

		err := gate(passthrough)(ctx)

		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, "Forbidden: insufficient role", httpErr.Message)
	})

	t.Run("project leads pass through", func(t *testing.T) {
		ctx := newGateContext(t)
		shared.SetOrgMembership(ctx, &models.OrganizationMember{Role: models.RoleOrgMember})
		shared.SetProjectMembership(ctx, &models.ProjectMember{Role: models.RoleProjectLead})

		assert.NoError(t, gate(passthrough)(ctx))
	})

	t.Run("org admins manage any project without a project membership", func(t *testing.T) {
		ctx := newGateContext(t)
		shared.SetOrgMembership(ctx, &models.OrganizationMember{Role: models.RoleOrgAdmin})
		shared.SetProjectMembership(ctx, nil)

		assert.NoError(t, gate(passthrough)(ctx))
	})
}

func TestHTTPErrorHandlerEnvelope(t *testing.T) {
	e := Server()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	e.HTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Invitation not found"), ctx)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success": false, "error": "Invitation not found", "status": 404}`, rec.Body.String())
}
