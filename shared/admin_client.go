// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package shared

import (
	"context"
	"fmt"

	"github.com/ory/client-go"
)

type adminClientImplementation struct {
	apiClient *client.APIClient
}

func NewAdminClient(apiClient *client.APIClient) AdminClient {
	return adminClientImplementation{apiClient: apiClient}
}

// GetOryAPIClient builds the identity provider client for the given base URL.
func GetOryAPIClient(url string) *client.APIClient {
	cfg := client.NewConfiguration()
	cfg.Servers = client.ServerConfigurations{
		{URL: url},
	}
	return client.NewAPIClient(cfg)
}

func (a adminClientImplementation) GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error) {
	session, _, err := a.apiClient.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		return client.Identity{}, fmt.Errorf("could not get identity from cookie: %w", err)
	}
	if session.Identity == nil {
		return client.Identity{}, fmt.Errorf("identity not found in session")
	}
	return *session.Identity, nil
}

func (a adminClientImplementation) GetIdentity(ctx context.Context, userID string) (client.Identity, error) {
	identity, _, err := a.apiClient.IdentityAPI.GetIdentity(ctx, userID).Execute()
	if err != nil {
		return client.Identity{}, err
	}
	return *identity, nil
}
