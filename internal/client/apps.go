package client

import (
	"context"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// AppsClient implements fedi.AppsClient
type AppsClient struct {
	client *Client
}

// NewAppsClient creates a new apps client
func NewAppsClient(client *Client) *AppsClient {
	return &AppsClient{client: client}
}

// Create implements fedi.AppsClient.Create
func (c *AppsClient) Create(ctx context.Context, registration *fedi.AppRegistration) fedi.APIResult[fedi.Application] {
	return execute[fedi.Application](ctx, c.client, http.MethodPost, constants.APIv1+"/apps", nil, registration)
}

// VerifyCredentials implements fedi.AppsClient.VerifyCredentials
func (c *AppsClient) VerifyCredentials(ctx context.Context) fedi.APIResult[fedi.Application] {
	return execute[fedi.Application](ctx, c.client, http.MethodGet, constants.APIv1+"/apps/verify_credentials", nil, nil)
}
