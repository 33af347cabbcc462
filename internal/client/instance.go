package client

import (
	"context"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// InstanceClient implements fedi.InstanceClient
type InstanceClient struct {
	client *Client
}

// NewInstanceClient creates a new instance client
func NewInstanceClient(client *Client) *InstanceClient {
	return &InstanceClient{client: client}
}

// Get implements fedi.InstanceClient.Get
func (c *InstanceClient) Get(ctx context.Context) fedi.APIResult[fedi.Instance] {
	return execute[fedi.Instance](ctx, c.client, http.MethodGet, constants.APIv1+"/instance", nil, nil)
}

// Peers implements fedi.InstanceClient.Peers
func (c *InstanceClient) Peers(ctx context.Context) fedi.APIResult[[]string] {
	return execute[[]string](ctx, c.client, http.MethodGet, constants.APIv1+"/instance/peers", nil, nil)
}

// Activity implements fedi.InstanceClient.Activity
func (c *InstanceClient) Activity(ctx context.Context) fedi.APIResult[[]fedi.Activity] {
	return execute[[]fedi.Activity](ctx, c.client, http.MethodGet, constants.APIv1+"/instance/activity", nil, nil)
}
