package client

import (
	"context"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// MutesClient implements fedi.MutesClient
type MutesClient struct {
	client *Client
}

// NewMutesClient creates a new mutes client
func NewMutesClient(client *Client) *MutesClient {
	return &MutesClient{client: client}
}

// List implements fedi.MutesClient.List
func (c *MutesClient) List(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
	return executePaged[fedi.Account](ctx, c.client, constants.APIv1+"/mutes", params.ToValues())
}
