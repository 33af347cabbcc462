package client

import (
	"context"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// BlocksClient implements fedi.BlocksClient
type BlocksClient struct {
	client *Client
}

// NewBlocksClient creates a new blocks client
func NewBlocksClient(client *Client) *BlocksClient {
	return &BlocksClient{client: client}
}

// List implements fedi.BlocksClient.List
func (c *BlocksClient) List(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
	return executePaged[fedi.Account](ctx, c.client, constants.APIv1+"/blocks", params.ToValues())
}
