package client

import (
	"context"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// FavouritesClient implements fedi.FavouritesClient
type FavouritesClient struct {
	client *Client
}

// NewFavouritesClient creates a new favourites client
func NewFavouritesClient(client *Client) *FavouritesClient {
	return &FavouritesClient{client: client}
}

// List implements fedi.FavouritesClient.List
func (c *FavouritesClient) List(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
	return executePaged[fedi.Status](ctx, c.client, constants.APIv1+"/favourites", params.ToValues())
}
