package client

import (
	"context"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// BookmarksClient implements fedi.BookmarksClient
type BookmarksClient struct {
	client *Client
}

// NewBookmarksClient creates a new bookmarks client
func NewBookmarksClient(client *Client) *BookmarksClient {
	return &BookmarksClient{client: client}
}

// List implements fedi.BookmarksClient.List
func (c *BookmarksClient) List(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
	return executePaged[fedi.Status](ctx, c.client, constants.APIv1+"/bookmarks", params.ToValues())
}
