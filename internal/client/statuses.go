package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/fedikit-io/fedi-client/internal/constants"
	internalhttp "github.com/fedikit-io/fedi-client/internal/http"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// StatusesClient implements fedi.StatusesClient
type StatusesClient struct {
	client *Client
}

// NewStatusesClient creates a new statuses client
func NewStatusesClient(client *Client) *StatusesClient {
	return &StatusesClient{client: client}
}

// Get implements fedi.StatusesClient.Get
func (c *StatusesClient) Get(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	path := fmt.Sprintf("%s/statuses/%s", constants.APIv1, statusID)

	return execute[fedi.Status](ctx, c.client, http.MethodGet, path, nil, nil)
}

// Create implements fedi.StatusesClient.Create
func (c *StatusesClient) Create(ctx context.Context, create *fedi.StatusCreate) fedi.APIResult[fedi.Status] {
	// An Idempotency-Key makes an accidental resubmission a no-op on the
	// server instead of a duplicate post.
	return executeRequest[fedi.Status](ctx, c.client, &internalhttp.Request{
		Method:  http.MethodPost,
		Path:    constants.APIv1 + "/statuses",
		Body:    create,
		Headers: map[string]string{"Idempotency-Key": uuid.New().String()},
	})
}

// Delete implements fedi.StatusesClient.Delete
func (c *StatusesClient) Delete(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	path := fmt.Sprintf("%s/statuses/%s", constants.APIv1, statusID)

	return execute[fedi.Status](ctx, c.client, http.MethodDelete, path, nil, nil)
}

// Context implements fedi.StatusesClient.Context
func (c *StatusesClient) Context(ctx context.Context, statusID string) fedi.APIResult[fedi.Context] {
	path := fmt.Sprintf("%s/statuses/%s/context", constants.APIv1, statusID)

	return execute[fedi.Context](ctx, c.client, http.MethodGet, path, nil, nil)
}

// Card implements fedi.StatusesClient.Card
func (c *StatusesClient) Card(ctx context.Context, statusID string) fedi.APIResult[fedi.Card] {
	path := fmt.Sprintf("%s/statuses/%s/card", constants.APIv1, statusID)

	return execute[fedi.Card](ctx, c.client, http.MethodGet, path, nil, nil)
}

// RebloggedBy implements fedi.StatusesClient.RebloggedBy
func (c *StatusesClient) RebloggedBy(ctx context.Context, statusID string, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
	path := fmt.Sprintf("%s/statuses/%s/reblogged_by", constants.APIv1, statusID)

	return executePaged[fedi.Account](ctx, c.client, path, params.ToValues())
}

// FavouritedBy implements fedi.StatusesClient.FavouritedBy
func (c *StatusesClient) FavouritedBy(ctx context.Context, statusID string, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
	path := fmt.Sprintf("%s/statuses/%s/favourited_by", constants.APIv1, statusID)

	return executePaged[fedi.Account](ctx, c.client, path, params.ToValues())
}

// Favourite implements fedi.StatusesClient.Favourite
func (c *StatusesClient) Favourite(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	return c.statusAction(ctx, statusID, "favourite")
}

// Unfavourite implements fedi.StatusesClient.Unfavourite
func (c *StatusesClient) Unfavourite(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	return c.statusAction(ctx, statusID, "unfavourite")
}

// Reblog implements fedi.StatusesClient.Reblog
func (c *StatusesClient) Reblog(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	return c.statusAction(ctx, statusID, "reblog")
}

// Unreblog implements fedi.StatusesClient.Unreblog
func (c *StatusesClient) Unreblog(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	return c.statusAction(ctx, statusID, "unreblog")
}

// Bookmark implements fedi.StatusesClient.Bookmark
func (c *StatusesClient) Bookmark(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	return c.statusAction(ctx, statusID, "bookmark")
}

// Unbookmark implements fedi.StatusesClient.Unbookmark
func (c *StatusesClient) Unbookmark(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	return c.statusAction(ctx, statusID, "unbookmark")
}

// Pin implements fedi.StatusesClient.Pin
func (c *StatusesClient) Pin(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	return c.statusAction(ctx, statusID, "pin")
}

// Unpin implements fedi.StatusesClient.Unpin
func (c *StatusesClient) Unpin(ctx context.Context, statusID string) fedi.APIResult[fedi.Status] {
	return c.statusAction(ctx, statusID, "unpin")
}

// statusAction posts one of the status interaction endpoints and returns the
// updated status.
func (c *StatusesClient) statusAction(ctx context.Context, statusID, action string) fedi.APIResult[fedi.Status] {
	path := fmt.Sprintf("%s/statuses/%s/%s", constants.APIv1, statusID, action)

	return execute[fedi.Status](ctx, c.client, http.MethodPost, path, nil, nil)
}
