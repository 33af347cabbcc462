package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// FiltersClient implements fedi.FiltersClient
type FiltersClient struct {
	client *Client
}

// NewFiltersClient creates a new filters client
func NewFiltersClient(client *Client) *FiltersClient {
	return &FiltersClient{client: client}
}

// List implements fedi.FiltersClient.List
func (c *FiltersClient) List(ctx context.Context) fedi.APIResult[[]fedi.Filter] {
	return execute[[]fedi.Filter](ctx, c.client, http.MethodGet, constants.APIv1+"/filters", nil, nil)
}

// Get implements fedi.FiltersClient.Get
func (c *FiltersClient) Get(ctx context.Context, filterID string) fedi.APIResult[fedi.Filter] {
	path := fmt.Sprintf("%s/filters/%s", constants.APIv1, filterID)

	return execute[fedi.Filter](ctx, c.client, http.MethodGet, path, nil, nil)
}

// Create implements fedi.FiltersClient.Create
func (c *FiltersClient) Create(ctx context.Context, create *fedi.FilterCreate) fedi.APIResult[fedi.Filter] {
	return execute[fedi.Filter](ctx, c.client, http.MethodPost, constants.APIv1+"/filters", nil, create)
}

// Update implements fedi.FiltersClient.Update
func (c *FiltersClient) Update(ctx context.Context, filterID string, update *fedi.FilterCreate) fedi.APIResult[fedi.Filter] {
	path := fmt.Sprintf("%s/filters/%s", constants.APIv1, filterID)

	return execute[fedi.Filter](ctx, c.client, http.MethodPut, path, nil, update)
}

// Delete implements fedi.FiltersClient.Delete
func (c *FiltersClient) Delete(ctx context.Context, filterID string) fedi.APIResult[string] {
	path := fmt.Sprintf("%s/filters/%s", constants.APIv1, filterID)

	return executeRaw(ctx, c.client, http.MethodDelete, path, nil, nil)
}
