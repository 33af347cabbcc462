package client

import (
	"context"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// SearchClient implements fedi.SearchClient
type SearchClient struct {
	client *Client
}

// NewSearchClient creates a new search client
func NewSearchClient(client *Client) *SearchClient {
	return &SearchClient{client: client}
}

// Search implements fedi.SearchClient.Search
func (c *SearchClient) Search(ctx context.Context, query string, params *fedi.QueryParams) fedi.APIResult[fedi.SearchResults] {
	values := params.ToValues()
	values.Set("q", query)

	return execute[fedi.SearchResults](ctx, c.client, http.MethodGet, constants.APIv2+"/search", values, nil)
}
