package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// TimelinesClient implements fedi.TimelinesClient
type TimelinesClient struct {
	client *Client
}

// NewTimelinesClient creates a new timelines client
func NewTimelinesClient(client *Client) *TimelinesClient {
	return &TimelinesClient{client: client}
}

// Home implements fedi.TimelinesClient.Home
func (c *TimelinesClient) Home(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
	return executePaged[fedi.Status](ctx, c.client, constants.APIv1+"/timelines/home", params.ToValues())
}

// Public implements fedi.TimelinesClient.Public
func (c *TimelinesClient) Public(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
	return executePaged[fedi.Status](ctx, c.client, constants.APIv1+"/timelines/public", params.ToValues())
}

// Tag implements fedi.TimelinesClient.Tag
func (c *TimelinesClient) Tag(ctx context.Context, hashtag string, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
	path := fmt.Sprintf("%s/timelines/tag/%s", constants.APIv1, url.PathEscape(hashtag))

	return executePaged[fedi.Status](ctx, c.client, path, params.ToValues())
}

// List implements fedi.TimelinesClient.List
func (c *TimelinesClient) List(ctx context.Context, listID string, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
	path := fmt.Sprintf("%s/timelines/list/%s", constants.APIv1, listID)

	return executePaged[fedi.Status](ctx, c.client, path, params.ToValues())
}

// Direct implements fedi.TimelinesClient.Direct
func (c *TimelinesClient) Direct(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
	return executePaged[fedi.Status](ctx, c.client, constants.APIv1+"/timelines/direct", params.ToValues())
}
