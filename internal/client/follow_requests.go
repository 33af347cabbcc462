package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// FollowRequestsClient implements fedi.FollowRequestsClient
type FollowRequestsClient struct {
	client *Client
}

// NewFollowRequestsClient creates a new follow requests client
func NewFollowRequestsClient(client *Client) *FollowRequestsClient {
	return &FollowRequestsClient{client: client}
}

// List implements fedi.FollowRequestsClient.List
func (c *FollowRequestsClient) List(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
	return executePaged[fedi.Account](ctx, c.client, constants.APIv1+"/follow_requests", params.ToValues())
}

// Authorize implements fedi.FollowRequestsClient.Authorize
func (c *FollowRequestsClient) Authorize(ctx context.Context, accountID string) fedi.APIResult[fedi.Relationship] {
	path := fmt.Sprintf("%s/follow_requests/%s/authorize", constants.APIv1, accountID)

	return execute[fedi.Relationship](ctx, c.client, http.MethodPost, path, nil, nil)
}

// Reject implements fedi.FollowRequestsClient.Reject
func (c *FollowRequestsClient) Reject(ctx context.Context, accountID string) fedi.APIResult[fedi.Relationship] {
	path := fmt.Sprintf("%s/follow_requests/%s/reject", constants.APIv1, accountID)

	return execute[fedi.Relationship](ctx, c.client, http.MethodPost, path, nil, nil)
}
