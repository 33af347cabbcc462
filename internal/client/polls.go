package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// PollsClient implements fedi.PollsClient
type PollsClient struct {
	client *Client
}

// NewPollsClient creates a new polls client
func NewPollsClient(client *Client) *PollsClient {
	return &PollsClient{client: client}
}

// Get implements fedi.PollsClient.Get
func (c *PollsClient) Get(ctx context.Context, pollID string) fedi.APIResult[fedi.Poll] {
	path := fmt.Sprintf("%s/polls/%s", constants.APIv1, pollID)

	return execute[fedi.Poll](ctx, c.client, http.MethodGet, path, nil, nil)
}

// Vote implements fedi.PollsClient.Vote
func (c *PollsClient) Vote(ctx context.Context, pollID string, choices []int) fedi.APIResult[fedi.Poll] {
	path := fmt.Sprintf("%s/polls/%s/votes", constants.APIv1, pollID)
	body := map[string]interface{}{"choices": choices}

	return execute[fedi.Poll](ctx, c.client, http.MethodPost, path, nil, body)
}
