package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// ConversationsClient implements fedi.ConversationsClient
type ConversationsClient struct {
	client *Client
}

// NewConversationsClient creates a new conversations client
func NewConversationsClient(client *Client) *ConversationsClient {
	return &ConversationsClient{client: client}
}

// List implements fedi.ConversationsClient.List
func (c *ConversationsClient) List(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Conversation] {
	return executePaged[fedi.Conversation](ctx, c.client, constants.APIv1+"/conversations", params.ToValues())
}

// Delete implements fedi.ConversationsClient.Delete
func (c *ConversationsClient) Delete(ctx context.Context, conversationID string) fedi.APIResult[string] {
	path := fmt.Sprintf("%s/conversations/%s", constants.APIv1, conversationID)

	return executeRaw(ctx, c.client, http.MethodDelete, path, nil, nil)
}

// MarkRead implements fedi.ConversationsClient.MarkRead
func (c *ConversationsClient) MarkRead(ctx context.Context, conversationID string) fedi.APIResult[fedi.Conversation] {
	path := fmt.Sprintf("%s/conversations/%s/read", constants.APIv1, conversationID)

	return execute[fedi.Conversation](ctx, c.client, http.MethodPost, path, nil, nil)
}
