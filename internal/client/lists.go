package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// ListsClient implements fedi.ListsClient
type ListsClient struct {
	client *Client
}

// NewListsClient creates a new lists client
func NewListsClient(client *Client) *ListsClient {
	return &ListsClient{client: client}
}

// List implements fedi.ListsClient.List
func (c *ListsClient) List(ctx context.Context) fedi.APIResult[[]fedi.List] {
	return execute[[]fedi.List](ctx, c.client, http.MethodGet, constants.APIv1+"/lists", nil, nil)
}

// Get implements fedi.ListsClient.Get
func (c *ListsClient) Get(ctx context.Context, listID string) fedi.APIResult[fedi.List] {
	path := fmt.Sprintf("%s/lists/%s", constants.APIv1, listID)

	return execute[fedi.List](ctx, c.client, http.MethodGet, path, nil, nil)
}

// Create implements fedi.ListsClient.Create
func (c *ListsClient) Create(ctx context.Context, title, repliesPolicy string) fedi.APIResult[fedi.List] {
	return execute[fedi.List](ctx, c.client, http.MethodPost, constants.APIv1+"/lists", nil, listBody(title, repliesPolicy))
}

// Update implements fedi.ListsClient.Update
func (c *ListsClient) Update(ctx context.Context, listID, title, repliesPolicy string) fedi.APIResult[fedi.List] {
	path := fmt.Sprintf("%s/lists/%s", constants.APIv1, listID)

	return execute[fedi.List](ctx, c.client, http.MethodPut, path, nil, listBody(title, repliesPolicy))
}

// Delete implements fedi.ListsClient.Delete
func (c *ListsClient) Delete(ctx context.Context, listID string) fedi.APIResult[string] {
	path := fmt.Sprintf("%s/lists/%s", constants.APIv1, listID)

	return executeRaw(ctx, c.client, http.MethodDelete, path, nil, nil)
}

// Accounts implements fedi.ListsClient.Accounts
func (c *ListsClient) Accounts(ctx context.Context, listID string, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
	path := fmt.Sprintf("%s/lists/%s/accounts", constants.APIv1, listID)

	return executePaged[fedi.Account](ctx, c.client, path, params.ToValues())
}

// AddAccounts implements fedi.ListsClient.AddAccounts
func (c *ListsClient) AddAccounts(ctx context.Context, listID string, accountIDs []string) fedi.APIResult[string] {
	path := fmt.Sprintf("%s/lists/%s/accounts", constants.APIv1, listID)
	body := map[string]interface{}{"account_ids": accountIDs}

	return executeRaw(ctx, c.client, http.MethodPost, path, nil, body)
}

// RemoveAccounts implements fedi.ListsClient.RemoveAccounts
func (c *ListsClient) RemoveAccounts(ctx context.Context, listID string, accountIDs []string) fedi.APIResult[string] {
	path := fmt.Sprintf("%s/lists/%s/accounts", constants.APIv1, listID)
	query := url.Values{"account_ids[]": accountIDs}

	return executeRaw(ctx, c.client, http.MethodDelete, path, query, nil)
}

// listBody assembles the create/update request body, leaving replies_policy
// to the server default when empty.
func listBody(title, repliesPolicy string) map[string]interface{} {
	body := map[string]interface{}{"title": title}
	if repliesPolicy != "" {
		body["replies_policy"] = repliesPolicy
	}

	return body
}
