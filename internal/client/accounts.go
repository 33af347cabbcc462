package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// AccountsClient implements fedi.AccountsClient
type AccountsClient struct {
	client *Client
}

// NewAccountsClient creates a new accounts client
func NewAccountsClient(client *Client) *AccountsClient {
	return &AccountsClient{client: client}
}

// Get implements fedi.AccountsClient.Get
func (c *AccountsClient) Get(ctx context.Context, accountID string) fedi.APIResult[fedi.Account] {
	path := fmt.Sprintf("%s/accounts/%s", constants.APIv1, accountID)

	return execute[fedi.Account](ctx, c.client, http.MethodGet, path, nil, nil)
}

// VerifyCredentials implements fedi.AccountsClient.VerifyCredentials
func (c *AccountsClient) VerifyCredentials(ctx context.Context) fedi.APIResult[fedi.Account] {
	return execute[fedi.Account](ctx, c.client, http.MethodGet, constants.APIv1+"/accounts/verify_credentials", nil, nil)
}

// accountUpdateSource is the nested source object of an update_credentials
// request.
type accountUpdateSource struct {
	Privacy   *string `json:"privacy,omitempty"`
	Sensitive *bool   `json:"sensitive,omitempty"`
	Language  *string `json:"language,omitempty"`
}

// accountUpdatePayload wraps an AccountUpdate so the posting defaults travel
// under the "source" key the API expects.
type accountUpdatePayload struct {
	*fedi.AccountUpdate
	Source *accountUpdateSource `json:"source,omitempty"`
}

// UpdateCredentials implements fedi.AccountsClient.UpdateCredentials
func (c *AccountsClient) UpdateCredentials(ctx context.Context, update *fedi.AccountUpdate) fedi.APIResult[fedi.Account] {
	payload := &accountUpdatePayload{AccountUpdate: update}
	if update != nil && (update.SourcePrivacy != nil || update.SourceSensitive != nil || update.SourceLanguage != nil) {
		payload.Source = &accountUpdateSource{
			Privacy:   update.SourcePrivacy,
			Sensitive: update.SourceSensitive,
			Language:  update.SourceLanguage,
		}
	}

	return execute[fedi.Account](ctx, c.client, http.MethodPatch, constants.APIv1+"/accounts/update_credentials", nil, payload)
}

// Preferences implements fedi.AccountsClient.Preferences
func (c *AccountsClient) Preferences(ctx context.Context) fedi.APIResult[fedi.Preferences] {
	return execute[fedi.Preferences](ctx, c.client, http.MethodGet, constants.APIv1+"/preferences", nil, nil)
}

// Statuses implements fedi.AccountsClient.Statuses
func (c *AccountsClient) Statuses(ctx context.Context, accountID string, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
	path := fmt.Sprintf("%s/accounts/%s/statuses", constants.APIv1, accountID)

	return executePaged[fedi.Status](ctx, c.client, path, params.ToValues())
}

// Followers implements fedi.AccountsClient.Followers
func (c *AccountsClient) Followers(ctx context.Context, accountID string, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
	path := fmt.Sprintf("%s/accounts/%s/followers", constants.APIv1, accountID)

	return executePaged[fedi.Account](ctx, c.client, path, params.ToValues())
}

// Following implements fedi.AccountsClient.Following
func (c *AccountsClient) Following(ctx context.Context, accountID string, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
	path := fmt.Sprintf("%s/accounts/%s/following", constants.APIv1, accountID)

	return executePaged[fedi.Account](ctx, c.client, path, params.ToValues())
}

// Lists implements fedi.AccountsClient.Lists
func (c *AccountsClient) Lists(ctx context.Context, accountID string) fedi.APIResult[[]fedi.List] {
	path := fmt.Sprintf("%s/accounts/%s/lists", constants.APIv1, accountID)

	return execute[[]fedi.List](ctx, c.client, http.MethodGet, path, nil, nil)
}

// Relationships implements fedi.AccountsClient.Relationships
func (c *AccountsClient) Relationships(ctx context.Context, accountIDs []string) fedi.APIResult[[]fedi.Relationship] {
	query := url.Values{"id[]": accountIDs}

	return execute[[]fedi.Relationship](ctx, c.client, http.MethodGet, constants.APIv1+"/accounts/relationships", query, nil)
}

// Search implements fedi.AccountsClient.Search
func (c *AccountsClient) Search(ctx context.Context, query string, params *fedi.QueryParams) fedi.APIResult[[]fedi.Account] {
	values := params.ToValues()
	values.Set("q", query)

	return execute[[]fedi.Account](ctx, c.client, http.MethodGet, constants.APIv1+"/accounts/search", values, nil)
}

// Follow implements fedi.AccountsClient.Follow
func (c *AccountsClient) Follow(ctx context.Context, accountID string) fedi.APIResult[fedi.Relationship] {
	return c.relationshipAction(ctx, accountID, "follow")
}

// Unfollow implements fedi.AccountsClient.Unfollow
func (c *AccountsClient) Unfollow(ctx context.Context, accountID string) fedi.APIResult[fedi.Relationship] {
	return c.relationshipAction(ctx, accountID, "unfollow")
}

// Block implements fedi.AccountsClient.Block
func (c *AccountsClient) Block(ctx context.Context, accountID string) fedi.APIResult[fedi.Relationship] {
	return c.relationshipAction(ctx, accountID, "block")
}

// Unblock implements fedi.AccountsClient.Unblock
func (c *AccountsClient) Unblock(ctx context.Context, accountID string) fedi.APIResult[fedi.Relationship] {
	return c.relationshipAction(ctx, accountID, "unblock")
}

// Mute implements fedi.AccountsClient.Mute
func (c *AccountsClient) Mute(ctx context.Context, accountID string) fedi.APIResult[fedi.Relationship] {
	return c.relationshipAction(ctx, accountID, "mute")
}

// Unmute implements fedi.AccountsClient.Unmute
func (c *AccountsClient) Unmute(ctx context.Context, accountID string) fedi.APIResult[fedi.Relationship] {
	return c.relationshipAction(ctx, accountID, "unmute")
}

// relationshipAction posts one of the follow/block/mute actions and returns
// the updated relationship.
func (c *AccountsClient) relationshipAction(ctx context.Context, accountID, action string) fedi.APIResult[fedi.Relationship] {
	path := fmt.Sprintf("%s/accounts/%s/%s", constants.APIv1, accountID, action)

	return execute[fedi.Relationship](ctx, c.client, http.MethodPost, path, nil, nil)
}
