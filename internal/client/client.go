// Package client implements the fedi.Client interface: one dispatch core
// that turns HTTP exchanges into Result values, and a thin request builder
// per resource family.
package client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fedikit-io/fedi-client/internal/auth"
	"github.com/fedikit-io/fedi-client/internal/http"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// Client implements the fedi.Client interface.
type Client struct {
	httpClient    *http.Client
	tokenProvider *auth.StaticTokenProvider
	codec         fedi.Codec
	extractor     fedi.PageExtractor
	logger        fedi.Logger
	interceptors  *fedi.InterceptorChain

	// Resource clients
	apps           fedi.AppsClient
	oauth          fedi.OAuthClient
	instance       fedi.InstanceClient
	accounts       fedi.AccountsClient
	followRequests fedi.FollowRequestsClient
	blocks         fedi.BlocksClient
	mutes          fedi.MutesClient
	domainBlocks   fedi.DomainBlocksClient
	statuses       fedi.StatusesClient
	media          fedi.MediaClient
	polls          fedi.PollsClient
	timelines      fedi.TimelinesClient
	notifications  fedi.NotificationsClient
	conversations  fedi.ConversationsClient
	lists          fedi.ListsClient
	favourites     fedi.FavouritesClient
	bookmarks      fedi.BookmarksClient
	filters        fedi.FiltersClient
	reports        fedi.ReportsClient
	search         fedi.SearchClient
}

// New creates a client for the server named in config.BaseURL.
func New(config *fedi.Config) (*Client, error) {
	if config == nil {
		return nil, fedi.ErrConfigRequired
	}

	baseURL, err := NormalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	tokenProvider := auth.NewStaticTokenProvider(config.AccessToken)
	httpClient := http.NewClient(baseURL, tokenProvider, buildHTTPOptions(config)...)

	codec := config.Codec
	if codec == nil {
		codec = fedi.JSONCodec{}
	}

	extractor := config.PageExtractor
	if extractor == nil {
		extractor = fedi.LinkPageExtractor{}
	}

	interceptors := fedi.NewInterceptorChain()
	for _, interceptor := range config.RequestInterceptors {
		interceptors.AddRequestInterceptor(interceptor)
	}

	for _, interceptor := range config.ResponseInterceptors {
		interceptors.AddResponseInterceptor(interceptor)
	}

	client := &Client{
		httpClient:    httpClient,
		tokenProvider: tokenProvider,
		codec:         codec,
		extractor:     extractor,
		logger:        config.Logger,
		interceptors:  interceptors,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// buildHTTPOptions builds HTTP transport options from config.
func buildHTTPOptions(config *fedi.Config) []http.Option {
	var httpOpts []http.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// NormalizeBaseURL turns whatever the caller supplied into the canonical
// server URL: "https://" is prepended when no scheme is present, a trailing
// slash is trimmed, and the result must name a host.
func NormalizeBaseURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", fedi.ErrBaseURLRequired
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	if parsed.Host == "" {
		return "", fedi.ErrNoHostInURL
	}

	return strings.TrimSuffix(parsed.String(), "/"), nil
}

// SetAccessToken implements fedi.Client.SetAccessToken. Requests that begin
// after it returns carry the new credential; in-flight requests keep the one
// they started with.
func (c *Client) SetAccessToken(token string) {
	c.tokenProvider.SetToken(token)
}

// SetBaseURL implements fedi.Client.SetBaseURL.
func (c *Client) SetBaseURL(rawURL string) error {
	baseURL, err := NormalizeBaseURL(rawURL)
	if err != nil {
		return err
	}

	c.httpClient.SetBaseURL(baseURL)

	return nil
}

// BaseURL implements fedi.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// Resource client accessors

// Apps implements fedi.Client.Apps.
func (c *Client) Apps() fedi.AppsClient {
	return c.apps
}

// OAuth implements fedi.Client.OAuth.
func (c *Client) OAuth() fedi.OAuthClient {
	return c.oauth
}

// Instance implements fedi.Client.Instance.
func (c *Client) Instance() fedi.InstanceClient {
	return c.instance
}

// Accounts implements fedi.Client.Accounts.
func (c *Client) Accounts() fedi.AccountsClient {
	return c.accounts
}

// FollowRequests implements fedi.Client.FollowRequests.
func (c *Client) FollowRequests() fedi.FollowRequestsClient {
	return c.followRequests
}

// Blocks implements fedi.Client.Blocks.
func (c *Client) Blocks() fedi.BlocksClient {
	return c.blocks
}

// Mutes implements fedi.Client.Mutes.
func (c *Client) Mutes() fedi.MutesClient {
	return c.mutes
}

// DomainBlocks implements fedi.Client.DomainBlocks.
func (c *Client) DomainBlocks() fedi.DomainBlocksClient {
	return c.domainBlocks
}

// Statuses implements fedi.Client.Statuses.
func (c *Client) Statuses() fedi.StatusesClient {
	return c.statuses
}

// Media implements fedi.Client.Media.
func (c *Client) Media() fedi.MediaClient {
	return c.media
}

// Polls implements fedi.Client.Polls.
func (c *Client) Polls() fedi.PollsClient {
	return c.polls
}

// Timelines implements fedi.Client.Timelines.
func (c *Client) Timelines() fedi.TimelinesClient {
	return c.timelines
}

// Notifications implements fedi.Client.Notifications.
func (c *Client) Notifications() fedi.NotificationsClient {
	return c.notifications
}

// Conversations implements fedi.Client.Conversations.
func (c *Client) Conversations() fedi.ConversationsClient {
	return c.conversations
}

// Lists implements fedi.Client.Lists.
func (c *Client) Lists() fedi.ListsClient {
	return c.lists
}

// Favourites implements fedi.Client.Favourites.
func (c *Client) Favourites() fedi.FavouritesClient {
	return c.favourites
}

// Bookmarks implements fedi.Client.Bookmarks.
func (c *Client) Bookmarks() fedi.BookmarksClient {
	return c.bookmarks
}

// Filters implements fedi.Client.Filters.
func (c *Client) Filters() fedi.FiltersClient {
	return c.filters
}

// Reports implements fedi.Client.Reports.
func (c *Client) Reports() fedi.ReportsClient {
	return c.reports
}

// Search implements fedi.Client.Search.
func (c *Client) Search() fedi.SearchClient {
	return c.search
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.apps = NewAppsClient(c)
	c.oauth = NewOAuthClient(c)
	c.instance = NewInstanceClient(c)
	c.accounts = NewAccountsClient(c)
	c.followRequests = NewFollowRequestsClient(c)
	c.blocks = NewBlocksClient(c)
	c.mutes = NewMutesClient(c)
	c.domainBlocks = NewDomainBlocksClient(c)
	c.statuses = NewStatusesClient(c)
	c.media = NewMediaClient(c)
	c.polls = NewPollsClient(c)
	c.timelines = NewTimelinesClient(c)
	c.notifications = NewNotificationsClient(c)
	c.conversations = NewConversationsClient(c)
	c.lists = NewListsClient(c)
	c.favourites = NewFavouritesClient(c)
	c.bookmarks = NewBookmarksClient(c)
	c.filters = NewFiltersClient(c)
	c.reports = NewReportsClient(c)
	c.search = NewSearchClient(c)
}
