package fedi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/fedikit-io/fedi-client/pkg/fediclient.New to create a client")
)

// AppClients provides access to application and server level clients.
type AppClients interface {
	Apps() AppsClient
	OAuth() OAuthClient
	Instance() InstanceClient
}

// SocialGraphClients provides access to follow-graph resource clients.
type SocialGraphClients interface {
	Accounts() AccountsClient
	FollowRequests() FollowRequestsClient
	Blocks() BlocksClient
	Mutes() MutesClient
	DomainBlocks() DomainBlocksClient
}

// PublishingClients provides access to content-publishing resource clients.
type PublishingClients interface {
	Statuses() StatusesClient
	Media() MediaClient
	Polls() PollsClient
}

// TimelineClients provides access to timeline and inbox resource clients.
type TimelineClients interface {
	Timelines() TimelinesClient
	Notifications() NotificationsClient
	Conversations() ConversationsClient
	Lists() ListsClient
}

// CurationClients provides access to collection and safety resource clients.
type CurationClients interface {
	Favourites() FavouritesClient
	Bookmarks() BookmarksClient
	Filters() FiltersClient
	Reports() ReportsClient
	Search() SearchClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	// Composite interfaces for resource groups
	AppClients
	SocialGraphClients
	PublishingClients
	TimelineClients
	CurationClients
}

// Client is the full client surface: every resource client plus the mutable
// connection settings. Base URL and token are the only mutable client state;
// both setters are safe to call while requests are in flight.
type Client interface {
	ResourceClients

	// SetAccessToken replaces the bearer token used for authentication.
	// An empty token turns authentication off.
	SetAccessToken(token string)
	// SetBaseURL repoints the client at another server. The URL is
	// normalized the same way the constructor normalizes it.
	SetBaseURL(rawURL string) error
	// BaseURL returns the normalized server URL requests are sent to.
	BaseURL() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Codec turns payload bytes into values and back. It is the decoding
// collaborator dispatch uses on every non-raw body.
type Codec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
}

// JSONCodec is the default Codec, backed by encoding/json. Decoding is
// lenient: unknown fields are ignored and absent fields leave their targets
// zero-valued, so server-side API additions do not break older clients.
type JSONCodec struct{}

// Encode implements Codec.
func (JSONCodec) Encode(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}

	return data, nil
}

// Decode implements Codec.
func (JSONCodec) Decode(data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}

	return nil
}

// Config represents client configuration for building a fedi.Client.
//
// # Authentication
//
// The client authenticates with a single OAuth bearer token. Set AccessToken
// to the plain token value; the client stores it pre-formatted as
// "Bearer <token>" and attaches it to every request automatically. Obtaining
// a token in the first place goes through the ordinary OAuth request
// builders (Apps().Create, OAuth().Token); the client performs no token
// refresh or grant orchestration of its own.
//
// # Pagination
//
// List endpoints hand back cursors extracted from the Link response header
// by the configured PageExtractor. Swap the extractor to support a server
// with a different pagination scheme; dispatch is extractor-agnostic.
//
// # Timeouts and transport
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods. HTTPClient substitutes the transport wholesale (TLS
// settings, proxies, connection pooling); HTTPTimeout caps each attempt when
// only a coarse bound is needed.
type Config struct {
	// BaseURL is the server to talk to, e.g. "https://mastodon.example" or
	// just "mastodon.example". A bare host is normalized by trimming a
	// trailing slash and prepending "https://".
	BaseURL string

	// AccessToken is the OAuth bearer token. Empty means unauthenticated;
	// most read endpoints on open servers work without one.
	AccessToken string

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// HTTPClient substitutes the underlying transport. Nil means a default
	// http.Client with HTTPTimeout applied.
	HTTPClient *http.Client

	// HTTPTimeout caps each request when HTTPClient is nil. Zero means the
	// package default.
	HTTPTimeout time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// PageExtractor derives page cursors from list responses. Nil means
	// LinkPageExtractor.
	PageExtractor PageExtractor

	// Codec decodes response bodies. Nil means JSONCodec.
	Codec Codec

	// RequestInterceptors run before each request is sent, in order.
	RequestInterceptors []RequestInterceptor

	// ResponseInterceptors run after each response is received, in order.
	ResponseInterceptors []ResponseInterceptor
}

// NewClient creates a new fedi client.
// Deprecated: Use github.com/fedikit-io/fedi-client/pkg/fediclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
