package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for media uploads, which take longer.
	UploadHTTPTimeout = 120 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// API path prefixes.
const (
	// APIv1 is the path prefix for v1 endpoints.
	APIv1 = "/api/v1"

	// APIv2 is the path prefix for v2 endpoints.
	APIv2 = "/api/v2"

	// OAuthTokenPath is the token endpoint.
	OAuthTokenPath = "/oauth/token"

	// OAuthRevokePath is the token revocation endpoint.
	OAuthRevokePath = "/oauth/revoke"

	// OAuthAuthorizePath is the browser authorization endpoint.
	OAuthAuthorizePath = "/oauth/authorize"

	// StreamingPath is the server-sent events endpoint.
	StreamingPath = "/api/v1/streaming"
)

// Pagination and display limits.
const (
	// DefaultPageLimit is the page size most listing endpoints default to.
	DefaultPageLimit = 20

	// MaxPageLimit is the largest page size most listing endpoints accept.
	MaxPageLimit = 40

	// AccountPageLimit is the largest page size account listings accept.
	AccountPageLimit = 80

	// DisplayContentLength is the default length for displaying status text.
	DisplayContentLength = 80

	// DisplayNameLength is the default length for displaying account names.
	DisplayNameLength = 30

	// MaxStreamEvents limits events shown before a stream command exits; 0
	// means unbounded.
	MaxStreamEvents = 0
)

// Buffer sizes.
const (
	// StreamBufferSize is the default buffer size for event channels.
	StreamBufferSize = 100
)

// Client identification.
const (
	// DefaultUserAgent identifies this client when no override is configured.
	DefaultUserAgent = "fedi-client/1.0"
)

// Output format constants.
const (
	// FormatTable for human-readable table output.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// CheckMarkSymbol is used to indicate current/active items.
	CheckMarkSymbol = "✓"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Status character budget constants.
const (
	// DefaultStatusLimit is the character budget most servers configure.
	DefaultStatusLimit = 500
)
