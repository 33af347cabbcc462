package fedi

import (
	"io"
	"time"
)

// Account represents a fediverse account.
type Account struct {
	ID             string    `json:"id"                       yaml:"id"`
	Username       string    `json:"username"                 yaml:"username"`
	Acct           string    `json:"acct"                     yaml:"acct"`
	DisplayName    string    `json:"display_name"             yaml:"display_name"`
	Locked         bool      `json:"locked"                   yaml:"locked"`
	Bot            bool      `json:"bot"                      yaml:"bot"`
	Discoverable   bool      `json:"discoverable"             yaml:"discoverable"`
	Group          bool      `json:"group"                    yaml:"group"`
	CreatedAt      time.Time `json:"created_at"               yaml:"created_at"`
	Note           string    `json:"note"                     yaml:"note"`
	URL            string    `json:"url"                      yaml:"url"`
	Avatar         string    `json:"avatar"                   yaml:"avatar"`
	AvatarStatic   string    `json:"avatar_static"            yaml:"avatar_static"`
	Header         string    `json:"header"                   yaml:"header"`
	HeaderStatic   string    `json:"header_static"            yaml:"header_static"`
	FollowersCount int64     `json:"followers_count"          yaml:"followers_count"`
	FollowingCount int64     `json:"following_count"          yaml:"following_count"`
	StatusesCount  int64     `json:"statuses_count"           yaml:"statuses_count"`
	LastStatusAt   string    `json:"last_status_at,omitempty" yaml:"last_status_at,omitempty"`
	Emojis         []Emoji   `json:"emojis,omitempty"         yaml:"emojis,omitempty"`
	Fields         []Field   `json:"fields,omitempty"         yaml:"fields,omitempty"`
	Moved          *Account  `json:"moved,omitempty"          yaml:"moved,omitempty"`
	Suspended      bool      `json:"suspended,omitempty"      yaml:"suspended,omitempty"`
	Source         *Source   `json:"source,omitempty"         yaml:"source,omitempty"`
}

// Field represents one profile metadata row on an account.
type Field struct {
	Name       string     `json:"name"                  yaml:"name"`
	Value      string     `json:"value"                 yaml:"value"`
	VerifiedAt *time.Time `json:"verified_at,omitempty" yaml:"verified_at,omitempty"`
}

// Source represents the editable source values behind an account's profile.
// Servers attach it only to verify_credentials responses.
type Source struct {
	Privacy             string  `json:"privacy,omitempty"               yaml:"privacy,omitempty"`
	Sensitive           bool    `json:"sensitive,omitempty"             yaml:"sensitive,omitempty"`
	Language            string  `json:"language,omitempty"              yaml:"language,omitempty"`
	Note                string  `json:"note"                            yaml:"note"`
	Fields              []Field `json:"fields,omitempty"                yaml:"fields,omitempty"`
	FollowRequestsCount int64   `json:"follow_requests_count,omitempty" yaml:"follow_requests_count,omitempty"`
}

// AccountUpdate represents a request to update the authenticated account's
// profile. Nil fields are left unchanged. Avatar and header images go through
// the media workflow, not through this request.
type AccountUpdate struct {
	DisplayName  *string `json:"display_name,omitempty"  yaml:"display_name,omitempty"`
	Note         *string `json:"note,omitempty"          yaml:"note,omitempty"`
	Locked       *bool   `json:"locked,omitempty"        yaml:"locked,omitempty"`
	Bot          *bool   `json:"bot,omitempty"           yaml:"bot,omitempty"`
	Discoverable *bool   `json:"discoverable,omitempty"  yaml:"discoverable,omitempty"`
	// SourcePrivacy sets the default posting visibility.
	SourcePrivacy *string `json:"-" yaml:"-"`
	// SourceSensitive marks new posts sensitive by default.
	SourceSensitive *bool `json:"-" yaml:"-"`
	// SourceLanguage sets the default posting language (ISO 639-1).
	SourceLanguage *string `json:"-" yaml:"-"`
}

// Status represents a status ("toot") on a fediverse server.
type Status struct {
	ID                 string            `json:"id"                               yaml:"id"`
	URI                string            `json:"uri"                              yaml:"uri"`
	URL                string            `json:"url,omitempty"                    yaml:"url,omitempty"`
	Account            Account           `json:"account"                          yaml:"account"`
	InReplyToID        *string           `json:"in_reply_to_id,omitempty"         yaml:"in_reply_to_id,omitempty"`
	InReplyToAccountID *string           `json:"in_reply_to_account_id,omitempty" yaml:"in_reply_to_account_id,omitempty"`
	Reblog             *Status           `json:"reblog,omitempty"                 yaml:"reblog,omitempty"`
	Content            string            `json:"content"                          yaml:"content"`
	CreatedAt          time.Time         `json:"created_at"                       yaml:"created_at"`
	EditedAt           *time.Time        `json:"edited_at,omitempty"              yaml:"edited_at,omitempty"`
	Emojis             []Emoji           `json:"emojis,omitempty"                 yaml:"emojis,omitempty"`
	RepliesCount       int64             `json:"replies_count"                    yaml:"replies_count"`
	ReblogsCount       int64             `json:"reblogs_count"                    yaml:"reblogs_count"`
	FavouritesCount    int64             `json:"favourites_count"                 yaml:"favourites_count"`
	Reblogged          bool              `json:"reblogged,omitempty"              yaml:"reblogged,omitempty"`
	Favourited         bool              `json:"favourited,omitempty"             yaml:"favourited,omitempty"`
	Muted              bool              `json:"muted,omitempty"                  yaml:"muted,omitempty"`
	Bookmarked         bool              `json:"bookmarked,omitempty"             yaml:"bookmarked,omitempty"`
	Pinned             bool              `json:"pinned,omitempty"                 yaml:"pinned,omitempty"`
	Sensitive          bool              `json:"sensitive"                        yaml:"sensitive"`
	SpoilerText        string            `json:"spoiler_text"                     yaml:"spoiler_text"`
	Visibility         StatusVisibility  `json:"visibility"                       yaml:"visibility"`
	MediaAttachments   []MediaAttachment `json:"media_attachments"                yaml:"media_attachments"`
	Mentions           []Mention         `json:"mentions,omitempty"               yaml:"mentions,omitempty"`
	Tags               []Tag             `json:"tags,omitempty"                   yaml:"tags,omitempty"`
	Card               *Card             `json:"card,omitempty"                   yaml:"card,omitempty"`
	Poll               *Poll             `json:"poll,omitempty"                   yaml:"poll,omitempty"`
	Application        *Application      `json:"application,omitempty"            yaml:"application,omitempty"`
	Language           string            `json:"language,omitempty"               yaml:"language,omitempty"`
	Text               string            `json:"text,omitempty"                   yaml:"text,omitempty"`
}

// StatusVisibility enumerates who can see a status.
type StatusVisibility string

// Status visibility levels.
const (
	VisibilityPublic   StatusVisibility = "public"
	VisibilityUnlisted StatusVisibility = "unlisted"
	VisibilityPrivate  StatusVisibility = "private"
	VisibilityDirect   StatusVisibility = "direct"
)

// StatusCreate represents a request to publish a new status.
type StatusCreate struct {
	// Status is the text content. Required unless MediaIDs is non-empty.
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
	// InReplyToID threads the status under an existing one.
	InReplyToID string `json:"in_reply_to_id,omitempty" yaml:"in_reply_to_id,omitempty"`
	// MediaIDs attaches up to four previously uploaded attachments.
	MediaIDs []string `json:"media_ids,omitempty" yaml:"media_ids,omitempty"`
	// Sensitive hides attachments behind a click-through.
	Sensitive bool `json:"sensitive,omitempty" yaml:"sensitive,omitempty"`
	// SpoilerText shows as the content warning.
	SpoilerText string `json:"spoiler_text,omitempty" yaml:"spoiler_text,omitempty"`
	// Visibility defaults to the account's posting preference when empty.
	Visibility StatusVisibility `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	// Language overrides the detected language (ISO 639-1).
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	// ScheduledAt defers publication; the server answers with a
	// ScheduledStatus instead of a Status.
	ScheduledAt *time.Time `json:"scheduled_at,omitempty" yaml:"scheduled_at,omitempty"`
	// Poll attaches a poll; mutually exclusive with MediaIDs.
	Poll *PollCreate `json:"poll,omitempty" yaml:"poll,omitempty"`
}

// PollCreate represents the poll section of a StatusCreate.
type PollCreate struct {
	Options    []string `json:"options"               yaml:"options"`
	ExpiresIn  int64    `json:"expires_in"            yaml:"expires_in"`
	Multiple   bool     `json:"multiple,omitempty"    yaml:"multiple,omitempty"`
	HideTotals bool     `json:"hide_totals,omitempty" yaml:"hide_totals,omitempty"`
}

// ScheduledStatus represents a status the server will publish later.
type ScheduledStatus struct {
	ID               string            `json:"id"                          yaml:"id"`
	ScheduledAt      time.Time         `json:"scheduled_at"                yaml:"scheduled_at"`
	MediaAttachments []MediaAttachment `json:"media_attachments,omitempty" yaml:"media_attachments,omitempty"`
}

// MediaAttachment represents an uploaded media file.
type MediaAttachment struct {
	ID          string          `json:"id"                    yaml:"id"`
	Type        string          `json:"type"                  yaml:"type"`
	URL         string          `json:"url"                   yaml:"url"`
	RemoteURL   string          `json:"remote_url,omitempty"  yaml:"remote_url,omitempty"`
	PreviewURL  string          `json:"preview_url"           yaml:"preview_url"`
	Meta        *AttachmentMeta `json:"meta,omitempty"        yaml:"meta,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Blurhash    string          `json:"blurhash,omitempty"    yaml:"blurhash,omitempty"`
}

// AttachmentMeta represents size and focus metadata on an attachment.
type AttachmentMeta struct {
	Original *AttachmentSize  `json:"original,omitempty" yaml:"original,omitempty"`
	Small    *AttachmentSize  `json:"small,omitempty"    yaml:"small,omitempty"`
	Focus    *AttachmentFocus `json:"focus,omitempty"    yaml:"focus,omitempty"`
}

// AttachmentSize represents the dimensions of one rendition.
type AttachmentSize struct {
	Width  int     `json:"width,omitempty"  yaml:"width,omitempty"`
	Height int     `json:"height,omitempty" yaml:"height,omitempty"`
	Size   string  `json:"size,omitempty"   yaml:"size,omitempty"`
	Aspect float64 `json:"aspect,omitempty" yaml:"aspect,omitempty"`
}

// AttachmentFocus represents the thumbnail focal point, each axis in [-1, 1].
type AttachmentFocus struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// MediaUpdate represents a request to edit an uploaded attachment.
type MediaUpdate struct {
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	// Focus is "x,y" with each axis in [-1, 1].
	Focus *string `json:"focus,omitempty" yaml:"focus,omitempty"`
}

// Application represents an OAuth application registered on a server. The
// credential fields are only present in the registration response.
type Application struct {
	ID           string `json:"id,omitempty"            yaml:"id,omitempty"`
	Name         string `json:"name"                    yaml:"name"`
	Website      string `json:"website,omitempty"       yaml:"website,omitempty"`
	RedirectURI  string `json:"redirect_uri,omitempty"  yaml:"redirect_uri,omitempty"`
	ClientID     string `json:"client_id,omitempty"     yaml:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	VapidKey     string `json:"vapid_key,omitempty"     yaml:"vapid_key,omitempty"`
}

// AppRegistration represents a request to register an OAuth application.
type AppRegistration struct {
	ClientName   string `json:"client_name"       yaml:"client_name"`
	RedirectURIs string `json:"redirect_uris"     yaml:"redirect_uris"`
	Scopes       string `json:"scopes"            yaml:"scopes"`
	Website      string `json:"website,omitempty" yaml:"website,omitempty"`
}

// Token represents an OAuth token grant.
type Token struct {
	AccessToken string `json:"access_token" yaml:"access_token"`
	TokenType   string `json:"token_type"   yaml:"token_type"`
	Scope       string `json:"scope"        yaml:"scope"`
	CreatedAt   int64  `json:"created_at"   yaml:"created_at"`
}

// OAuth grant types accepted by the token endpoint.
const (
	GrantTypePassword          = "password"
	GrantTypeClientCredentials = "client_credentials"
	GrantTypeAuthorizationCode = "authorization_code"
)

// Common OAuth scopes.
const (
	ScopeRead   = "read"
	ScopeWrite  = "write"
	ScopeFollow = "follow"
	ScopePush   = "push"
)

// RedirectURIOutOfBand asks the server to display the authorization code
// instead of redirecting, for clients without a callback endpoint.
const RedirectURIOutOfBand = "urn:ietf:wg:oauth:2.0:oob"

// TokenRequest represents a request to the token endpoint. It is sent
// form-encoded; fill in the fields the chosen grant type needs.
type TokenRequest struct {
	// GrantType selects the flow: password, client_credentials, or
	// authorization_code.
	GrantType    string
	ClientID     string
	ClientSecret string
	// RedirectURI must match the application registration for the
	// authorization_code grant.
	RedirectURI string
	// Code is the authorization code for the authorization_code grant.
	Code string
	// Username and Password serve the password grant.
	Username string
	Password string
	// Scope defaults to "read" server-side when empty.
	Scope string
}

// AuthorizeRequest represents the parameters of an authorization-code
// browser URL.
type AuthorizeRequest struct {
	ClientID    string
	RedirectURI string
	Scope       string
	// State is echoed back on the redirect; a random value is generated
	// when empty.
	State string
	// ForceLogin makes the server re-prompt for credentials even with an
	// active session.
	ForceLogin bool
}

// MediaUpload represents a file upload. It is sent as multipart/form-data,
// not JSON.
type MediaUpload struct {
	// File supplies the bytes; it is read once, to the end.
	File io.Reader
	// Filename names the form part. Servers use the extension as a type
	// hint.
	Filename string
	// Description becomes the attachment's alt text.
	Description string
	// Focus is the focal point as "x,y", each axis in [-1, 1].
	Focus string
}

// Relationship represents the authenticated account's relationship to
// another account.
type Relationship struct {
	ID                  string `json:"id"                   yaml:"id"`
	Following           bool   `json:"following"            yaml:"following"`
	ShowingReblogs      bool   `json:"showing_reblogs"      yaml:"showing_reblogs"`
	Notifying           bool   `json:"notifying"            yaml:"notifying"`
	FollowedBy          bool   `json:"followed_by"          yaml:"followed_by"`
	Blocking            bool   `json:"blocking"             yaml:"blocking"`
	BlockedBy           bool   `json:"blocked_by"           yaml:"blocked_by"`
	Muting              bool   `json:"muting"               yaml:"muting"`
	MutingNotifications bool   `json:"muting_notifications" yaml:"muting_notifications"`
	Requested           bool   `json:"requested"            yaml:"requested"`
	DomainBlocking      bool   `json:"domain_blocking"      yaml:"domain_blocking"`
	Endorsed            bool   `json:"endorsed"             yaml:"endorsed"`
	Note                string `json:"note,omitempty"       yaml:"note,omitempty"`
}

// Notification represents an event concerning the authenticated account.
type Notification struct {
	ID        string    `json:"id"               yaml:"id"`
	Type      string    `json:"type"             yaml:"type"`
	CreatedAt time.Time `json:"created_at"       yaml:"created_at"`
	Account   Account   `json:"account"          yaml:"account"`
	Status    *Status   `json:"status,omitempty" yaml:"status,omitempty"`
}

// Notification types.
const (
	NotificationFollow        = "follow"
	NotificationFollowRequest = "follow_request"
	NotificationMention       = "mention"
	NotificationReblog        = "reblog"
	NotificationFavourite     = "favourite"
	NotificationPoll          = "poll"
	NotificationStatus        = "status"
	NotificationUpdate        = "update"
)

// Instance represents server metadata from /api/v1/instance.
type Instance struct {
	URI              string         `json:"uri"                         yaml:"uri"`
	Title            string         `json:"title"                       yaml:"title"`
	ShortDescription string         `json:"short_description,omitempty" yaml:"short_description,omitempty"`
	Description      string         `json:"description"                 yaml:"description"`
	Email            string         `json:"email"                       yaml:"email"`
	Version          string         `json:"version"                     yaml:"version"`
	URLs             *InstanceURLs  `json:"urls,omitempty"              yaml:"urls,omitempty"`
	Stats            *InstanceStats `json:"stats,omitempty"             yaml:"stats,omitempty"`
	Thumbnail        string         `json:"thumbnail,omitempty"         yaml:"thumbnail,omitempty"`
	Languages        []string       `json:"languages,omitempty"         yaml:"languages,omitempty"`
	Registrations    bool           `json:"registrations"               yaml:"registrations"`
	ApprovalRequired bool           `json:"approval_required"           yaml:"approval_required"`
	InvitesEnabled   bool           `json:"invites_enabled"             yaml:"invites_enabled"`
	ContactAccount   *Account       `json:"contact_account,omitempty"   yaml:"contact_account,omitempty"`
}

// InstanceURLs represents the auxiliary endpoints a server advertises.
type InstanceURLs struct {
	StreamingAPI string `json:"streaming_api" yaml:"streaming_api"`
}

// InstanceStats represents aggregate counts for a server.
type InstanceStats struct {
	UserCount   int64 `json:"user_count"   yaml:"user_count"`
	StatusCount int64 `json:"status_count" yaml:"status_count"`
	DomainCount int64 `json:"domain_count" yaml:"domain_count"`
}

// Activity represents one week of server activity. The server sends every
// field as a string, including the numeric ones.
type Activity struct {
	Week          string `json:"week"          yaml:"week"`
	Statuses      string `json:"statuses"      yaml:"statuses"`
	Logins        string `json:"logins"        yaml:"logins"`
	Registrations string `json:"registrations" yaml:"registrations"`
}

// List represents a curated account list.
type List struct {
	ID            string `json:"id"                       yaml:"id"`
	Title         string `json:"title"                    yaml:"title"`
	RepliesPolicy string `json:"replies_policy,omitempty" yaml:"replies_policy,omitempty"`
}

// Context represents the thread around a status.
type Context struct {
	Ancestors   []Status `json:"ancestors"   yaml:"ancestors"`
	Descendants []Status `json:"descendants" yaml:"descendants"`
}

// Card represents a link preview attached to a status.
type Card struct {
	URL          string `json:"url"                     yaml:"url"`
	Title        string `json:"title"                   yaml:"title"`
	Description  string `json:"description"             yaml:"description"`
	Type         string `json:"type"                    yaml:"type"`
	AuthorName   string `json:"author_name,omitempty"   yaml:"author_name,omitempty"`
	AuthorURL    string `json:"author_url,omitempty"    yaml:"author_url,omitempty"`
	ProviderName string `json:"provider_name,omitempty" yaml:"provider_name,omitempty"`
	ProviderURL  string `json:"provider_url,omitempty"  yaml:"provider_url,omitempty"`
	HTML         string `json:"html,omitempty"          yaml:"html,omitempty"`
	Width        int    `json:"width,omitempty"         yaml:"width,omitempty"`
	Height       int    `json:"height,omitempty"        yaml:"height,omitempty"`
	Image        string `json:"image,omitempty"         yaml:"image,omitempty"`
	EmbedURL     string `json:"embed_url,omitempty"     yaml:"embed_url,omitempty"`
	Blurhash     string `json:"blurhash,omitempty"      yaml:"blurhash,omitempty"`
}

// Poll represents a poll attached to a status.
type Poll struct {
	ID          string       `json:"id"                    yaml:"id"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"  yaml:"expires_at,omitempty"`
	Expired     bool         `json:"expired"               yaml:"expired"`
	Multiple    bool         `json:"multiple"              yaml:"multiple"`
	VotesCount  int64        `json:"votes_count"           yaml:"votes_count"`
	VotersCount *int64       `json:"voters_count,omitempty" yaml:"voters_count,omitempty"`
	Voted       bool         `json:"voted,omitempty"       yaml:"voted,omitempty"`
	OwnVotes    []int        `json:"own_votes,omitempty"   yaml:"own_votes,omitempty"`
	Options     []PollOption `json:"options"               yaml:"options"`
	Emojis      []Emoji      `json:"emojis,omitempty"      yaml:"emojis,omitempty"`
}

// PollOption represents one answer in a poll.
type PollOption struct {
	Title      string `json:"title"       yaml:"title"`
	VotesCount int64  `json:"votes_count" yaml:"votes_count"`
}

// Tag represents a hashtag and its recent usage.
type Tag struct {
	Name    string       `json:"name"              yaml:"name"`
	URL     string       `json:"url"               yaml:"url"`
	History []TagHistory `json:"history,omitempty" yaml:"history,omitempty"`
}

// TagHistory represents one day of hashtag usage, all fields as strings on
// the wire.
type TagHistory struct {
	Day      string `json:"day"      yaml:"day"`
	Uses     string `json:"uses"     yaml:"uses"`
	Accounts string `json:"accounts" yaml:"accounts"`
}

// Emoji represents a custom emoji.
type Emoji struct {
	Shortcode       string `json:"shortcode"          yaml:"shortcode"`
	URL             string `json:"url"                yaml:"url"`
	StaticURL       string `json:"static_url"         yaml:"static_url"`
	VisibleInPicker bool   `json:"visible_in_picker"  yaml:"visible_in_picker"`
	Category        string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Mention represents an account referenced in a status.
type Mention struct {
	ID       string `json:"id"       yaml:"id"`
	Username string `json:"username" yaml:"username"`
	URL      string `json:"url"      yaml:"url"`
	Acct     string `json:"acct"     yaml:"acct"`
}

// SearchResults represents the three result groups of a v2 search.
type SearchResults struct {
	Accounts []Account `json:"accounts" yaml:"accounts"`
	Statuses []Status  `json:"statuses" yaml:"statuses"`
	Hashtags []Tag     `json:"hashtags" yaml:"hashtags"`
}

// Conversation represents a direct-message thread.
type Conversation struct {
	ID         string    `json:"id"                    yaml:"id"`
	Accounts   []Account `json:"accounts"              yaml:"accounts"`
	Unread     bool      `json:"unread"                yaml:"unread"`
	LastStatus *Status   `json:"last_status,omitempty" yaml:"last_status,omitempty"`
}

// Report represents a filed moderation report.
type Report struct {
	ID          string `json:"id"           yaml:"id"`
	ActionTaken bool   `json:"action_taken" yaml:"action_taken"`
}

// ReportCreate represents a request to file a moderation report.
type ReportCreate struct {
	AccountID string   `json:"account_id"           yaml:"account_id"`
	StatusIDs []string `json:"status_ids,omitempty" yaml:"status_ids,omitempty"`
	Comment   string   `json:"comment,omitempty"    yaml:"comment,omitempty"`
	Forward   bool     `json:"forward,omitempty"    yaml:"forward,omitempty"`
}

// Filter represents a keyword filter on the authenticated account.
type Filter struct {
	ID           string     `json:"id"                   yaml:"id"`
	Phrase       string     `json:"phrase"               yaml:"phrase"`
	Context      []string   `json:"context"              yaml:"context"`
	WholeWord    bool       `json:"whole_word"           yaml:"whole_word"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Irreversible bool       `json:"irreversible"         yaml:"irreversible"`
}

// FilterCreate represents a request to create or update a keyword filter.
type FilterCreate struct {
	Phrase       string   `json:"phrase"                 yaml:"phrase"`
	Context      []string `json:"context"                yaml:"context"`
	WholeWord    bool     `json:"whole_word,omitempty"   yaml:"whole_word,omitempty"`
	ExpiresIn    int64    `json:"expires_in,omitempty"   yaml:"expires_in,omitempty"`
	Irreversible bool     `json:"irreversible,omitempty" yaml:"irreversible,omitempty"`
}

// Preferences represents the authenticated account's reading and posting
// preferences. The wire keys really do contain colons.
type Preferences struct {
	PostingVisibility     StatusVisibility `json:"posting:default:visibility" yaml:"posting_default_visibility"`
	PostingSensitive      bool             `json:"posting:default:sensitive"  yaml:"posting_default_sensitive"`
	PostingLanguage       string           `json:"posting:default:language"   yaml:"posting_default_language"`
	ReadingExpandMedia    string           `json:"reading:expand:media"       yaml:"reading_expand_media"`
	ReadingExpandSpoilers bool             `json:"reading:expand:spoilers"    yaml:"reading_expand_spoilers"`
}
