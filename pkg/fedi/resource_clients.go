package fedi

import (
	"context"
)

// AppsClient registers and inspects OAuth applications.
type AppsClient interface {
	// Create registers a new application and returns it with client
	// credentials filled in.
	Create(ctx context.Context, registration *AppRegistration) APIResult[Application]
	// VerifyCredentials confirms the application token still works.
	VerifyCredentials(ctx context.Context) APIResult[Application]
}

// OAuthClient covers the token endpoints. These are ordinary request
// builders: the library does not orchestrate grants, refresh, or token
// storage.
type OAuthClient interface {
	// Token exchanges credentials for an access token.
	Token(ctx context.Context, request *TokenRequest) APIResult[Token]
	// Revoke invalidates an access token. The server answers with a bare
	// "{}" on success.
	Revoke(ctx context.Context, clientID, clientSecret, token string) APIResult[string]
	// AuthorizeURL assembles the browser URL for the authorization-code
	// flow. Pure URL construction, no request is made.
	AuthorizeURL(request *AuthorizeRequest) (string, error)
}

// AccountsClient operates on accounts and the authenticated profile.
type AccountsClient interface {
	Get(ctx context.Context, accountID string) APIResult[Account]
	VerifyCredentials(ctx context.Context) APIResult[Account]
	UpdateCredentials(ctx context.Context, update *AccountUpdate) APIResult[Account]
	Preferences(ctx context.Context) APIResult[Preferences]
	Statuses(ctx context.Context, accountID string, params *QueryParams) APIPagedResult[Status]
	Followers(ctx context.Context, accountID string, params *QueryParams) APIPagedResult[Account]
	Following(ctx context.Context, accountID string, params *QueryParams) APIPagedResult[Account]
	Lists(ctx context.Context, accountID string) APIResult[[]List]
	Relationships(ctx context.Context, accountIDs []string) APIResult[[]Relationship]
	Search(ctx context.Context, query string, params *QueryParams) APIResult[[]Account]
	Follow(ctx context.Context, accountID string) APIResult[Relationship]
	Unfollow(ctx context.Context, accountID string) APIResult[Relationship]
	Block(ctx context.Context, accountID string) APIResult[Relationship]
	Unblock(ctx context.Context, accountID string) APIResult[Relationship]
	Mute(ctx context.Context, accountID string) APIResult[Relationship]
	Unmute(ctx context.Context, accountID string) APIResult[Relationship]
}

// StatusesClient publishes and interacts with statuses.
type StatusesClient interface {
	Get(ctx context.Context, statusID string) APIResult[Status]
	// Create publishes a status. Requests carry an Idempotency-Key header so
	// an accidental resubmission does not double-post.
	Create(ctx context.Context, create *StatusCreate) APIResult[Status]
	// Delete removes a status; the server returns the deleted status with
	// its source text for redrafting.
	Delete(ctx context.Context, statusID string) APIResult[Status]
	Context(ctx context.Context, statusID string) APIResult[Context]
	Card(ctx context.Context, statusID string) APIResult[Card]
	RebloggedBy(ctx context.Context, statusID string, params *QueryParams) APIPagedResult[Account]
	FavouritedBy(ctx context.Context, statusID string, params *QueryParams) APIPagedResult[Account]
	Favourite(ctx context.Context, statusID string) APIResult[Status]
	Unfavourite(ctx context.Context, statusID string) APIResult[Status]
	Reblog(ctx context.Context, statusID string) APIResult[Status]
	Unreblog(ctx context.Context, statusID string) APIResult[Status]
	Bookmark(ctx context.Context, statusID string) APIResult[Status]
	Unbookmark(ctx context.Context, statusID string) APIResult[Status]
	Pin(ctx context.Context, statusID string) APIResult[Status]
	Unpin(ctx context.Context, statusID string) APIResult[Status]
}

// TimelinesClient reads the various status timelines.
type TimelinesClient interface {
	Home(ctx context.Context, params *QueryParams) APIPagedResult[Status]
	Public(ctx context.Context, params *QueryParams) APIPagedResult[Status]
	Tag(ctx context.Context, hashtag string, params *QueryParams) APIPagedResult[Status]
	List(ctx context.Context, listID string, params *QueryParams) APIPagedResult[Status]
	Direct(ctx context.Context, params *QueryParams) APIPagedResult[Status]
}

// NotificationsClient reads and clears the notification inbox.
type NotificationsClient interface {
	List(ctx context.Context, params *QueryParams) APIPagedResult[Notification]
	Get(ctx context.Context, notificationID string) APIResult[Notification]
	// Clear wipes all notifications. The server answers with the literal
	// string "{}", passed through verbatim.
	Clear(ctx context.Context) APIResult[string]
	// Dismiss removes a single notification; answers "{}" like Clear.
	Dismiss(ctx context.Context, notificationID string) APIResult[string]
}

// MediaClient uploads and edits media attachments.
type MediaClient interface {
	// Upload sends the file as multipart/form-data and returns the
	// attachment to reference from a StatusCreate.
	Upload(ctx context.Context, upload *MediaUpload) APIResult[MediaAttachment]
	Get(ctx context.Context, mediaID string) APIResult[MediaAttachment]
	Update(ctx context.Context, mediaID string, update *MediaUpdate) APIResult[MediaAttachment]
}

// ListsClient manages curated account lists.
type ListsClient interface {
	List(ctx context.Context) APIResult[[]List]
	Get(ctx context.Context, listID string) APIResult[List]
	Create(ctx context.Context, title, repliesPolicy string) APIResult[List]
	Update(ctx context.Context, listID, title, repliesPolicy string) APIResult[List]
	Delete(ctx context.Context, listID string) APIResult[string]
	Accounts(ctx context.Context, listID string, params *QueryParams) APIPagedResult[Account]
	AddAccounts(ctx context.Context, listID string, accountIDs []string) APIResult[string]
	RemoveAccounts(ctx context.Context, listID string, accountIDs []string) APIResult[string]
}

// FavouritesClient lists the authenticated account's favourites.
type FavouritesClient interface {
	List(ctx context.Context, params *QueryParams) APIPagedResult[Status]
}

// BookmarksClient lists the authenticated account's bookmarks.
type BookmarksClient interface {
	List(ctx context.Context, params *QueryParams) APIPagedResult[Status]
}

// BlocksClient lists blocked accounts.
type BlocksClient interface {
	List(ctx context.Context, params *QueryParams) APIPagedResult[Account]
}

// MutesClient lists muted accounts.
type MutesClient interface {
	List(ctx context.Context, params *QueryParams) APIPagedResult[Account]
}

// DomainBlocksClient manages domain-level blocks. The listing is a paged
// array of bare domain strings.
type DomainBlocksClient interface {
	List(ctx context.Context, params *QueryParams) APIPagedResult[string]
	Block(ctx context.Context, domain string) APIResult[string]
	Unblock(ctx context.Context, domain string) APIResult[string]
}

// FollowRequestsClient reviews incoming follow requests.
type FollowRequestsClient interface {
	List(ctx context.Context, params *QueryParams) APIPagedResult[Account]
	Authorize(ctx context.Context, accountID string) APIResult[Relationship]
	Reject(ctx context.Context, accountID string) APIResult[Relationship]
}

// InstanceClient reads server metadata.
type InstanceClient interface {
	Get(ctx context.Context) APIResult[Instance]
	Peers(ctx context.Context) APIResult[[]string]
	Activity(ctx context.Context) APIResult[[]Activity]
}

// SearchClient queries the v2 search endpoint.
type SearchClient interface {
	Search(ctx context.Context, query string, params *QueryParams) APIResult[SearchResults]
}

// PollsClient reads and votes in polls.
type PollsClient interface {
	Get(ctx context.Context, pollID string) APIResult[Poll]
	Vote(ctx context.Context, pollID string, choices []int) APIResult[Poll]
}

// ReportsClient files moderation reports.
type ReportsClient interface {
	Create(ctx context.Context, report *ReportCreate) APIResult[Report]
}

// ConversationsClient manages direct-message threads.
type ConversationsClient interface {
	List(ctx context.Context, params *QueryParams) APIPagedResult[Conversation]
	Delete(ctx context.Context, conversationID string) APIResult[string]
	MarkRead(ctx context.Context, conversationID string) APIResult[Conversation]
}

// FiltersClient manages keyword filters.
type FiltersClient interface {
	List(ctx context.Context) APIResult[[]Filter]
	Get(ctx context.Context, filterID string) APIResult[Filter]
	Create(ctx context.Context, create *FilterCreate) APIResult[Filter]
	Update(ctx context.Context, filterID string, update *FilterCreate) APIResult[Filter]
	Delete(ctx context.Context, filterID string) APIResult[string]
}
