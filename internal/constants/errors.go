package constants

import "errors"

// Server configuration errors.
var (
	ErrNoServerConfigured  = errors.New("no server configured, use 'fedi servers add' to add one")
	ErrServerNotFound      = errors.New("server not found in configuration")
	ErrServerExists        = errors.New("server already configured")
	ErrCannotRemoveCurrent = errors.New("cannot remove the current server, switch to another one first")
	ErrNotLoggedIn         = errors.New("not logged in, use 'fedi auth login' to authenticate")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
)

// Output errors.
var (
	ErrUnknownOutputFormat = errors.New("unknown output format, expected table, json, or yaml")
)

// Validation errors.
var (
	ErrStatusTextRequired  = errors.New("status text is required")
	ErrFileRequired        = errors.New("file path is required")
	ErrAccountNotFound     = errors.New("account not found")
	ErrStatusNotFound      = errors.New("status not found")
	ErrListTitleRequired   = errors.New("list title is required")
	ErrSearchQueryRequired = errors.New("search query is required")
	ErrInvalidVisibility   = errors.New("visibility must be public, unlisted, private, or direct")
	ErrInvalidStreamName   = errors.New("stream must be user, public, public:local, hashtag, list, or direct")
	ErrHashtagRequired     = errors.New("--tag flag is required for the hashtag stream")
	ErrListIDRequired      = errors.New("--list flag is required for the list stream")
)
