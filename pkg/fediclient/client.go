// Package fediclient provides the main entry point for creating fediverse API clients
package fediclient

import (
	"fmt"

	"github.com/fedikit-io/fedi-client/internal/client"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// New creates a new client for a Mastodon-compatible server. Construction is
// purely local: the server is not contacted until the first call.
func New(config *fedi.Config) (fedi.Client, error) {
	fediClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return fediClient, nil
}

// NewWithServer creates an unauthenticated client for the given server.
// Public endpoints such as instance info and public timelines work without
// a token.
func NewWithServer(server string) (fedi.Client, error) {
	return New(&fedi.Config{
		BaseURL: server,
	})
}

// NewWithToken creates a client that authenticates with the given access
// token.
func NewWithToken(server, token string) (fedi.Client, error) {
	return New(&fedi.Config{
		BaseURL:     server,
		AccessToken: token,
	})
}
