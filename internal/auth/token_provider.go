// Package auth supplies credential sources for the HTTP transport. Tokens
// are configured values, not managed flows: obtaining one is the caller's
// business, through the OAuth request builders or otherwise.
package auth

import (
	"context"
	"sync"
)

// TokenProvider yields the Authorization header value for outgoing requests.
// An empty value means the request goes out unauthenticated.
type TokenProvider interface {
	Authorization(ctx context.Context) (string, error)
}

// StaticTokenProvider holds a single bearer token. The header value is
// formatted once when the token is set, so request construction just copies
// it. Safe for concurrent use; SetToken takes effect for requests that begin
// after it returns.
type StaticTokenProvider struct {
	mutex  sync.RWMutex
	token  string
	header string
}

// NewStaticTokenProvider creates a provider for the given token. An empty
// token leaves the provider unauthenticated until SetToken is called.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	provider := &StaticTokenProvider{}
	provider.SetToken(token)

	return provider
}

// Authorization implements TokenProvider.
func (p *StaticTokenProvider) Authorization(_ context.Context) (string, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.header, nil
}

// SetToken replaces the stored token. An empty token clears the credential.
func (p *StaticTokenProvider) SetToken(token string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.token = token
	if token == "" {
		p.header = ""
	} else {
		p.header = "Bearer " + token
	}
}

// Token returns the raw token as last set.
func (p *StaticTokenProvider) Token() string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.token
}
