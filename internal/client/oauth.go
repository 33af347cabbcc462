package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/fedikit-io/fedi-client/internal/constants"
	internalhttp "github.com/fedikit-io/fedi-client/internal/http"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// Static errors for err113 compliance.
var (
	ErrAuthorizeRequestRequired = errors.New("authorize request required")
	ErrClientIDRequired         = errors.New("client ID required")
)

// OAuthClient implements fedi.OAuthClient
type OAuthClient struct {
	client *Client
}

// NewOAuthClient creates a new OAuth client
func NewOAuthClient(client *Client) *OAuthClient {
	return &OAuthClient{client: client}
}

// Token implements fedi.OAuthClient.Token
func (c *OAuthClient) Token(ctx context.Context, request *fedi.TokenRequest) fedi.APIResult[fedi.Token] {
	return executeRequest[fedi.Token](ctx, c.client, &internalhttp.Request{
		Method:      http.MethodPost,
		Path:        constants.OAuthTokenPath,
		Body:        tokenRequestValues(request),
		ContentType: internalhttp.ContentTypeForm,
	})
}

// Revoke implements fedi.OAuthClient.Revoke
func (c *OAuthClient) Revoke(ctx context.Context, clientID, clientSecret, token string) fedi.APIResult[string] {
	values := url.Values{}
	values.Set("client_id", clientID)
	values.Set("client_secret", clientSecret)
	values.Set("token", token)

	return executeRawRequest(ctx, c.client, &internalhttp.Request{
		Method:      http.MethodPost,
		Path:        constants.OAuthRevokePath,
		Body:        values,
		ContentType: internalhttp.ContentTypeForm,
	})
}

// AuthorizeURL implements fedi.OAuthClient.AuthorizeURL
func (c *OAuthClient) AuthorizeURL(request *fedi.AuthorizeRequest) (string, error) {
	if request == nil {
		return "", ErrAuthorizeRequestRequired
	}

	if request.ClientID == "" {
		return "", ErrClientIDRequired
	}

	state := request.State
	if state == "" {
		state = uuid.New().String()
	}

	values := url.Values{}
	values.Set("response_type", "code")
	values.Set("client_id", request.ClientID)
	values.Set("redirect_uri", request.RedirectURI)
	values.Set("state", state)

	if request.Scope != "" {
		values.Set("scope", request.Scope)
	}

	if request.ForceLogin {
		values.Set("force_login", strconv.FormatBool(request.ForceLogin))
	}

	return c.client.BaseURL() + constants.OAuthAuthorizePath + "?" + values.Encode(), nil
}

// tokenRequestValues form-encodes a token request, writing only the fields
// the chosen grant type filled in.
func tokenRequestValues(request *fedi.TokenRequest) url.Values {
	values := url.Values{}
	if request == nil {
		return values
	}

	values.Set("grant_type", request.GrantType)
	values.Set("client_id", request.ClientID)
	values.Set("client_secret", request.ClientSecret)

	if request.RedirectURI != "" {
		values.Set("redirect_uri", request.RedirectURI)
	}

	if request.Code != "" {
		values.Set("code", request.Code)
	}

	if request.Username != "" {
		values.Set("username", request.Username)
	}

	if request.Password != "" {
		values.Set("password", request.Password)
	}

	if request.Scope != "" {
		values.Set("scope", request.Scope)
	}

	return values
}
