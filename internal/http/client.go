// Package http implements the transport the resource clients send requests
// through. It owns URL assembly, body encoding, and standard headers. It does
// not classify response statuses: any response the server produced comes back
// as a *Response with a nil error, and the error return is reserved for
// requests that never completed, so the dispatch layer above can sort
// outcomes without guessing which layer already interpreted them.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fedikit-io/fedi-client/internal/auth"
	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// Content types the transport knows how to encode.
const (
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Static errors for err113 compliance.
var (
	ErrFormBodyType = errors.New("form body must be url.Values")
	ErrRawBodyType  = errors.New("raw body must be io.Reader or []byte")
)

// Request describes one HTTP request to the configured server.
type Request struct {
	Method string
	// Path is appended to the client's base URL, e.g. "/api/v1/instance".
	Path  string
	Query url.Values
	// Body is encoded according to ContentType: JSON by default, url.Values
	// for form posts, and io.Reader/[]byte passthrough for anything else.
	Body        interface{}
	Headers     map[string]string
	ContentType string
}

// Response is a received HTTP response, whatever its status code.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends requests to one server.
type Client struct {
	mutex         sync.RWMutex
	baseURL       string
	httpClient    *http.Client
	tokenProvider auth.TokenProvider
	logger        fedi.Logger
	userAgent     string
	debug         bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout on the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug logging.
func WithLogger(logger fedi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a transport for the given base URL. tokenProvider may be
// nil for unauthenticated use.
func NewClient(baseURL string, tokenProvider auth.TokenProvider, opts ...Option) *Client {
	client := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		httpClient:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		tokenProvider: tokenProvider,
		userAgent:     constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the server the client currently targets.
func (c *Client) BaseURL() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.baseURL
}

// SetBaseURL retargets the client. Requests that begin after it returns go to
// the new server.
func (c *Client) SetBaseURL(baseURL string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// Do sends one request. The error return is reserved for requests that never
// produced a response: connection faults, context cancellation, body
// encoding problems. Responses with non-2xx statuses come back as a normal
// *Response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req)

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq, req, contentType)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// PostForm issues a POST request with a form-encoded body, the encoding the
// OAuth endpoints require.
func (c *Client) PostForm(ctx context.Context, path string, values url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        values,
		ContentType: ContentTypeForm,
	})
}

// PostRaw issues a POST request with a pre-encoded body, used for multipart
// uploads where the caller built the payload and its boundary already.
func (c *Client) PostRaw(ctx context.Context, path, contentType string, body io.Reader) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        body,
		ContentType: contentType,
	})
}

func (c *Client) buildURL(req *Request) string {
	fullURL := c.BaseURL() + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	return fullURL
}

func (c *Client) setHeaders(ctx context.Context, httpReq *http.Request, req *Request, contentType string) error {
	httpReq.Header.Set("Accept", ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.tokenProvider != nil {
		authorization, err := c.tokenProvider.Authorization(ctx)
		if err != nil {
			return fmt.Errorf("failed to get authorization: %w", err)
		}

		if authorization != "" {
			httpReq.Header.Set("Authorization", authorization)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return nil
}

// encodeBody turns the request's Body into a reader plus the Content-Type to
// send it under. A nil body yields a nil reader and no Content-Type.
func encodeBody(req *Request) (io.Reader, string, error) {
	if req.Body == nil {
		return nil, "", nil
	}

	switch req.ContentType {
	case "", ContentTypeJSON:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode request body: %w", err)
		}

		return bytes.NewReader(data), ContentTypeJSON, nil
	case ContentTypeForm:
		values, ok := req.Body.(url.Values)
		if !ok {
			return nil, "", ErrFormBodyType
		}

		return strings.NewReader(values.Encode()), ContentTypeForm, nil
	default:
		switch body := req.Body.(type) {
		case io.Reader:
			return body, req.ContentType, nil
		case []byte:
			return bytes.NewReader(body), req.ContentType, nil
		default:
			return nil, "", ErrRawBodyType
		}
	}
}
