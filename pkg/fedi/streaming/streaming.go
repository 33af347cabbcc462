// Package streaming consumes the server-sent-events streaming API of
// Mastodon-compatible servers. Each stream method subscribes to one
// /api/v1/streaming endpoint and delivers decoded events on a channel until
// the context is cancelled or the subscription ends.
package streaming

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/r3labs/sse/v2"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// Static errors for err113 compliance.
var (
	ErrUnknownStreamEvent = errors.New("unknown stream event")
	ErrTagRequired        = errors.New("hashtag is required")
	ErrListIDRequired     = errors.New("list ID is required")
)

// EventType names a streaming event as the server sends it.
type EventType string

// Event types emitted by the streaming API.
const (
	EventUpdate         EventType = "update"
	EventNotification   EventType = "notification"
	EventDelete         EventType = "delete"
	EventFiltersChanged EventType = "filters_changed"
)

// Event is one decoded streaming event. Exactly one payload field is set,
// matching Type; Err reports a payload that could not be decoded or an event
// name this package does not know. The stream keeps running after an Err
// event.
type Event struct {
	Type EventType
	// Status is set for update events.
	Status *fedi.Status
	// Notification is set for notification events.
	Notification *fedi.Notification
	// StatusID is set for delete events.
	StatusID string
	Err      error
}

// Client subscribes to the streaming endpoints of one server.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      fedi.Logger
	bufferSize  int
}

// Option configures a streaming client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for the event-stream
// connection.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger enables logging of stream lifecycle and event records.
func WithLogger(logger fedi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBufferSize sets the event channel capacity.
func WithBufferSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.bufferSize = size
		}
	}
}

// NewClient creates a streaming client for the given server. The access token
// may be empty for streams the server exposes publicly.
func NewClient(server, accessToken string, opts ...Option) (*Client, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		return nil, fedi.ErrBaseURLRequired
	}

	if !strings.Contains(server, "://") {
		server = "https://" + server
	}

	client := &Client{
		baseURL:     strings.TrimSuffix(server, "/"),
		accessToken: accessToken,
		bufferSize:  constants.StreamBufferSize,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// User streams events for the authenticated account: home timeline updates
// and notifications.
func (c *Client) User(ctx context.Context) (<-chan Event, error) {
	return c.subscribe(ctx, "/user", nil)
}

// Public streams the federated public timeline.
func (c *Client) Public(ctx context.Context) (<-chan Event, error) {
	return c.subscribe(ctx, "/public", nil)
}

// PublicLocal streams the local public timeline.
func (c *Client) PublicLocal(ctx context.Context) (<-chan Event, error) {
	return c.subscribe(ctx, "/public/local", nil)
}

// Hashtag streams public statuses carrying the given hashtag, named without
// the leading #.
func (c *Client) Hashtag(ctx context.Context, tag string) (<-chan Event, error) {
	if tag == "" {
		return nil, ErrTagRequired
	}

	return c.subscribe(ctx, "/hashtag", url.Values{"tag": []string{tag}})
}

// List streams updates for the given list.
func (c *Client) List(ctx context.Context, listID string) (<-chan Event, error) {
	if listID == "" {
		return nil, ErrListIDRequired
	}

	return c.subscribe(ctx, "/list", url.Values{"list": []string{listID}})
}

// Direct streams direct messages for the authenticated account.
func (c *Client) Direct(ctx context.Context) (<-chan Event, error) {
	return c.subscribe(ctx, "/direct", nil)
}

func (c *Client) subscribe(ctx context.Context, stream string, params url.Values) (<-chan Event, error) {
	if params == nil {
		params = url.Values{}
	}

	// The streaming API authenticates via query parameter.
	if c.accessToken != "" {
		params.Set("access_token", c.accessToken)
	}

	streamURL := c.baseURL + constants.StreamingPath + stream
	if len(params) > 0 {
		streamURL += "?" + params.Encode()
	}

	sseClient := sse.NewClient(streamURL)
	sseClient.Headers = map[string]string{
		"Accept":        "text/event-stream",
		"Cache-Control": "no-cache",
	}

	if c.httpClient != nil {
		sseClient.Connection = c.httpClient
	}

	raw := make(chan *sse.Event, c.bufferSize)

	err := sseClient.SubscribeChanWithContext(ctx, "", raw)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to stream: %w", err)
	}

	c.logDebug("stream opened", map[string]interface{}{"url": streamURL})

	events := make(chan Event, c.bufferSize)
	go c.forward(ctx, sseClient, raw, events)

	return events, nil
}

// forward decodes raw frames until the context ends or the subscription
// closes, then closes the events channel.
func (c *Client) forward(ctx context.Context, sseClient *sse.Client, raw chan *sse.Event, events chan<- Event) {
	defer close(events)
	defer sseClient.Unsubscribe(raw)

	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-raw:
			if !ok {
				return
			}

			// Keepalive frames carry no event name.
			if frame == nil || len(frame.Event) == 0 {
				continue
			}

			event := decodeFrame(frame)
			if event.Err != nil {
				c.logDebug("stream event problem", map[string]interface{}{
					"type":  string(event.Type),
					"error": event.Err.Error(),
				})
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.logger == nil {
		return
	}

	c.logger.Debug(msg, fields)
}

func decodeFrame(frame *sse.Event) Event {
	switch EventType(frame.Event) {
	case EventUpdate:
		var status fedi.Status

		err := json.Unmarshal(frame.Data, &status)
		if err != nil {
			return Event{Type: EventUpdate, Err: fmt.Errorf("failed to decode update payload: %w", err)}
		}

		return Event{Type: EventUpdate, Status: &status}
	case EventNotification:
		var notification fedi.Notification

		err := json.Unmarshal(frame.Data, &notification)
		if err != nil {
			return Event{Type: EventNotification, Err: fmt.Errorf("failed to decode notification payload: %w", err)}
		}

		return Event{Type: EventNotification, Notification: &notification}
	case EventDelete:
		// The payload is the deleted status ID as plain text.
		return Event{Type: EventDelete, StatusID: strings.TrimSpace(string(frame.Data))}
	case EventFiltersChanged:
		return Event{Type: EventFiltersChanged}
	default:
		return Event{
			Type: EventType(frame.Event),
			Err:  fmt.Errorf("%w: %q", ErrUnknownStreamEvent, string(frame.Event)),
		}
	}
}
