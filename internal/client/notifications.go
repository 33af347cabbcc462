package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// NotificationsClient implements fedi.NotificationsClient
type NotificationsClient struct {
	client *Client
}

// NewNotificationsClient creates a new notifications client
func NewNotificationsClient(client *Client) *NotificationsClient {
	return &NotificationsClient{client: client}
}

// List implements fedi.NotificationsClient.List
func (c *NotificationsClient) List(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Notification] {
	return executePaged[fedi.Notification](ctx, c.client, constants.APIv1+"/notifications", params.ToValues())
}

// Get implements fedi.NotificationsClient.Get
func (c *NotificationsClient) Get(ctx context.Context, notificationID string) fedi.APIResult[fedi.Notification] {
	path := fmt.Sprintf("%s/notifications/%s", constants.APIv1, notificationID)

	return execute[fedi.Notification](ctx, c.client, http.MethodGet, path, nil, nil)
}

// Clear implements fedi.NotificationsClient.Clear
func (c *NotificationsClient) Clear(ctx context.Context) fedi.APIResult[string] {
	return executeRaw(ctx, c.client, http.MethodPost, constants.APIv1+"/notifications/clear", nil, nil)
}

// Dismiss implements fedi.NotificationsClient.Dismiss
func (c *NotificationsClient) Dismiss(ctx context.Context, notificationID string) fedi.APIResult[string] {
	path := fmt.Sprintf("%s/notifications/%s/dismiss", constants.APIv1, notificationID)

	return executeRaw(ctx, c.client, http.MethodPost, path, nil, nil)
}
