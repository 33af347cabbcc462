package client

import (
	"context"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// ReportsClient implements fedi.ReportsClient
type ReportsClient struct {
	client *Client
}

// NewReportsClient creates a new reports client
func NewReportsClient(client *Client) *ReportsClient {
	return &ReportsClient{client: client}
}

// Create implements fedi.ReportsClient.Create
func (c *ReportsClient) Create(ctx context.Context, report *fedi.ReportCreate) fedi.APIResult[fedi.Report] {
	return execute[fedi.Report](ctx, c.client, http.MethodPost, constants.APIv1+"/reports", nil, report)
}
