package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fedikit-io/fedi-client/internal/constants"
	internalhttp "github.com/fedikit-io/fedi-client/internal/http"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// DomainBlocksClient implements fedi.DomainBlocksClient
type DomainBlocksClient struct {
	client *Client
}

// NewDomainBlocksClient creates a new domain blocks client
func NewDomainBlocksClient(client *Client) *DomainBlocksClient {
	return &DomainBlocksClient{client: client}
}

// List implements fedi.DomainBlocksClient.List
func (c *DomainBlocksClient) List(ctx context.Context, params *fedi.QueryParams) fedi.APIPagedResult[string] {
	return executePaged[string](ctx, c.client, constants.APIv1+"/domain_blocks", params.ToValues())
}

// Block implements fedi.DomainBlocksClient.Block
func (c *DomainBlocksClient) Block(ctx context.Context, domain string) fedi.APIResult[string] {
	return c.domainAction(ctx, http.MethodPost, domain)
}

// Unblock implements fedi.DomainBlocksClient.Unblock
func (c *DomainBlocksClient) Unblock(ctx context.Context, domain string) fedi.APIResult[string] {
	return c.domainAction(ctx, http.MethodDelete, domain)
}

// domainAction sends the domain as a form body, which the endpoint accepts
// for both the block and unblock verbs.
func (c *DomainBlocksClient) domainAction(ctx context.Context, method, domain string) fedi.APIResult[string] {
	values := url.Values{}
	values.Set("domain", domain)

	return executeRawRequest(ctx, c.client, &internalhttp.Request{
		Method:      method,
		Path:        constants.APIv1 + "/domain_blocks",
		Body:        values,
		ContentType: internalhttp.ContentTypeForm,
	})
}
