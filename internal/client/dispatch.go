package client

import (
	"context"
	"net/http"
	"net/url"

	internalhttp "github.com/fedikit-io/fedi-client/internal/http"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// send runs one request through the interceptor chain and the transport. The
// returned response is the interceptors' view of the exchange. A non-nil
// error means no classifiable response exists: a transport fault, or an
// interceptor that refused the exchange.
func (c *Client) send(ctx context.Context, req *internalhttp.Request) (*fedi.Response, error) {
	interceptorReq := &fedi.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: make(http.Header),
	}

	for key, value := range req.Headers {
		interceptorReq.Headers.Set(key, value)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptorReq)
	if err != nil {
		return nil, err
	}

	// Interceptors may add or rewrite headers. Transport headers are
	// single-valued, so only the first value of each key survives.
	for key := range interceptorReq.Headers {
		if req.Headers == nil {
			req.Headers = make(map[string]string)
		}

		req.Headers[key] = interceptorReq.Headers.Get(key)
	}

	resp, transportErr := c.httpClient.Do(ctx, req)

	interceptorResp := &fedi.Response{Error: transportErr}
	if resp != nil {
		interceptorResp.StatusCode = resp.StatusCode
		interceptorResp.Headers = resp.Headers
		interceptorResp.Body = resp.Body
	}

	// Response interceptors observe faults too, so metrics and logging see
	// every exchange.
	err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptorReq, interceptorResp)
	if err != nil {
		return nil, err
	}

	if transportErr != nil {
		return nil, transportErr
	}

	return interceptorResp, nil
}

// isSuccessStatus reports whether a status code counts as a success from the
// caller's point of view.
func isSuccessStatus(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// isEmptyStatus reports whether a status code means "nothing here": 204 for
// acknowledged operations without content, 410 for resources that are gone.
// Both are outcomes, not errors.
func isEmptyStatus(status int) bool {
	return status == http.StatusNoContent || status == http.StatusGone
}

// decodeErrorPayload decodes a non-2xx body into the error payload type. A
// body that does not decode yields nil: the status alone still tells the
// caller the request was rejected. Payload types that accept an HTTP status
// get the response code recorded on them.
func decodeErrorPayload[E any](c *Client, resp *fedi.Response) *E {
	var payload E

	err := c.codec.Decode(resp.Body, &payload)
	if err != nil {
		return nil
	}

	if setter, ok := any(&payload).(fedi.HTTPStatusSetter); ok {
		setter.SetHTTPStatus(resp.StatusCode)
	}

	return &payload
}

// executeResult sends a request and classifies the exchange into a Result.
//
// Transport faults become Failure with no body. Empty statuses become Empty.
// A success status decodes into T; a body that will not decode becomes
// Failure carrying the cause and the raw body, never Error, because the
// server accepted the request. Any other status decodes the error payload.
func executeResult[T, E any](ctx context.Context, c *Client, req *internalhttp.Request) fedi.Result[T, E] {
	resp, err := c.send(ctx, req)
	if err != nil {
		return fedi.NewFailure[T, E](err, nil)
	}

	if isEmptyStatus(resp.StatusCode) {
		return fedi.NewEmpty[T, E]()
	}

	if isSuccessStatus(resp.StatusCode) {
		var value T

		err = c.codec.Decode(resp.Body, &value)
		if err != nil {
			rawBody := string(resp.Body)

			return fedi.NewFailure[T, E](err, &rawBody)
		}

		return fedi.NewSuccess[T, E](value)
	}

	return fedi.NewError[T, E](decodeErrorPayload[E](c, resp))
}

// executePagedResult is executeResult for list endpoints: the success branch
// decodes a slice and asks the page extractor for the cursors neighbouring
// this page.
func executePagedResult[T, E any](ctx context.Context, c *Client, req *internalhttp.Request) fedi.PagedResult[T, E] {
	resp, err := c.send(ctx, req)
	if err != nil {
		return fedi.NewPagedFailure[T, E](err, nil)
	}

	if isEmptyStatus(resp.StatusCode) {
		return fedi.NewPagedEmpty[T, E]()
	}

	if isSuccessStatus(resp.StatusCode) {
		var items []T

		err = c.codec.Decode(resp.Body, &items)
		if err != nil {
			rawBody := string(resp.Body)

			return fedi.NewPagedFailure[T, E](err, &rawBody)
		}

		next, previous := c.extractor.PageInfo(resp)

		return fedi.NewPagedSuccess[T, E](items, next, previous)
	}

	return fedi.NewPagedError[T, E](decodeErrorPayload[E](c, resp))
}

// executeRawResult classifies an exchange whose success body is wanted
// verbatim. The body is never decoded on success, so "{}" comes back as the
// two characters "{}". Empty statuses still win over the raw branch.
func executeRawResult[E any](ctx context.Context, c *Client, req *internalhttp.Request) fedi.Result[string, E] {
	resp, err := c.send(ctx, req)
	if err != nil {
		return fedi.NewFailure[string, E](err, nil)
	}

	if isEmptyStatus(resp.StatusCode) {
		return fedi.NewEmpty[string, E]()
	}

	if isSuccessStatus(resp.StatusCode) {
		return fedi.NewSuccess[string, E](string(resp.Body))
	}

	return fedi.NewError[string, E](decodeErrorPayload[E](c, resp))
}

// execute dispatches a request described by its parts.
func execute[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) fedi.APIResult[T] {
	return executeRequest[T](ctx, c, &internalhttp.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
}

// executeRequest dispatches a fully built request, for call sites that need
// headers or a content type beyond JSON.
func executeRequest[T any](ctx context.Context, c *Client, req *internalhttp.Request) fedi.APIResult[T] {
	return executeResult[T, fedi.APIError](ctx, c, req)
}

// executePaged dispatches a GET for a page of results.
func executePaged[T any](ctx context.Context, c *Client, path string, query url.Values) fedi.APIPagedResult[T] {
	return executePagedResult[T, fedi.APIError](ctx, c, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// executeRaw dispatches a request whose success body is returned verbatim.
func executeRaw(ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) fedi.APIResult[string] {
	return executeRawRequest(ctx, c, &internalhttp.Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	})
}

// executeRawRequest is executeRaw for fully built requests.
func executeRawRequest(ctx context.Context, c *Client, req *internalhttp.Request) fedi.APIResult[string] {
	return executeRawResult[fedi.APIError](ctx, c, req)
}
