package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/fedikit-io/fedi-client/internal/constants"
	internalhttp "github.com/fedikit-io/fedi-client/internal/http"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// Static errors for err113 compliance.
var (
	ErrUploadFileRequired = errors.New("upload file required")
)

// MediaClient implements fedi.MediaClient
type MediaClient struct {
	client *Client
}

// NewMediaClient creates a new media client
func NewMediaClient(client *Client) *MediaClient {
	return &MediaClient{client: client}
}

// Upload implements fedi.MediaClient.Upload
func (c *MediaClient) Upload(ctx context.Context, upload *fedi.MediaUpload) fedi.APIResult[fedi.MediaAttachment] {
	body, contentType, err := encodeMediaUpload(upload)
	if err != nil {
		return fedi.NewFailure[fedi.MediaAttachment, fedi.APIError](err, nil)
	}

	return executeRequest[fedi.MediaAttachment](ctx, c.client, &internalhttp.Request{
		Method:      http.MethodPost,
		Path:        constants.APIv1 + "/media",
		Body:        body,
		ContentType: contentType,
	})
}

// Get implements fedi.MediaClient.Get
func (c *MediaClient) Get(ctx context.Context, mediaID string) fedi.APIResult[fedi.MediaAttachment] {
	path := fmt.Sprintf("%s/media/%s", constants.APIv1, mediaID)

	return execute[fedi.MediaAttachment](ctx, c.client, http.MethodGet, path, nil, nil)
}

// Update implements fedi.MediaClient.Update
func (c *MediaClient) Update(ctx context.Context, mediaID string, update *fedi.MediaUpdate) fedi.APIResult[fedi.MediaAttachment] {
	path := fmt.Sprintf("%s/media/%s", constants.APIv1, mediaID)

	return execute[fedi.MediaAttachment](ctx, c.client, http.MethodPut, path, nil, update)
}

// encodeMediaUpload builds the multipart form body for an upload. The file
// reader is consumed to the end.
func encodeMediaUpload(upload *fedi.MediaUpload) ([]byte, string, error) {
	if upload == nil || upload.File == nil {
		return nil, "", ErrUploadFileRequired
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", upload.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}

	_, err = io.Copy(part, upload.File)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload file: %w", err)
	}

	if upload.Description != "" {
		err = writer.WriteField("description", upload.Description)
		if err != nil {
			return nil, "", fmt.Errorf("failed to write description field: %w", err)
		}
	}

	if upload.Focus != "" {
		err = writer.WriteField("focus", upload.Focus)
		if err != nil {
			return nil, "", fmt.Errorf("failed to write focus field: %w", err)
		}
	}

	err = writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
