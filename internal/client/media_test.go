package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

func TestMediaClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/media", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Contains(t, request.Header.Get("Content-Type"), "multipart/form-data")

		err := request.ParseMultipartForm(1 << 20)
		require.NoError(t, err)

		file, header, err := request.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake png bytes", string(content))
		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "A test photo", request.FormValue("description"))
		assert.Equal(t, "0.5,-0.5", request.FormValue("focus"))

		writeJSON(t, writer, http.StatusOK, fedi.MediaAttachment{
			ID:          "912",
			Type:        "image",
			URL:         "https://files.mastodon.example/media/912.png",
			Description: "A test photo",
		})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Media().Upload(context.Background(), &fedi.MediaUpload{
		File:        strings.NewReader("fake png bytes"),
		Filename:    "photo.png",
		Description: "A test photo",
		Focus:       "0.5,-0.5",
	})

	require.True(t, result.IsSuccess())

	attachment, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, "912", attachment.ID)
	assert.Equal(t, "image", attachment.Type)
}

func TestMediaClient_Upload_RequiresFile(t *testing.T) {
	client := NewTestClient(t, "https://mastodon.social")

	tests := []struct {
		name   string
		upload *fedi.MediaUpload
	}{
		{name: "nil upload", upload: nil},
		{name: "nil file", upload: &fedi.MediaUpload{Filename: "photo.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := client.Media().Upload(context.Background(), tt.upload)

			require.True(t, result.IsFailure())
			assert.ErrorIs(t, result.Cause(), ErrUploadFileRequired)
		})
	}
}

func TestMediaClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/media/912", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)
		writeJSON(t, writer, http.StatusOK, fedi.MediaAttachment{ID: "912", Type: "image"})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Media().Get(context.Background(), "912")

	require.True(t, result.IsSuccess())
}

func TestMediaClient_Get_StillProcessing(t *testing.T) {
	// A 206 means the attachment is still being processed. It lands in the
	// success range but carries no JSON body yet.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusPartialContent)
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Media().Get(context.Background(), "912")

	require.True(t, result.IsFailure())

	_, ok := result.RawBody()
	assert.True(t, ok)
}

func TestMediaClient_Update(t *testing.T) {
	description := "Updated alt text"

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/media/912", request.URL.Path)
		assert.Equal(t, http.MethodPut, request.Method)

		var update fedi.MediaUpdate
		err := json.NewDecoder(request.Body).Decode(&update)
		require.NoError(t, err)
		require.NotNil(t, update.Description)
		assert.Equal(t, description, *update.Description)
		assert.Nil(t, update.Focus)

		writeJSON(t, writer, http.StatusOK, fedi.MediaAttachment{ID: "912", Description: description})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Media().Update(context.Background(), "912", &fedi.MediaUpdate{Description: &description})

	require.True(t, result.IsSuccess())

	attachment, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, description, attachment.Description)
}
