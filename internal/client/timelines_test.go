package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

func TestTimelinesClient_Endpoints(t *testing.T) {
	tests := []struct {
		name     string
		timeline func(ctx context.Context, client *Client) fedi.APIPagedResult[fedi.Status]
		path     string
	}{
		{
			name: "home",
			timeline: func(ctx context.Context, client *Client) fedi.APIPagedResult[fedi.Status] {
				return client.Timelines().Home(ctx, nil)
			},
			path: "/api/v1/timelines/home",
		},
		{
			name: "public",
			timeline: func(ctx context.Context, client *Client) fedi.APIPagedResult[fedi.Status] {
				return client.Timelines().Public(ctx, nil)
			},
			path: "/api/v1/timelines/public",
		},
		{
			name: "tag",
			timeline: func(ctx context.Context, client *Client) fedi.APIPagedResult[fedi.Status] {
				return client.Timelines().Tag(ctx, "golang", nil)
			},
			path: "/api/v1/timelines/tag/golang",
		},
		{
			name: "list",
			timeline: func(ctx context.Context, client *Client) fedi.APIPagedResult[fedi.Status] {
				return client.Timelines().List(ctx, "8", nil)
			},
			path: "/api/v1/timelines/list/8",
		},
		{
			name: "direct",
			timeline: func(ctx context.Context, client *Client) fedi.APIPagedResult[fedi.Status] {
				return client.Timelines().Direct(ctx, nil)
			},
			path: "/api/v1/timelines/direct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, tt.path, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				writeJSON(t, writer, http.StatusOK, []fedi.Status{testStatus("1"), testStatus("2")})
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)
			result := tt.timeline(context.Background(), client)

			require.True(t, result.IsSuccess())

			items, ok := result.Items()
			require.True(t, ok)
			assert.Len(t, items, 2)
		})
	}
}

func TestTimelinesClient_Public_LocalOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "true", request.URL.Query().Get("local"))
		assert.Equal(t, "40", request.URL.Query().Get("limit"))
		writeJSON(t, writer, http.StatusOK, []fedi.Status{testStatus("1")})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	params := fedi.NewQueryParams().WithLocal(true).WithLimit(40)
	result := client.Timelines().Public(context.Background(), params)

	require.True(t, result.IsSuccess())
}

func TestTimelinesClient_Tag_EscapesHashtag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// EscapedPath preserves the encoding the client put on the wire.
		assert.Equal(t, "/api/v1/timelines/tag/caf%C3%A9", request.URL.EscapedPath())
		writeJSON(t, writer, http.StatusOK, []fedi.Status{})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	result := client.Timelines().Tag(context.Background(), "café", nil)

	require.True(t, result.IsSuccess())
}

func TestTimelinesClient_Home_PagesBackwards(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "7489740", request.URL.Query().Get("since_id"))
		writer.Header().Set("Link", `<https://mastodon.example/api/v1/timelines/home?since_id=7490000>; rel="prev"`)
		writeJSON(t, writer, http.StatusOK, []fedi.Status{testStatus("7489999")})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	params := fedi.NewQueryParams().WithCursor(&fedi.PageCursor{Since: "7489740"})
	result := client.Timelines().Home(context.Background(), params)

	require.True(t, result.IsSuccess())
	assert.Nil(t, result.NextPage())
	require.NotNil(t, result.PreviousPage())
	assert.Equal(t, "7490000", result.PreviousPage().Since)
}
