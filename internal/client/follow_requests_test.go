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

func TestFollowRequestsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/follow_requests", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)
		writeJSON(t, writer, http.StatusOK, []fedi.Account{testAccount()})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.FollowRequests().List(context.Background(), nil)

	require.True(t, result.IsSuccess())

	accounts, ok := result.Items()
	require.True(t, ok)
	assert.Len(t, accounts, 1)
}

func TestFollowRequestsClient_Authorize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/follow_requests/1/authorize", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		relationship := testRelationship("1")
		relationship.FollowedBy = true
		writeJSON(t, writer, http.StatusOK, relationship)
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.FollowRequests().Authorize(context.Background(), "1")

	require.True(t, result.IsSuccess())

	relationship, ok := result.Value()
	require.True(t, ok)
	assert.True(t, relationship.FollowedBy)
}

func TestFollowRequestsClient_Reject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/follow_requests/1/reject", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		relationship := testRelationship("1")
		relationship.Following = false
		relationship.ShowingReblogs = false
		writeJSON(t, writer, http.StatusOK, relationship)
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.FollowRequests().Reject(context.Background(), "1")

	require.True(t, result.IsSuccess())

	relationship, ok := result.Value()
	require.True(t, ok)
	assert.False(t, relationship.FollowedBy)
}
