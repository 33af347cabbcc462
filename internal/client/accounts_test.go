package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

func TestAccountsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/accounts/1", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)
		writeJSON(t, writer, http.StatusOK, testAccount())
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	result := client.Accounts().Get(context.Background(), "1")

	require.True(t, result.IsSuccess())

	account, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, "gargron", account.Acct)
}

func TestAccountsClient_VerifyCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/accounts/verify_credentials", request.URL.Path)

		account := testAccount()
		account.Source = &fedi.Source{Privacy: "public", Language: "en"}
		writeJSON(t, writer, http.StatusOK, account)
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Accounts().VerifyCredentials(context.Background())

	require.True(t, result.IsSuccess())

	account, ok := result.Value()
	require.True(t, ok)
	require.NotNil(t, account.Source)
	assert.Equal(t, "public", account.Source.Privacy)
}

func TestAccountsClient_UpdateCredentials(t *testing.T) {
	displayName := "Eugen (he/him)"
	privacy := "unlisted"
	sensitive := true

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/accounts/update_credentials", request.URL.Path)
		assert.Equal(t, http.MethodPatch, request.Method)

		var body map[string]interface{}
		err := json.NewDecoder(request.Body).Decode(&body)
		require.NoError(t, err)

		assert.Equal(t, displayName, body["display_name"])

		// The posting defaults travel nested under "source".
		source, ok := body["source"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, privacy, source["privacy"])
		assert.Equal(t, sensitive, source["sensitive"])
		_, hasLanguage := source["language"]
		assert.False(t, hasLanguage)

		account := testAccount()
		account.DisplayName = displayName
		writeJSON(t, writer, http.StatusOK, account)
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Accounts().UpdateCredentials(context.Background(), &fedi.AccountUpdate{
		DisplayName:     &displayName,
		SourcePrivacy:   &privacy,
		SourceSensitive: &sensitive,
	})

	require.True(t, result.IsSuccess())

	account, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, displayName, account.DisplayName)
}

func TestAccountsClient_UpdateCredentials_NoSourceFields(t *testing.T) {
	note := "New bio"

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var body map[string]interface{}
		err := json.NewDecoder(request.Body).Decode(&body)
		require.NoError(t, err)

		assert.Equal(t, note, body["note"])
		_, hasSource := body["source"]
		assert.False(t, hasSource)

		writeJSON(t, writer, http.StatusOK, testAccount())
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Accounts().UpdateCredentials(context.Background(), &fedi.AccountUpdate{Note: &note})

	require.True(t, result.IsSuccess())
}

func TestAccountsClient_Preferences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/preferences", request.URL.Path)
		writeJSON(t, writer, http.StatusOK, map[string]interface{}{
			"posting:default:visibility": "unlisted",
			"posting:default:sensitive":  false,
			"reading:expand:spoilers":    true,
		})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Accounts().Preferences(context.Background())

	require.True(t, result.IsSuccess())

	preferences, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, fedi.VisibilityUnlisted, preferences.PostingVisibility)
	assert.True(t, preferences.ReadingExpandSpoilers)
}

func TestAccountsClient_Followers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/accounts/1/followers", request.URL.Path)
		assert.Equal(t, "40", request.URL.Query().Get("limit"))

		writer.Header().Set("Link", `<https://mastodon.example/api/v1/accounts/1/followers?max_id=7486869>; rel="next"`)
		writeJSON(t, writer, http.StatusOK, []fedi.Account{testAccount()})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	result := client.Accounts().Followers(context.Background(), "1", fedi.NewQueryParams().WithLimit(40))

	require.True(t, result.IsSuccess())

	items, ok := result.Items()
	require.True(t, ok)
	assert.Len(t, items, 1)

	next := result.NextPage()
	require.NotNil(t, next)
	assert.Equal(t, "7486869", next.Max)
	assert.Nil(t, result.PreviousPage())
}

func TestAccountsClient_Statuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/accounts/1/statuses", request.URL.Path)
		assert.Equal(t, "true", request.URL.Query().Get("exclude_replies"))
		writeJSON(t, writer, http.StatusOK, []fedi.Status{testStatus("9")})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	params := fedi.NewQueryParams().WithExcludeReplies(true)
	result := client.Accounts().Statuses(context.Background(), "1", params)

	require.True(t, result.IsSuccess())

	items, ok := result.Items()
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "9", items[0].ID)
}

func TestAccountsClient_Relationships(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/accounts/relationships", request.URL.Path)
		assert.Equal(t, []string{"1", "2"}, request.URL.Query()["id[]"])

		writeJSON(t, writer, http.StatusOK, []fedi.Relationship{
			testRelationship("1"),
			testRelationship("2"),
		})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Accounts().Relationships(context.Background(), []string{"1", "2"})

	require.True(t, result.IsSuccess())

	relationships, ok := result.Value()
	require.True(t, ok)
	require.Len(t, relationships, 2)
	assert.True(t, relationships[0].Following)
}

func TestAccountsClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/accounts/search", request.URL.Path)
		assert.Equal(t, "eugen", request.URL.Query().Get("q"))
		assert.Equal(t, "5", request.URL.Query().Get("limit"))
		writeJSON(t, writer, http.StatusOK, []fedi.Account{testAccount()})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	result := client.Accounts().Search(context.Background(), "eugen", fedi.NewQueryParams().WithLimit(5))

	require.True(t, result.IsSuccess())

	accounts, ok := result.Value()
	require.True(t, ok)
	assert.Len(t, accounts, 1)
}

func TestAccountsClient_RelationshipActions(t *testing.T) {
	tests := []struct {
		name   string
		action func(ctx context.Context, client *Client) fedi.APIResult[fedi.Relationship]
		path   string
	}{
		{
			name: "follow",
			action: func(ctx context.Context, client *Client) fedi.APIResult[fedi.Relationship] {
				return client.Accounts().Follow(ctx, "42")
			},
			path: "/api/v1/accounts/42/follow",
		},
		{
			name: "unfollow",
			action: func(ctx context.Context, client *Client) fedi.APIResult[fedi.Relationship] {
				return client.Accounts().Unfollow(ctx, "42")
			},
			path: "/api/v1/accounts/42/unfollow",
		},
		{
			name: "block",
			action: func(ctx context.Context, client *Client) fedi.APIResult[fedi.Relationship] {
				return client.Accounts().Block(ctx, "42")
			},
			path: "/api/v1/accounts/42/block",
		},
		{
			name: "unblock",
			action: func(ctx context.Context, client *Client) fedi.APIResult[fedi.Relationship] {
				return client.Accounts().Unblock(ctx, "42")
			},
			path: "/api/v1/accounts/42/unblock",
		},
		{
			name: "mute",
			action: func(ctx context.Context, client *Client) fedi.APIResult[fedi.Relationship] {
				return client.Accounts().Mute(ctx, "42")
			},
			path: "/api/v1/accounts/42/mute",
		},
		{
			name: "unmute",
			action: func(ctx context.Context, client *Client) fedi.APIResult[fedi.Relationship] {
				return client.Accounts().Unmute(ctx, "42")
			},
			path: "/api/v1/accounts/42/unmute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, tt.path, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)
				writeJSON(t, writer, http.StatusOK, testRelationship("42"))
			}))
			defer server.Close()

			client := NewTestClientWithToken(t, server.URL, "user-token")
			result := tt.action(context.Background(), client)

			require.True(t, result.IsSuccess())

			relationship, ok := result.Value()
			require.True(t, ok)
			assert.Equal(t, "42", relationship.ID)
		})
	}
}

func TestAccountsClient_Lists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/accounts/7/lists", request.URL.Path)
		writeJSON(t, writer, http.StatusOK, []fedi.List{{ID: "3", Title: "Friends"}})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Accounts().Lists(context.Background(), "7")

	require.True(t, result.IsSuccess())

	lists, ok := result.Value()
	require.True(t, ok)
	require.Len(t, lists, 1)
	assert.Equal(t, "Friends", lists[0].Title)
}

func TestAccountsClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, http.StatusNotFound, apiError("Record not found"))
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	result := client.Accounts().Get(context.Background(), "999")

	require.True(t, result.IsError())
	assert.True(t, fedi.IsNotFound(result.Err()))
	assert.Contains(t, result.Err().Error(), "Record not found")
}
