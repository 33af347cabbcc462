package client

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

// NewTestClient creates a client wired to a test server.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&fedi.Config{BaseURL: baseURL})
	require.NoError(t, err)

	return client
}

// NewTestClientWithToken creates an authenticated client wired to a test
// server.
func NewTestClientWithToken(t *testing.T, baseURL, token string) *Client {
	t.Helper()

	client, err := New(&fedi.Config{BaseURL: baseURL, AccessToken: token})
	require.NoError(t, err)

	return client
}

// writeJSON writes a JSON response body under the given status.
func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	err := json.NewEncoder(writer).Encode(body)
	require.NoError(t, err)
}

// testAccount returns a minimal account fixture.
func testAccount() fedi.Account {
	return fedi.Account{
		ID:          "1",
		Username:    "gargron",
		Acct:        "gargron",
		DisplayName: "Eugen",
		URL:         "https://mastodon.social/@gargron",
		CreatedAt:   time.Date(2016, time.March, 16, 0, 0, 0, 0, time.UTC),
	}
}

// testStatus returns a minimal status fixture.
func testStatus(id string) fedi.Status {
	return fedi.Status{
		ID:         id,
		URI:        "https://mastodon.social/users/gargron/statuses/" + id,
		Content:    "<p>Hello fediverse</p>",
		Account:    testAccount(),
		Visibility: fedi.VisibilityPublic,
		CreatedAt:  time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
}

// testRelationship returns a relationship fixture for a followed account.
func testRelationship(accountID string) fedi.Relationship {
	return fedi.Relationship{
		ID:             accountID,
		Following:      true,
		ShowingReblogs: true,
	}
}

// apiError builds the error body servers send on rejected requests.
func apiError(message string) map[string]interface{} {
	return map[string]interface{}{"error": message}
}
