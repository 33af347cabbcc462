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

func TestAppsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/apps", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var registration fedi.AppRegistration
		err := json.NewDecoder(request.Body).Decode(&registration)
		require.NoError(t, err)
		assert.Equal(t, "fedi-cli", registration.ClientName)
		assert.Equal(t, fedi.RedirectURIOutOfBand, registration.RedirectURIs)

		writeJSON(t, writer, http.StatusOK, fedi.Application{
			ID:           "5",
			Name:         registration.ClientName,
			ClientID:     "client-id-value",
			ClientSecret: "client-secret-value",
		})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)
	result := client.Apps().Create(context.Background(), &fedi.AppRegistration{
		ClientName:   "fedi-cli",
		RedirectURIs: fedi.RedirectURIOutOfBand,
		Scopes:       "read write follow",
	})

	require.True(t, result.IsSuccess())

	app, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, "client-id-value", app.ClientID)
	assert.Equal(t, "client-secret-value", app.ClientSecret)
}

func TestAppsClient_VerifyCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/apps/verify_credentials", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)
		writeJSON(t, writer, http.StatusOK, fedi.Application{Name: "fedi-cli", VapidKey: "vapid"})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "app-token")
	result := client.Apps().VerifyCredentials(context.Background())

	require.True(t, result.IsSuccess())

	app, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, "fedi-cli", app.Name)
}
