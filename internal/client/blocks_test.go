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

func TestBlocksClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/blocks", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)
		writeJSON(t, writer, http.StatusOK, []fedi.Account{testAccount()})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Blocks().List(context.Background(), nil)

	require.True(t, result.IsSuccess())

	accounts, ok := result.Items()
	require.True(t, ok)
	require.Len(t, accounts, 1)
	assert.Equal(t, "gargron", accounts[0].Username)
}
