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

func TestReportsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/reports", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var report fedi.ReportCreate
		err := json.NewDecoder(request.Body).Decode(&report)
		require.NoError(t, err)
		assert.Equal(t, "1", report.AccountID)
		assert.Equal(t, []string{"103206"}, report.StatusIDs)
		assert.Equal(t, "Spam account", report.Comment)
		assert.True(t, report.Forward)

		writeJSON(t, writer, http.StatusOK, fedi.Report{ID: "42", ActionTaken: false})
	}))
	defer server.Close()

	client := NewTestClientWithToken(t, server.URL, "user-token")
	result := client.Reports().Create(context.Background(), &fedi.ReportCreate{
		AccountID: "1",
		StatusIDs: []string{"103206"},
		Comment:   "Spam account",
		Forward:   true,
	})

	require.True(t, result.IsSuccess())

	report, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, "42", report.ID)
	assert.False(t, report.ActionTaken)
}
