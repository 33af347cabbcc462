package streaming_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/fedikit-io/fedi-client/pkg/fedi/streaming"
)

const eventTimeout = 5 * time.Second

// sseServer answers one streaming request: it writes the given frames, then
// holds the connection open until the client disconnects so the subscriber
// does not reconnect and replay them.
func sseServer(t *testing.T, assertRequest func(*http.Request), frames ...string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if assertRequest != nil {
			assertRequest(request)
		}

		flusher, ok := writer.(http.Flusher)
		require.True(t, ok)

		writer.Header().Set("Content-Type", "text/event-stream")
		writer.WriteHeader(http.StatusOK)
		flusher.Flush()

		for _, frame := range frames {
			_, err := io.WriteString(writer, frame)
			assert.NoError(t, err)
			flusher.Flush()
		}

		<-request.Context().Done()
	}))
}

func receiveEvent(t *testing.T, events <-chan streaming.Event) streaming.Event {
	t.Helper()

	select {
	case event := <-events:
		return event
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for stream event")

		return streaming.Event{}
	}
}

func waitClosed(t *testing.T, events <-chan streaming.Event) {
	t.Helper()

	deadline := time.After(eventTimeout)

	for {
		select {
		case _, open := <-events:
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for stream to close")
		}
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()
	t.Run("normalizes bare hostname", func(t *testing.T) {
		t.Parallel()

		client, err := streaming.NewClient("mastodon.social", "")
		require.NoError(t, err)
		assert.Equal(t, "https://mastodon.social", client.BaseURL())
	})

	t.Run("preserves explicit scheme", func(t *testing.T) {
		t.Parallel()

		client, err := streaming.NewClient("http://localhost:4000/", "token")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:4000", client.BaseURL())
	})

	t.Run("requires server", func(t *testing.T) {
		t.Parallel()

		client, err := streaming.NewClient("   ", "token")
		require.ErrorIs(t, err, fedi.ErrBaseURLRequired)
		assert.Nil(t, client)
	})
}

func TestClient_User(t *testing.T) {
	t.Parallel()

	status := fedi.Status{ID: "103206", Content: "<p>Hello fediverse</p>"}
	statusJSON, err := json.Marshal(status)
	require.NoError(t, err)

	server := sseServer(t,
		func(request *http.Request) {
			assert.Equal(t, "/api/v1/streaming/user", request.URL.Path)
			assert.Equal(t, "stream-token", request.URL.Query().Get("access_token"))
			assert.Equal(t, "text/event-stream", request.Header.Get("Accept"))
		},
		fmt.Sprintf("event: update\ndata: %s\n\n", statusJSON),
		"event: delete\ndata: 103206\n\n",
		"event: filters_changed\ndata: []\n\n",
	)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := streaming.NewClient(server.URL, "stream-token", streaming.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	events, err := client.User(ctx)
	require.NoError(t, err)

	update := receiveEvent(t, events)
	assert.Equal(t, streaming.EventUpdate, update.Type)
	require.NoError(t, update.Err)
	require.NotNil(t, update.Status)
	assert.Equal(t, "103206", update.Status.ID)

	deleted := receiveEvent(t, events)
	assert.Equal(t, streaming.EventDelete, deleted.Type)
	assert.Equal(t, "103206", deleted.StatusID)

	filters := receiveEvent(t, events)
	assert.Equal(t, streaming.EventFiltersChanged, filters.Type)
	require.NoError(t, filters.Err)

	cancel()
	waitClosed(t, events)
}

func TestClient_Hashtag(t *testing.T) {
	t.Parallel()

	notification := fedi.Notification{ID: "551", Type: fedi.NotificationMention}
	notificationJSON, err := json.Marshal(notification)
	require.NoError(t, err)

	server := sseServer(t,
		func(request *http.Request) {
			assert.Equal(t, "/api/v1/streaming/hashtag", request.URL.Path)
			assert.Equal(t, "golang", request.URL.Query().Get("tag"))
			assert.Empty(t, request.URL.Query().Get("access_token"))
		},
		fmt.Sprintf("event: notification\ndata: %s\n\n", notificationJSON),
	)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := streaming.NewClient(server.URL, "", streaming.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	events, err := client.Hashtag(ctx, "golang")
	require.NoError(t, err)

	event := receiveEvent(t, events)
	assert.Equal(t, streaming.EventNotification, event.Type)
	require.NotNil(t, event.Notification)
	assert.Equal(t, fedi.NotificationMention, event.Notification.Type)

	cancel()
	waitClosed(t, events)
}

func TestClient_StreamValidation(t *testing.T) {
	t.Parallel()

	client, err := streaming.NewClient("mastodon.social", "token")
	require.NoError(t, err)

	_, err = client.Hashtag(context.Background(), "")
	assert.ErrorIs(t, err, streaming.ErrTagRequired)

	_, err = client.List(context.Background(), "")
	assert.ErrorIs(t, err, streaming.ErrListIDRequired)
}

func TestClient_MalformedPayload(t *testing.T) {
	t.Parallel()

	server := sseServer(t, nil,
		"event: update\ndata: not json\n\n",
		"event: announcement\ndata: {}\n\n",
	)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := streaming.NewClient(server.URL, "token", streaming.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	events, err := client.Public(ctx)
	require.NoError(t, err)

	// A payload that fails to decode surfaces on the event, and the stream
	// keeps delivering.
	broken := receiveEvent(t, events)
	assert.Equal(t, streaming.EventUpdate, broken.Type)
	require.Error(t, broken.Err)
	assert.Nil(t, broken.Status)

	unknown := receiveEvent(t, events)
	assert.Equal(t, streaming.EventType("announcement"), unknown.Type)
	require.ErrorIs(t, unknown.Err, streaming.ErrUnknownStreamEvent)

	cancel()
	waitClosed(t, events)
}
