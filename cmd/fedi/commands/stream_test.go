package commands

import (
	"context"
	"testing"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi/streaming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStreamCommand(t *testing.T) {
	cmd := NewStreamCommand()
	assert.Equal(t, "stream <name>", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("tag"))
	assert.NotNil(t, cmd.Flags().Lookup("list"))
	assert.NotNil(t, cmd.Flags().Lookup("max-events"))
}

func TestOpenStreamValidation(t *testing.T) {
	client, err := streaming.NewClient("mastodon.example", "token")
	require.NoError(t, err)

	ctx := context.Background()

	// Flag validation happens before any connection is made.
	_, err = openStream(ctx, client, "hashtag", "", "")
	assert.ErrorIs(t, err, constants.ErrHashtagRequired)

	_, err = openStream(ctx, client, "list", "", "")
	assert.ErrorIs(t, err, constants.ErrListIDRequired)

	_, err = openStream(ctx, client, "federated", "", "")
	assert.ErrorIs(t, err, constants.ErrInvalidStreamName)
}
