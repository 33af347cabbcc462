package commands

import (
	"testing"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCurrentServer(t *testing.T) {
	t.Run("explicit current server", func(t *testing.T) {
		config := &Config{
			Servers: map[string]*ServerConfig{
				"main":  {URL: "https://mastodon.social"},
				"other": {URL: "https://fosstodon.org"},
			},
			CurrentServer: "other",
		}

		serverConfig, name, err := config.currentServer()
		require.NoError(t, err)
		assert.Equal(t, "other", name)
		assert.Equal(t, "https://fosstodon.org", serverConfig.URL)
	})

	t.Run("single server needs no current marker", func(t *testing.T) {
		config := &Config{
			Servers: map[string]*ServerConfig{
				"main": {URL: "https://mastodon.social"},
			},
		}

		serverConfig, name, err := config.currentServer()
		require.NoError(t, err)
		assert.Equal(t, "main", name)
		assert.Equal(t, "https://mastodon.social", serverConfig.URL)
	})

	t.Run("no servers configured", func(t *testing.T) {
		config := &Config{Servers: map[string]*ServerConfig{}}

		_, _, err := config.currentServer()
		assert.ErrorIs(t, err, constants.ErrNoServerConfigured)
	})

	t.Run("ambiguous without current marker", func(t *testing.T) {
		config := &Config{
			Servers: map[string]*ServerConfig{
				"main":  {URL: "https://mastodon.social"},
				"other": {URL: "https://fosstodon.org"},
			},
		}

		_, _, err := config.currentServer()
		assert.ErrorIs(t, err, constants.ErrNoServerConfigured)
	})

	t.Run("current marker points at removed entry", func(t *testing.T) {
		config := &Config{
			Servers: map[string]*ServerConfig{
				"main": {URL: "https://mastodon.social"},
			},
			CurrentServer: "gone",
		}

		_, _, err := config.currentServer()
		assert.ErrorIs(t, err, constants.ErrServerNotFound)
	})
}

func TestNewConfigCommand(t *testing.T) {
	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 3)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set")
	assert.Contains(t, commandNames, "unset")
}

func TestNewServersCommand(t *testing.T) {
	cmd := NewServersCommand()
	assert.Equal(t, "servers", cmd.Use)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 4)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "add")
	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "switch")
	assert.Contains(t, commandNames, "remove")
}
