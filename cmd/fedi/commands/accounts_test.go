package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAccountsCommand(t *testing.T) {
	cmd := NewAccountsCommand()
	assert.Equal(t, "accounts", cmd.Use)
	assert.Equal(t, []string{"account", "acct"}, cmd.Aliases)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 7)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "search")
	assert.Contains(t, commandNames, "followers")
	assert.Contains(t, commandNames, "following")
	assert.Contains(t, commandNames, "follow")
	assert.Contains(t, commandNames, "unfollow")
	assert.Contains(t, commandNames, "whoami")
}

func TestAccountsSearchCommand(t *testing.T) {
	cmd := newAccountsSearchCommand()
	assert.Equal(t, "search <query>", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("limit"))
}
