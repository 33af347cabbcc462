package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewServersCommand creates the servers command group.
func NewServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Manage configured servers",
		Long:  "Add, list, switch between, and remove configured fediverse servers",
	}

	cmd.AddCommand(newServersAddCommand())
	cmd.AddCommand(newServersListCommand())
	cmd.AddCommand(newServersSwitchCommand())
	cmd.AddCommand(newServersRemoveCommand())

	return cmd
}

func newServersAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a server",
		Long:  "Add a server under a short name, for example 'fedi servers add main mastodon.social'",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, rawURL := args[0], args[1]

			config := loadConfig()

			if _, exists := config.Servers[name]; exists {
				return fmt.Errorf("%w: %q", constants.ErrServerExists, name)
			}

			if !strings.Contains(rawURL, "://") {
				rawURL = "https://" + rawURL
			}

			config.Servers[name] = &ServerConfig{URL: strings.TrimSuffix(rawURL, "/")}

			// The first server becomes current automatically.
			if config.CurrentServer == "" {
				config.CurrentServer = name
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			cmd.Printf("Added server %s (%s)\n", name, config.Servers[name].URL)

			return nil
		},
	}
}

func newServersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(serverNames(config))
			case constants.FormatYAML:
				return StandardYAMLRenderer(serverNames(config))
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "URL", "Logged In", "Current")

				for name, serverConfig := range config.Servers {
					_ = table.Append(name, serverConfig.URL,
						FormatBool(serverConfig.Token != ""),
						FormatBool(name == config.CurrentServer))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func serverNames(config *Config) []string {
	names := make([]string, 0, len(config.Servers))
	for name := range config.Servers {
		names = append(names, name)
	}

	return names
}

func newServersSwitchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "switch <name>",
		Aliases: []string{"use"},
		Short:   "Switch the current server",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			config := loadConfig()

			if _, exists := config.Servers[name]; !exists {
				return fmt.Errorf("%w: %q", constants.ErrServerNotFound, name)
			}

			config.CurrentServer = name

			err := saveConfig(config)
			if err != nil {
				return err
			}

			cmd.Printf("Now using server %s (%s)\n", name, config.Servers[name].URL)

			return nil
		},
	}
}

func newServersRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			config := loadConfig()

			if _, exists := config.Servers[name]; !exists {
				return fmt.Errorf("%w: %q", constants.ErrServerNotFound, name)
			}

			if name == config.CurrentServer && len(config.Servers) > 1 {
				return fmt.Errorf("%w: %q", constants.ErrCannotRemoveCurrent, name)
			}

			delete(config.Servers, name)

			if name == config.CurrentServer {
				config.CurrentServer = ""
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			cmd.Printf("Removed server %s\n", name)

			return nil
		},
	}
}
