package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	// Servers holds one entry per configured server, keyed by a short name.
	Servers       map[string]*ServerConfig `json:"servers,omitempty"        yaml:"servers,omitempty"`
	CurrentServer string                   `json:"current_server,omitempty" yaml:"current_server,omitempty"`

	// Global settings
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// ServerConfig represents the configuration for a single server.
type ServerConfig struct {
	URL          string     `json:"url"                     yaml:"url"`
	Token        string     `json:"token,omitempty"         yaml:"token,omitempty"`
	Username     string     `json:"username,omitempty"      yaml:"username,omitempty"`
	ClientID     string     `json:"client_id,omitempty"     yaml:"client_id,omitempty"`
	ClientSecret string     `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"    yaml:"last_login,omitempty"`
}

// loadConfig builds the configuration from whatever viper has read.
func loadConfig() *Config {
	config := &Config{
		Servers:       make(map[string]*ServerConfig),
		CurrentServer: viper.GetString("current_server"),
		Output:        viper.GetString("output"),
	}

	err := viper.UnmarshalKey("servers", &config.Servers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed servers section: %v\n", err)
	}

	return config
}

// currentServer resolves the active server entry. With no explicit current
// server and exactly one entry configured, that entry is used.
func (c *Config) currentServer() (*ServerConfig, string, error) {
	name := c.CurrentServer
	if name == "" {
		if len(c.Servers) != 1 {
			return nil, "", constants.ErrNoServerConfigured
		}

		for only := range c.Servers {
			name = only
		}
	}

	serverConfig, exists := c.Servers[name]
	if !exists {
		return nil, "", fmt.Errorf("%w: %q", constants.ErrServerNotFound, name)
	}

	return serverConfig, name, nil
}

// saveConfig writes the configuration back to the config file.
func saveConfig(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".fedi")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Tokens live in this file, keep it private.
	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and edit the fedi CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never print stored credentials.
			for _, serverConfig := range config.Servers {
				if serverConfig.Token != "" {
					serverConfig.Token = constants.MaskedSecret
				}

				if serverConfig.ClientSecret != "" {
					serverConfig.ClientSecret = constants.MaskedSecret
				}
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(config)
			case constants.FormatYAML:
				return StandardYAMLRenderer(config)
			default:
				return renderConfigTable(config)
			}
		},
	}
}

func renderConfigTable(config *Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Server", "URL", "Account", "Token", "Current")

	for name, serverConfig := range config.Servers {
		account := serverConfig.Username
		if account == "" {
			account = constants.NotAvailable
		}

		_ = table.Append(name, serverConfig.URL, account,
			serverConfig.Token, FormatBool(name == config.CurrentServer))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a global configuration value, for example 'fedi config set output json'",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadConfig()

			switch key {
			case "output":
				config.Output = value
			case "current_server":
				if _, exists := config.Servers[value]; !exists {
					return fmt.Errorf("%w: %q", constants.ErrServerNotFound, value)
				}

				config.CurrentServer = value
			default:
				return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			cmd.Printf("Set %s to %s\n", key, value)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config := loadConfig()

			switch key {
			case "output":
				config.Output = ""
			case "current_server":
				config.CurrentServer = ""
			default:
				return fmt.Errorf("%w: %q", constants.ErrUnknownConfigKey, key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			cmd.Printf("Unset %s\n", key)

			return nil
		},
	}
}
