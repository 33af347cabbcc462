package commands

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/fedikit-io/fedi-client/pkg/fediclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const loginScopes = "read write follow"

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with a server",
		Long:  "Log in to a fediverse server and manage the stored access token",
	}

	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthTokenCommand())
	cmd.AddCommand(newAuthRevokeCommand())

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a server",
		Long: `Log in to a fediverse server with your account credentials.

The CLI registers itself as an OAuth application on first login and stores
the resulting access token in the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthLoginCommand(cmd, username, password)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account email or username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")

	return cmd
}

func runAuthLoginCommand(cmd *cobra.Command, username, password string) error {
	config := loadConfig()

	name, serverConfig, err := resolveLoginServer(config)
	if err != nil {
		return err
	}

	client, err := fediclient.NewWithServer(serverConfig.URL)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	ctx := context.Background()

	// Register the CLI as an OAuth app once per server.
	if serverConfig.ClientID == "" {
		registration := &fedi.AppRegistration{
			ClientName:   "fedi-cli",
			RedirectURIs: fedi.RedirectURIOutOfBand,
			Scopes:       loginScopes,
			Website:      "https://github.com/fedikit-io/fedi-client",
		}

		appResult := client.Apps().Create(ctx, registration)
		if err := appResult.Err(); err != nil {
			return fmt.Errorf("failed to register application: %w", err)
		}

		app, ok := appResult.Value()
		if !ok {
			return fmt.Errorf("%w: empty application response", fedi.ErrRequestFailed)
		}

		serverConfig.ClientID = app.ClientID
		serverConfig.ClientSecret = app.ClientSecret
	}

	if username == "" {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Email or username: ")
		username, _ = reader.ReadString('\n')
		username = strings.TrimSpace(username)
	}

	if password == "" {
		fmt.Print("Password: ")

		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		password = string(bytePassword)

		fmt.Println()
	}

	tokenResult := client.OAuth().Token(ctx, &fedi.TokenRequest{
		GrantType:    fedi.GrantTypePassword,
		ClientID:     serverConfig.ClientID,
		ClientSecret: serverConfig.ClientSecret,
		Username:     username,
		Password:     password,
		Scope:        loginScopes,
	})
	if err := tokenResult.Err(); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	token, ok := tokenResult.Value()
	if !ok {
		return fmt.Errorf("%w: empty token response", fedi.ErrRequestFailed)
	}

	// Confirm the token works and learn who we are.
	client.SetAccessToken(token.AccessToken)

	verifyResult := client.Accounts().VerifyCredentials(ctx)
	if err := verifyResult.Err(); err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	account, _ := verifyResult.Value()

	now := time.Now()
	serverConfig.Token = token.AccessToken
	serverConfig.Username = account.Acct
	serverConfig.LastLogin = &now
	config.CurrentServer = name

	err = saveConfig(config)
	if err != nil {
		return err
	}

	cmd.Printf("Logged in to %s as @%s\n", serverConfig.URL, account.Acct)

	return nil
}

// resolveLoginServer picks the server entry to log in to, creating one from
// the --server flag when it names a server not yet configured.
func resolveLoginServer(config *Config) (string, *ServerConfig, error) {
	flagServer := viper.GetString("server")

	if flagServer == "" {
		serverConfig, name, err := config.currentServer()
		if err != nil {
			return "", nil, err
		}

		return name, serverConfig, nil
	}

	// The flag may name a configured server or a new URL.
	if serverConfig, exists := config.Servers[flagServer]; exists {
		return flagServer, serverConfig, nil
	}

	rawURL := flagServer
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	rawURL = strings.TrimSuffix(rawURL, "/")

	for name, serverConfig := range config.Servers {
		if serverConfig.URL == rawURL {
			return name, serverConfig, nil
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "", nil, fmt.Errorf("%w: %q", fedi.ErrNoHostInURL, flagServer)
	}

	serverConfig := &ServerConfig{URL: rawURL}
	config.Servers[parsed.Host] = serverConfig

	return parsed.Host, serverConfig, nil
}

func newAuthTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the stored access token",
		Long:  "Print the access token for the current server, for use in scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			serverConfig, _, err := config.currentServer()
			if err != nil {
				return err
			}

			if serverConfig.Token == "" {
				return constants.ErrNotLoggedIn
			}

			cmd.Println(serverConfig.Token)

			return nil
		},
	}
}

func newAuthRevokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke",
		Short: "Revoke the stored access token",
		Long:  "Revoke the access token for the current server and forget it",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			serverConfig, _, err := config.currentServer()
			if err != nil {
				return err
			}

			if serverConfig.Token == "" {
				return constants.ErrNotLoggedIn
			}

			client, err := fediclient.NewWithServer(serverConfig.URL)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
			defer cancel()

			result := client.OAuth().Revoke(ctx,
				serverConfig.ClientID, serverConfig.ClientSecret, serverConfig.Token)
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to revoke token: %w", err)
			}

			serverConfig.Token = ""
			serverConfig.LastLogin = nil

			err = saveConfig(config)
			if err != nil {
				return err
			}

			cmd.Println("Token revoked")

			return nil
		},
	}
}
