package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "acct"},
		Short:   "Manage accounts",
		Long:    "Look up, search, and follow fediverse accounts",
	}

	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsSearchCommand())
	cmd.AddCommand(newAccountsFollowersCommand())
	cmd.AddCommand(newAccountsFollowingCommand())
	cmd.AddCommand(newAccountsFollowCommand())
	cmd.AddCommand(newAccountsUnfollowCommand())
	cmd.AddCommand(newAccountsWhoamiCommand())

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <account-id>",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Accounts().Get(context.Background(), args[0])
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch account: %w", err)
			}

			account, ok := result.Value()
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrAccountNotFound, args[0])
			}

			return outputAccount(account)
		},
	}
}

func newAccountsWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Accounts().VerifyCredentials(context.Background())
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			account, ok := result.Value()
			if !ok {
				return constants.ErrNotLoggedIn
			}

			return outputAccount(account)
		},
	}
}

func outputAccount(account fedi.Account) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(account)
	case constants.FormatYAML:
		return StandardYAMLRenderer(account)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", account.ID)
		_ = table.Append("Account", "@"+account.Acct)
		_ = table.Append("Display Name", account.DisplayName)
		_ = table.Append("URL", account.URL)
		_ = table.Append("Followers", fmt.Sprintf("%d", account.FollowersCount))
		_ = table.Append("Following", fmt.Sprintf("%d", account.FollowingCount))
		_ = table.Append("Statuses", fmt.Sprintf("%d", account.StatusesCount))
		_ = table.Append("Locked", FormatBool(account.Locked))
		_ = table.Append("Bot", FormatBool(account.Bot))
		_ = table.Append("Created", FormatTime(account.CreatedAt))
		_ = table.Append("Note", FormatStatusContent(account.Note))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newAccountsSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for accounts",
		Long:  "Search for accounts by name or handle, for example 'fedi accounts search @user@example.org'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := fedi.NewQueryParams().WithLimit(limit)

			result := client.Accounts().Search(context.Background(), args[0], params)
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to search accounts: %w", err)
			}

			accounts, _ := result.Value()

			return outputAccounts(accounts)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageLimit, "maximum results")

	return cmd
}

func newAccountsFollowersCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "followers <account-id>",
		Short: "List an account's followers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountPageCommand(args[0], limit,
				func(ctx context.Context, client fedi.Client, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
					return client.Accounts().Followers(ctx, args[0], params)
				})
		},
	}

	// Account listings accept larger pages than the rest of the API.
	cmd.Flags().IntVar(&limit, "limit", constants.AccountPageLimit, "maximum results")

	return cmd
}

func newAccountsFollowingCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "following <account-id>",
		Short: "List accounts an account follows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountPageCommand(args[0], limit,
				func(ctx context.Context, client fedi.Client, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account] {
					return client.Accounts().Following(ctx, args[0], params)
				})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.AccountPageLimit, "maximum results")

	return cmd
}

func runAccountPageCommand(accountID string, limit int,
	fetch func(ctx context.Context, client fedi.Client, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Account],
) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := fedi.NewQueryParams().WithLimit(limit)

	result := fetch(context.Background(), client, params)
	if err := result.Err(); err != nil {
		return fmt.Errorf("failed to fetch accounts for %s: %w", accountID, err)
	}

	return outputAccounts(result.Items())
}

func outputAccounts(accounts []fedi.Account) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(accounts)
	case constants.FormatYAML:
		return StandardYAMLRenderer(accounts)
	default:
		return renderAccountsTable(accounts)
	}
}

func renderAccountsTable(accounts []fedi.Account) error {
	if len(accounts) == 0 {
		fmt.Println("No accounts found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Account", "Display Name", "Followers", "Statuses")

	for _, account := range accounts {
		_ = table.Append(account.ID, "@"+account.Acct,
			Truncate(account.DisplayName, constants.DisplayNameLength),
			fmt.Sprintf("%d", account.FollowersCount),
			fmt.Sprintf("%d", account.StatusesCount))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newAccountsFollowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "follow <account-id>",
		Short: "Follow an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelationshipCommand(cmd, args[0], "follow",
				func(ctx context.Context, client fedi.Client) fedi.APIResult[fedi.Relationship] {
					return client.Accounts().Follow(ctx, args[0])
				})
		},
	}
}

func newAccountsUnfollowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <account-id>",
		Short: "Unfollow an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelationshipCommand(cmd, args[0], "unfollow",
				func(ctx context.Context, client fedi.Client) fedi.APIResult[fedi.Relationship] {
					return client.Accounts().Unfollow(ctx, args[0])
				})
		},
	}
}

func runRelationshipCommand(cmd *cobra.Command, accountID, action string,
	call func(ctx context.Context, client fedi.Client) fedi.APIResult[fedi.Relationship],
) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	result := call(context.Background(), client)
	if err := result.Err(); err != nil {
		return fmt.Errorf("failed to %s account %s: %w", action, accountID, err)
	}

	relationship, ok := result.Value()
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrAccountNotFound, accountID)
	}

	switch {
	case relationship.Following:
		cmd.Printf("Following account %s\n", accountID)
	case relationship.Requested:
		cmd.Printf("Follow request sent to account %s\n", accountID)
	default:
		cmd.Printf("Not following account %s\n", accountID)
	}

	return nil
}
