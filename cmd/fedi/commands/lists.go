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

// NewListsCommand creates the lists command group.
func NewListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage lists",
		Long:  "Create and maintain curated account lists",
	}

	cmd.AddCommand(newListsListCommand())
	cmd.AddCommand(newListsGetCommand())
	cmd.AddCommand(newListsCreateCommand())
	cmd.AddCommand(newListsDeleteCommand())
	cmd.AddCommand(newListsAccountsCommand())
	cmd.AddCommand(newListsAddCommand())
	cmd.AddCommand(newListsRemoveCommand())

	return cmd
}

func newListsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Lists().List(context.Background())
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch lists: %w", err)
			}

			lists, _ := result.Value()

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(lists)
			case constants.FormatYAML:
				return StandardYAMLRenderer(lists)
			default:
				return renderListsTable(lists)
			}
		},
	}
}

func renderListsTable(lists []fedi.List) error {
	if len(lists) == 0 {
		fmt.Println("No lists found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Replies Policy")

	for _, list := range lists {
		_ = table.Append(list.ID, list.Title, list.RepliesPolicy)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newListsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <list-id>",
		Short: "Show a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Lists().Get(context.Background(), args[0])
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch list %s: %w", args[0], err)
			}

			list, ok := result.Value()
			if !ok {
				return fmt.Errorf("%w: list %s", fedi.ErrRequestFailed, args[0])
			}

			return renderListsTable([]fedi.List{list})
		},
	}
}

func newListsCreateCommand() *cobra.Command {
	var repliesPolicy string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrListTitleRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Lists().Create(context.Background(), args[0], repliesPolicy)
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to create list: %w", err)
			}

			list, ok := result.Value()
			if !ok {
				return fmt.Errorf("%w: empty create response", fedi.ErrRequestFailed)
			}

			cmd.Printf("Created list %s (%s)\n", list.Title, list.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&repliesPolicy, "replies-policy", "", "which replies to show (followed, list, none)")

	return cmd
}

func newListsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Lists().Delete(context.Background(), args[0])
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to delete list %s: %w", args[0], err)
			}

			cmd.Printf("List %s deleted\n", args[0])

			return nil
		},
	}
}

func newListsAccountsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "accounts <list-id>",
		Short: "List the accounts in a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := fedi.NewQueryParams().WithLimit(limit)

			result := client.Lists().Accounts(context.Background(), args[0], params)
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch accounts for list %s: %w", args[0], err)
			}

			return outputAccounts(result.Items())
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.AccountPageLimit, "maximum results")

	return cmd
}

func newListsAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <list-id> <account-id>...",
		Short: "Add accounts to a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Lists().AddAccounts(context.Background(), args[0], args[1:])
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to add accounts to list %s: %w", args[0], err)
			}

			cmd.Printf("Added %d account(s) to list %s\n", len(args)-1, args[0])

			return nil
		},
	}
}

func newListsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <list-id> <account-id>...",
		Short: "Remove accounts from a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Lists().RemoveAccounts(context.Background(), args[0], args[1:])
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to remove accounts from list %s: %w", args[0], err)
			}

			cmd.Printf("Removed %d account(s) from list %s\n", len(args)-1, args[0])

			return nil
		},
	}
}
