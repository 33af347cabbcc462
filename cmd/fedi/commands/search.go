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

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var (
		limit      int
		resultType string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the server",
		Long:  "Search for accounts, statuses, and hashtags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrSearchQueryRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := fedi.NewQueryParams().WithLimit(limit)

			if resultType != "" {
				params = params.WithFilter("type", resultType)
			}

			result := client.Search().Search(context.Background(), args[0], params)
			if err := result.Err(); err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			results, _ := result.Value()

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(results)
			case constants.FormatYAML:
				return StandardYAMLRenderer(results)
			default:
				return renderSearchResults(results)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.MaxPageLimit, "maximum results per section")
	cmd.Flags().StringVar(&resultType, "type", "", "restrict to one section (accounts, statuses, hashtags)")

	return cmd
}

func renderSearchResults(results fedi.SearchResults) error {
	if len(results.Accounts) > 0 {
		fmt.Println("Accounts:")

		err := renderAccountsTable(results.Accounts)
		if err != nil {
			return err
		}
	}

	if len(results.Statuses) > 0 {
		fmt.Println("Statuses:")

		err := renderStatusesTable(results.Statuses)
		if err != nil {
			return err
		}
	}

	if len(results.Hashtags) > 0 {
		fmt.Println("Hashtags:")

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Tag", "URL")

		for _, tag := range results.Hashtags {
			_ = table.Append("#"+tag.Name, tag.URL)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	if len(results.Accounts) == 0 && len(results.Statuses) == 0 && len(results.Hashtags) == 0 {
		fmt.Println("No results found")
	}

	return nil
}
