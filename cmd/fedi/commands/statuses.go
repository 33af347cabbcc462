package commands

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewStatusesCommand creates the statuses command group.
func NewStatusesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "statuses",
		Aliases: []string{"status", "toot"},
		Short:   "Manage statuses",
		Long:    "Publish, inspect, and interact with statuses",
	}

	cmd.AddCommand(newStatusesGetCommand())
	cmd.AddCommand(newStatusesPostCommand())
	cmd.AddCommand(newStatusesDeleteCommand())
	cmd.AddCommand(newStatusesContextCommand())
	cmd.AddCommand(newStatusesFavouriteCommand())
	cmd.AddCommand(newStatusesUnfavouriteCommand())
	cmd.AddCommand(newStatusesBoostCommand())
	cmd.AddCommand(newStatusesUnboostCommand())

	return cmd
}

func newStatusesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <status-id>",
		Short: "Show a status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Statuses().Get(context.Background(), args[0])
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch status: %w", err)
			}

			status, ok := result.Value()
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrStatusNotFound, args[0])
			}

			return outputStatus(status)
		},
	}
}

func newStatusesPostCommand() *cobra.Command {
	var (
		visibility string
		spoiler    string
		replyTo    string
		language   string
		mediaIDs   []string
		sensitive  bool
	)

	cmd := &cobra.Command{
		Use:   "post <text>",
		Short: "Publish a status",
		Long:  "Publish a new status, for example 'fedi statuses post \"Hello fediverse\" --visibility unlisted'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrStatusTextRequired
			}

			// The server owns the real limit; warn against the common one.
			if utf8.RuneCountInString(args[0]) > constants.DefaultStatusLimit {
				cmd.PrintErrf("Warning: status exceeds %d characters, most servers will reject it\n",
					constants.DefaultStatusLimit)
			}

			parsedVisibility, err := parseVisibility(visibility)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			create := &fedi.StatusCreate{
				Status:      args[0],
				Visibility:  parsedVisibility,
				SpoilerText: spoiler,
				Language:    language,
				MediaIDs:    mediaIDs,
				Sensitive:   sensitive,
			}

			if replyTo != "" {
				create.InReplyToID = &replyTo
			}

			result := client.Statuses().Create(context.Background(), create)
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to publish status: %w", err)
			}

			status, ok := result.Value()
			if !ok {
				return fmt.Errorf("%w: empty publish response", fedi.ErrRequestFailed)
			}

			cmd.Printf("Published status %s\n", status.ID)

			if status.URL != "" {
				cmd.Println(status.URL)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&visibility, "visibility", "", "visibility (public, unlisted, private, direct)")
	cmd.Flags().StringVar(&spoiler, "spoiler", "", "content warning text")
	cmd.Flags().StringVar(&replyTo, "reply-to", "", "status ID to reply to")
	cmd.Flags().StringVar(&language, "language", "", "ISO 639-1 language code")
	cmd.Flags().StringSliceVar(&mediaIDs, "media", nil, "media attachment IDs")
	cmd.Flags().BoolVar(&sensitive, "sensitive", false, "mark media as sensitive")

	return cmd
}

// parseVisibility validates the --visibility flag. An empty flag keeps the
// account's server-side default.
func parseVisibility(visibility string) (fedi.StatusVisibility, error) {
	switch fedi.StatusVisibility(visibility) {
	case "":
		return "", nil
	case fedi.VisibilityPublic, fedi.VisibilityUnlisted, fedi.VisibilityPrivate, fedi.VisibilityDirect:
		return fedi.StatusVisibility(visibility), nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidVisibility, visibility)
	}
}

func newStatusesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <status-id>",
		Short: "Delete a status",
		Long:  "Delete a status and print its source text for redrafting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Statuses().Delete(context.Background(), args[0])
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to delete status: %w", err)
			}

			status, ok := result.Value()
			if !ok {
				// Already gone server-side.
				cmd.Printf("Status %s deleted\n", args[0])

				return nil
			}

			cmd.Printf("Status %s deleted\n", status.ID)

			if status.Text != "" {
				cmd.Printf("Source text: %s\n", status.Text)
			}

			return nil
		},
	}
}

func newStatusesContextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "context <status-id>",
		Short: "Show a status thread",
		Long:  "Show the ancestors and descendants of a status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Statuses().Context(context.Background(), args[0])
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch context: %w", err)
			}

			statusContext, ok := result.Value()
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrStatusNotFound, args[0])
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(statusContext)
			case constants.FormatYAML:
				return StandardYAMLRenderer(statusContext)
			default:
				thread := make([]fedi.Status, 0, len(statusContext.Ancestors)+len(statusContext.Descendants))
				thread = append(thread, statusContext.Ancestors...)
				thread = append(thread, statusContext.Descendants...)

				return renderStatusesTable(thread)
			}
		},
	}
}

func newStatusesFavouriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "favourite <status-id>",
		Aliases: []string{"fav"},
		Short:   "Favourite a status",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusActionCommand(cmd, args[0], "favourite",
				func(ctx context.Context, client fedi.Client) fedi.APIResult[fedi.Status] {
					return client.Statuses().Favourite(ctx, args[0])
				})
		},
	}
}

func newStatusesUnfavouriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "unfavourite <status-id>",
		Aliases: []string{"unfav"},
		Short:   "Undo a favourite",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusActionCommand(cmd, args[0], "unfavourite",
				func(ctx context.Context, client fedi.Client) fedi.APIResult[fedi.Status] {
					return client.Statuses().Unfavourite(ctx, args[0])
				})
		},
	}
}

func newStatusesBoostCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "boost <status-id>",
		Aliases: []string{"reblog"},
		Short:   "Boost a status",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusActionCommand(cmd, args[0], "boost",
				func(ctx context.Context, client fedi.Client) fedi.APIResult[fedi.Status] {
					return client.Statuses().Reblog(ctx, args[0])
				})
		},
	}
}

func newStatusesUnboostCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "unboost <status-id>",
		Aliases: []string{"unreblog"},
		Short:   "Undo a boost",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusActionCommand(cmd, args[0], "unboost",
				func(ctx context.Context, client fedi.Client) fedi.APIResult[fedi.Status] {
					return client.Statuses().Unreblog(ctx, args[0])
				})
		},
	}
}

func runStatusActionCommand(cmd *cobra.Command, statusID, action string,
	call func(ctx context.Context, client fedi.Client) fedi.APIResult[fedi.Status],
) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	result := call(context.Background(), client)
	if err := result.Err(); err != nil {
		return fmt.Errorf("failed to %s status %s: %w", action, statusID, err)
	}

	cmd.Printf("Status %s: %s\n", statusID, action)

	return nil
}

func outputStatus(status fedi.Status) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(status)
	case constants.FormatYAML:
		return StandardYAMLRenderer(status)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", status.ID)
		_ = table.Append("Account", FormatAccountName(status.Account))
		_ = table.Append("Posted", FormatTime(status.CreatedAt))
		_ = table.Append("Visibility", string(status.Visibility))
		_ = table.Append("Favourites", fmt.Sprintf("%d", status.FavouritesCount))
		_ = table.Append("Boosts", fmt.Sprintf("%d", status.ReblogsCount))
		_ = table.Append("Replies", fmt.Sprintf("%d", status.RepliesCount))
		_ = table.Append("Content", FormatStatusContent(status.Content))

		if status.URL != "" {
			_ = table.Append("URL", status.URL)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func renderStatusesTable(statuses []fedi.Status) error {
	if len(statuses) == 0 {
		fmt.Println("No statuses found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Account", "Posted", "Content")

	for _, status := range statuses {
		content := status.Content
		if status.Reblog != nil {
			content = status.Reblog.Content
		}

		_ = table.Append(status.ID, "@"+status.Account.Acct,
			FormatTime(status.CreatedAt), FormatStatusContent(content))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
