package commands

import (
	"context"
	"fmt"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// timelineFlags are the paging flags shared by every timeline command.
type timelineFlags struct {
	limit   int
	maxID   string
	sinceID string
}

func (f *timelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", constants.DefaultPageLimit, "maximum results")
	cmd.Flags().StringVar(&f.maxID, "max-id", "", "return statuses older than this ID")
	cmd.Flags().StringVar(&f.sinceID, "since-id", "", "return statuses newer than this ID")
}

func (f *timelineFlags) params() *fedi.QueryParams {
	params := fedi.NewQueryParams().WithLimit(f.limit)

	if f.maxID != "" {
		params = params.WithMaxID(f.maxID)
	}

	if f.sinceID != "" {
		params = params.WithSinceID(f.sinceID)
	}

	return params
}

// NewTimelinesCommand creates the timelines command group.
func NewTimelinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timelines",
		Aliases: []string{"timeline", "tl"},
		Short:   "Read timelines",
		Long:    "Read the home, public, and hashtag timelines",
	}

	cmd.AddCommand(newTimelinesHomeCommand())
	cmd.AddCommand(newTimelinesPublicCommand())
	cmd.AddCommand(newTimelinesTagCommand())

	return cmd
}

func newTimelinesHomeCommand() *cobra.Command {
	flags := &timelineFlags{}

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show the home timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimelineCommand(flags,
				func(ctx context.Context, client fedi.Client, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
					return client.Timelines().Home(ctx, params)
				})
		},
	}

	flags.register(cmd)

	return cmd
}

func newTimelinesPublicCommand() *cobra.Command {
	flags := &timelineFlags{}

	var local bool

	cmd := &cobra.Command{
		Use:   "public",
		Short: "Show the public timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimelineCommand(flags,
				func(ctx context.Context, client fedi.Client, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
					if local {
						params = params.WithLocal(true)
					}

					return client.Timelines().Public(ctx, params)
				})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&local, "local", false, "only statuses from this server")

	return cmd
}

func newTimelinesTagCommand() *cobra.Command {
	flags := &timelineFlags{}

	cmd := &cobra.Command{
		Use:   "tag <hashtag>",
		Short: "Show a hashtag timeline",
		Long:  "Show the timeline for a hashtag, without the leading '#'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimelineCommand(flags,
				func(ctx context.Context, client fedi.Client, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status] {
					return client.Timelines().Tag(ctx, args[0], params)
				})
		},
	}

	flags.register(cmd)

	return cmd
}

func runTimelineCommand(flags *timelineFlags,
	fetch func(ctx context.Context, client fedi.Client, params *fedi.QueryParams) fedi.APIPagedResult[fedi.Status],
) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	result := fetch(context.Background(), client, flags.params())
	if err := result.Err(); err != nil {
		return fmt.Errorf("failed to fetch timeline: %w", err)
	}

	statuses := result.Items()

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(statuses)
	case constants.FormatYAML:
		return StandardYAMLRenderer(statuses)
	default:
		err := renderStatusesTable(statuses)
		if err != nil {
			return err
		}

		// Print the cursor so the next page is one flag away.
		if next := result.NextPage(); next != nil && next.Max != "" {
			fmt.Printf("\nNext page: --max-id %s\n", next.Max)
		}

		return nil
	}
}
