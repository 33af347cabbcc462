package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewInstanceCommand creates the instance command group.
func NewInstanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instance",
		Short: "Inspect the server",
		Long:  "Show server metadata, peers, and weekly activity",
	}

	cmd.AddCommand(newInstanceInfoCommand())
	cmd.AddCommand(newInstancePeersCommand())
	cmd.AddCommand(newInstanceActivityCommand())

	return cmd
}

func newInstanceInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show server information",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Instance().Get(context.Background())
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch instance info: %w", err)
			}

			instance, ok := result.Value()
			if !ok {
				return fedi.ErrRequestFailed
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(instance)
			case constants.FormatYAML:
				return StandardYAMLRenderer(instance)
			default:
				return renderInstanceTable(instance)
			}
		},
	}
}

func renderInstanceTable(instance fedi.Instance) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("URI", instance.URI)
	_ = table.Append("Title", instance.Title)
	_ = table.Append("Description", Truncate(instance.ShortDescription, constants.DisplayContentLength))
	_ = table.Append("Version", instance.Version)
	_ = table.Append("Email", instance.Email)
	_ = table.Append("Languages", strings.Join(instance.Languages, ", "))
	_ = table.Append("Registrations", FormatBool(instance.Registrations))
	_ = table.Append("Approval Required", FormatBool(instance.ApprovalRequired))

	if instance.Stats != nil {
		_ = table.Append("Users", strconv.FormatInt(instance.Stats.UserCount, 10))
		_ = table.Append("Statuses", strconv.FormatInt(instance.Stats.StatusCount, 10))
		_ = table.Append("Domains", strconv.FormatInt(instance.Stats.DomainCount, 10))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newInstancePeersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "peers",
		Short: "List federated peers",
		Long:  "List the domains this server federates with",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Instance().Peers(context.Background())
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch peers: %w", err)
			}

			peers, _ := result.Value()

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(peers)
			case constants.FormatYAML:
				return StandardYAMLRenderer(peers)
			default:
				for _, peer := range peers {
					cmd.Println(peer)
				}

				return nil
			}
		},
	}
}

func newInstanceActivityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show weekly activity",
		Long:  "Show status, login, and registration counts for recent weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Instance().Activity(context.Background())
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch activity: %w", err)
			}

			weeks, _ := result.Value()

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(weeks)
			case constants.FormatYAML:
				return StandardYAMLRenderer(weeks)
			default:
				return renderActivityTable(weeks)
			}
		},
	}
}

func renderActivityTable(weeks []fedi.Activity) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Week", "Statuses", "Logins", "Registrations")

	for _, week := range weeks {
		_ = table.Append(formatActivityWeek(week.Week), week.Statuses, week.Logins, week.Registrations)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// formatActivityWeek turns the wire-format Unix timestamp string into a date.
func formatActivityWeek(week string) string {
	seconds, err := strconv.ParseInt(week, 10, 64)
	if err != nil {
		return week
	}

	return time.Unix(seconds, 0).UTC().Format("2006-01-02")
}
