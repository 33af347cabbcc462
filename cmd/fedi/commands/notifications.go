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

// NewNotificationsCommand creates the notifications command group.
func NewNotificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification", "notif"},
		Short:   "Manage notifications",
		Long:    "List, clear, and dismiss notifications",
	}

	cmd.AddCommand(newNotificationsListCommand())
	cmd.AddCommand(newNotificationsClearCommand())
	cmd.AddCommand(newNotificationsDismissCommand())

	return cmd
}

func newNotificationsListCommand() *cobra.Command {
	var (
		limit    int
		onlyType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := fedi.NewQueryParams().WithLimit(limit)

			if onlyType != "" {
				params = params.WithFilter("types[]", onlyType)
			}

			result := client.Notifications().List(context.Background(), params)
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to fetch notifications: %w", err)
			}

			return outputNotifications(result.Items())
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageLimit, "maximum results")
	cmd.Flags().StringVar(&onlyType, "type", "", "only this type (mention, reblog, favourite, follow)")

	return cmd
}

func outputNotifications(notifications []fedi.Notification) error {
	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(notifications)
	case constants.FormatYAML:
		return StandardYAMLRenderer(notifications)
	default:
		if len(notifications) == 0 {
			fmt.Println("No notifications")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Type", "From", "When", "Status")

		for _, notification := range notifications {
			statusContent := ""
			if notification.Status != nil {
				statusContent = FormatStatusContent(notification.Status.Content)
			}

			_ = table.Append(notification.ID, notification.Type,
				"@"+notification.Account.Acct,
				FormatTime(notification.CreatedAt), statusContent)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newNotificationsClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Notifications().Clear(context.Background())
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to clear notifications: %w", err)
			}

			cmd.Println("Notifications cleared")

			return nil
		},
	}
}

func newNotificationsDismissCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <notification-id>",
		Short: "Dismiss a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Notifications().Dismiss(context.Background(), args[0])
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to dismiss notification %s: %w", args[0], err)
			}

			cmd.Printf("Notification %s dismissed\n", args[0])

			return nil
		},
	}
}
