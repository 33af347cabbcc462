package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/fedikit-io/fedi-client/pkg/fedi/streaming"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewStreamCommand creates the stream command.
func NewStreamCommand() *cobra.Command {
	var (
		tag       string
		listID    string
		maxEvents int
	)

	cmd := &cobra.Command{
		Use:   "stream <name>",
		Short: "Watch a live event stream",
		Long: `Watch a server-sent event stream until interrupted.

Available streams: user, public, public:local, hashtag, list, direct.
The hashtag stream needs --tag, the list stream needs --list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStreamCommand(cmd, args[0], tag, listID, maxEvents)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "hashtag to watch, without the leading '#'")
	cmd.Flags().StringVar(&listID, "list", "", "list ID to watch")
	cmd.Flags().IntVar(&maxEvents, "max-events", constants.MaxStreamEvents, "stop after this many events (0 means no limit)")

	return cmd
}

func runStreamCommand(cmd *cobra.Command, name, tag, listID string, maxEvents int) error {
	client, err := createStreamClient()
	if err != nil {
		return err
	}

	// Stop cleanly on ctrl-c.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := openStream(ctx, client, name, tag, listID)
	if err != nil {
		return err
	}

	cmd.Printf("Streaming %s from %s (ctrl-c to stop)\n", name, client.BaseURL())

	received := 0

	for event := range events {
		printStreamEvent(cmd, event)

		received++
		if maxEvents > 0 && received >= maxEvents {
			break
		}
	}

	return nil
}

// createStreamClient builds a streaming client from the same flag and config
// sources CreateClient uses.
func createStreamClient() (*streaming.Client, error) {
	server := viper.GetString("server")
	token := viper.GetString("token")

	if server == "" || token == "" {
		config := loadConfig()

		serverConfig, _, err := config.currentServer()

		switch {
		case err == nil:
			if server == "" {
				server = serverConfig.URL
			}

			if token == "" {
				token = serverConfig.Token
			}
		case server == "":
			return nil, err
		}
	}

	client, err := streaming.NewClient(server, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create streaming client: %w", err)
	}

	return client, nil
}

func openStream(ctx context.Context, client *streaming.Client, name, tag, listID string) (<-chan streaming.Event, error) {
	switch name {
	case "user":
		return client.User(ctx)
	case "public":
		return client.Public(ctx)
	case "public:local", "local":
		return client.PublicLocal(ctx)
	case "hashtag", "tag":
		if tag == "" {
			return nil, constants.ErrHashtagRequired
		}

		return client.Hashtag(ctx, tag)
	case "list":
		if listID == "" {
			return nil, constants.ErrListIDRequired
		}

		return client.List(ctx, listID)
	case "direct":
		return client.Direct(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidStreamName, name)
	}
}

func printStreamEvent(cmd *cobra.Command, event streaming.Event) {
	if event.Err != nil {
		fmt.Fprintf(os.Stderr, "stream error: %v\n", event.Err)

		return
	}

	if viper.GetString("output") == constants.FormatJSON {
		printStreamEventJSON(event)

		return
	}

	switch event.Type {
	case streaming.EventUpdate:
		if event.Status != nil {
			cmd.Printf("[update] @%s: %s\n", event.Status.Account.Acct,
				FormatStatusContent(event.Status.Content))
		}
	case streaming.EventNotification:
		if event.Notification != nil {
			cmd.Printf("[notification] %s from @%s\n",
				event.Notification.Type, event.Notification.Account.Acct)
		}
	case streaming.EventDelete:
		cmd.Printf("[delete] status %s\n", event.StatusID)
	case streaming.EventFiltersChanged:
		cmd.Printf("[%s]\n", event.Type)
	default:
		cmd.Printf("[%s]\n", event.Type)
	}
}

func printStreamEventJSON(event streaming.Event) {
	payload := struct {
		Type         streaming.EventType `json:"type"`
		Status       *fedi.Status        `json:"status,omitempty"`
		Notification *fedi.Notification  `json:"notification,omitempty"`
		StatusID     string              `json:"status_id,omitempty"`
	}{
		Type:         event.Type,
		Status:       event.Status,
		Notification: event.Notification,
		StatusID:     event.StatusID,
	}

	if err := StandardJSONRenderer(payload); err != nil {
		fmt.Fprintf(os.Stderr, "failed to render event: %v\n", err)
	}
}
