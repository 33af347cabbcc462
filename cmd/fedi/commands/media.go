package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/spf13/cobra"
)

// NewMediaCommand creates the media command group.
func NewMediaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media attachments",
		Long:  "Upload media files to attach to statuses",
	}

	cmd.AddCommand(newMediaUploadCommand())

	return cmd
}

func newMediaUploadCommand() *cobra.Command {
	var (
		description string
		focus       string
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a media file",
		Long:  "Upload a media file and print the attachment ID to use with 'fedi statuses post --media'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrFileRequired
			}

			// The path comes from the operator's own command line.
			// #nosec G304
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer func() { _ = file.Close() }()

			client, err := CreateClient()
			if err != nil {
				return err
			}

			upload := &fedi.MediaUpload{
				File:        file,
				Filename:    filepath.Base(args[0]),
				Description: description,
				Focus:       focus,
			}

			// Uploads get a longer deadline than ordinary calls.
			ctx, cancel := context.WithTimeout(context.Background(), constants.UploadHTTPTimeout)
			defer cancel()

			result := client.Media().Upload(ctx, upload)
			if err := result.Err(); err != nil {
				return fmt.Errorf("failed to upload media: %w", err)
			}

			attachment, ok := result.Value()
			if !ok {
				return fmt.Errorf("%w: empty upload response", fedi.ErrRequestFailed)
			}

			cmd.Printf("Uploaded %s as attachment %s\n", upload.Filename, attachment.ID)

			if attachment.URL != "" {
				cmd.Println(attachment.URL)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "alt text for the attachment")
	cmd.Flags().StringVar(&focus, "focus", "", "focal point as \"x,y\", each axis in [-1, 1]")

	return cmd
}
