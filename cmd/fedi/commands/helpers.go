// Package commands implements the fedi CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/fedikit-io/fedi-client/internal/constants"
	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/fedikit-io/fedi-client/pkg/fediclient"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CreateClient builds an API client from the command-line flags and the
// saved configuration. Flags win over the config file; the config file
// supplies the current server and its stored token when flags are absent.
func CreateClient() (fedi.Client, error) {
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
			// A --server flag alone is enough for unauthenticated commands.
			return nil, err
		}
	}

	fediConfig := &fedi.Config{
		BaseURL:     server,
		AccessToken: token,
		UserAgent:   constants.DefaultUserAgent,
	}

	if viper.GetBool("verbose") {
		zapLogger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}

		fediConfig.Debug = true
		fediConfig.Logger = fedi.NewZapLogger(zapLogger)
	}

	client, err := fediclient.New(fediConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// StripHTML reduces status HTML to plain text for table output. Paragraph
// and line breaks become newlines, every other tag is dropped, and entities
// are unescaped.
func StripHTML(content string) string {
	replacer := strings.NewReplacer("</p>", "\n", "<br>", "\n", "<br/>", "\n", "<br />", "\n")
	content = replacer.Replace(content)

	var builder strings.Builder

	inTag := false

	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			builder.WriteRune(r)
		}
	}

	return html.UnescapeString(strings.TrimSpace(builder.String()))
}

// Truncate shortens a string to maxLen runes, marking the cut with an
// ellipsis.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

// FormatStatusContent renders status HTML as a single truncated table cell.
func FormatStatusContent(content string) string {
	text := strings.Join(strings.Fields(StripHTML(content)), " ")

	return Truncate(text, constants.DisplayContentLength)
}

// FormatAccountName renders an account as "display name (@acct)" for tables.
func FormatAccountName(account fedi.Account) string {
	name := account.DisplayName
	if name == "" {
		name = account.Username
	}

	return fmt.Sprintf("%s (@%s)", Truncate(name, constants.DisplayNameLength), account.Acct)
}

// FormatTime renders a timestamp for table cells.
func FormatTime(timestamp time.Time) string {
	if timestamp.IsZero() {
		return constants.NotAvailable
	}

	return timestamp.Local().Format("2006-01-02 15:04")
}

// FormatBool renders a flag as a check mark or blank.
func FormatBool(value bool) string {
	if value {
		return constants.CheckMarkSymbol
	}

	return ""
}
