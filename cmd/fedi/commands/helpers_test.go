package commands

import (
	"testing"
	"time"

	"github.com/fedikit-io/fedi-client/pkg/fedi"
	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "paragraph",
			content:  "<p>Hello fediverse</p>",
			expected: "Hello fediverse",
		},
		{
			name:     "line breaks",
			content:  "<p>line one<br/>line two</p>",
			expected: "line one\nline two",
		},
		{
			name:     "link markup",
			content:  `<p>see <a href="https://example.org">example</a></p>`,
			expected: "see example",
		},
		{
			name:     "entities",
			content:  "<p>fish &amp; chips</p>",
			expected: "fish & chips",
		},
		{
			name:     "plain text",
			content:  "no markup here",
			expected: "no markup here",
		},
		{
			name:     "empty",
			content:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTML(tt.content))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly ten", Truncate("exactly ten", 11))
	assert.Equal(t, "a long ...", Truncate("a long string that keeps going", 10))

	// Multi-byte runes count as one character.
	assert.Equal(t, "café", Truncate("café", 4))
}

func TestFormatStatusContent(t *testing.T) {
	content := "<p>first line</p><p>second line</p>"
	assert.Equal(t, "first line second line", FormatStatusContent(content))
}

func TestFormatAccountName(t *testing.T) {
	account := fedi.Account{
		Username:    "gargron",
		Acct:        "gargron@mastodon.social",
		DisplayName: "Eugen",
	}
	assert.Equal(t, "Eugen (@gargron@mastodon.social)", FormatAccountName(account))

	// Falls back to the username when there is no display name.
	account.DisplayName = ""
	assert.Equal(t, "gargron (@gargron@mastodon.social)", FormatAccountName(account))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "N/A", FormatTime(time.Time{}))
	assert.NotEqual(t, "N/A", FormatTime(time.Now()))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "✓", FormatBool(true))
	assert.Equal(t, "", FormatBool(false))
}
