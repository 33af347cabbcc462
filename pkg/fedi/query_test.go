package fedi_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *fedi.QueryParams
		expected url.Values
	}{
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
		{
			name:     "empty params",
			params:   fedi.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name:   "with limit",
			params: fedi.NewQueryParams().WithLimit(40),
			expected: url.Values{
				"limit": []string{"40"},
			},
		},
		{
			name:     "zero limit omitted",
			params:   fedi.NewQueryParams().WithLimit(0),
			expected: url.Values{},
		},
		{
			name:   "with cursor",
			params: fedi.NewQueryParams().WithCursor(&fedi.PageCursor{Max: "7486869"}),
			expected: url.Values{
				"max_id": []string{"7486869"},
			},
		},
		{
			name:   "with cursor token builders",
			params: fedi.NewQueryParams().WithSinceID("100").WithMinID("200").WithMaxID("300"),
			expected: url.Values{
				"since_id": []string{"100"},
				"min_id":   []string{"200"},
				"max_id":   []string{"300"},
			},
		},
		{
			name: "with repeated filter",
			params: fedi.NewQueryParams().
				WithFilter("exclude_types[]", "follow").
				WithFilter("exclude_types[]", "favourite"),
			expected: url.Values{
				"exclude_types[]": []string{"follow", "favourite"},
			},
		},
		{
			name:   "with timeline flags",
			params: fedi.NewQueryParams().WithLocal(true).WithOnlyMedia(true),
			expected: url.Values{
				"local":      []string{"true"},
				"only_media": []string{"true"},
			},
		},
		{
			name:   "exclude flags are written independently",
			params: fedi.NewQueryParams().WithExcludeReplies(true).WithExcludeReblogs(false),
			expected: url.Values{
				"exclude_replies": []string{"true"},
				"exclude_reblogs": []string{"false"},
			},
		},
		{
			name: "combined",
			params: fedi.NewQueryParams().
				WithLimit(20).
				WithMaxID("103035").
				WithPinned(true),
			expected: url.Values{
				"limit":  []string{"20"},
				"max_id": []string{"103035"},
				"pinned": []string{"true"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.params.ToValues()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestQueryParams_BuilderChaining(t *testing.T) {
	t.Parallel()

	t.Run("WithCursor replaces earlier tokens", func(t *testing.T) {
		t.Parallel()

		params := fedi.NewQueryParams().
			WithSinceID("1").
			WithCursor(&fedi.PageCursor{Max: "9"})

		assert.Equal(t, url.Values{"max_id": []string{"9"}}, params.ToValues())
	})

	t.Run("token builders share one cursor", func(t *testing.T) {
		t.Parallel()

		params := fedi.NewQueryParams().WithSinceID("1").WithMaxID("2")

		assert.NotNil(t, params.Cursor)
		assert.Equal(t, "1", params.Cursor.Since)
		assert.Equal(t, "2", params.Cursor.Max)
	})

	t.Run("setFlag overwrites a repeated flag", func(t *testing.T) {
		t.Parallel()

		params := fedi.NewQueryParams().WithLocal(true).WithLocal(false)

		assert.Equal(t, url.Values{"local": []string{"false"}}, params.ToValues())
	})

	t.Run("builders return the same instance", func(t *testing.T) {
		t.Parallel()

		params := fedi.NewQueryParams()
		assert.Same(t, params, params.WithLimit(10))
		assert.Same(t, params, params.WithRemote(true))
		assert.Same(t, params, params.WithFilter("types[]", "mention"))
	})
}
