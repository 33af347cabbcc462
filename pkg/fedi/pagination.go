package fedi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// PageCursor carries the opaque pagination tokens a server handed back for a
// page boundary. Since, Min, and Max map to the since_id, min_id, and max_id
// query parameters; an empty field means the server did not supply that
// token. The tokens are not ordered or comparable on the client side; they
// only make sense replayed back to the server that produced them. Cursors are
// plain values and can be copied freely.
type PageCursor struct {
	Since string `json:"since_id,omitempty" yaml:"since_id,omitempty"`
	Min   string `json:"min_id,omitempty"   yaml:"min_id,omitempty"`
	Max   string `json:"max_id,omitempty"   yaml:"max_id,omitempty"`
}

// IsZero reports whether the cursor carries no tokens at all.
func (c PageCursor) IsZero() bool {
	return c.Since == "" && c.Min == "" && c.Max == ""
}

// Values returns the cursor's tokens as request query parameters.
func (c PageCursor) Values() url.Values {
	values := url.Values{}
	c.ApplyTo(values)

	return values
}

// ApplyTo sets the cursor's non-empty tokens on an outgoing request's query
// parameters as since_id, min_id, and max_id.
func (c PageCursor) ApplyTo(values url.Values) {
	if c.Since != "" {
		values.Set("since_id", c.Since)
	}

	if c.Min != "" {
		values.Set("min_id", c.Min)
	}

	if c.Max != "" {
		values.Set("max_id", c.Max)
	}
}

// PageExtractor derives next/previous page cursors from a raw response.
// Every client carries exactly one; LinkPageExtractor is the default.
// Substituting an implementation for another pagination scheme (offset
// counters, body-embedded cursors) requires no change to dispatch.
type PageExtractor interface {
	PageInfo(resp *Response) (next, previous *PageCursor)
}

// LinkPageExtractor reads pagination cursors from the Link response header,
// the scheme Mastodon-compatible servers use on list endpoints:
//
//	Link: <https://host/path?max_id=123>; rel="next", <https://host/path?since_id=456>; rel="prev"
type LinkPageExtractor struct{}

// linkEntryPattern matches one Link header entry: <URL>; rel="REL".
var linkEntryPattern = regexp.MustCompile(`^<(.+)>; rel="(.+)"$`)

// PageInfo implements PageExtractor. Entries that do not match the
// `<URL>; rel="..."` shape are skipped without error, and when several
// entries claim the same rel the last one wins.
func (LinkPageExtractor) PageInfo(resp *Response) (*PageCursor, *PageCursor) {
	if resp == nil || resp.Headers == nil {
		return nil, nil
	}

	header := resp.Headers.Get("Link")
	if header == "" {
		return nil, nil
	}

	var next, previous *PageCursor

	for _, entry := range strings.Split(header, ", ") {
		match := linkEntryPattern.FindStringSubmatch(entry)
		if match == nil {
			continue
		}

		switch match[2] {
		case "next":
			next = cursorFromURL(match[1])
		case "prev":
			previous = cursorFromURL(match[1])
		}
	}

	return next, previous
}

// cursorFromURL pulls the pagination tokens out of a link target's query
// string. A target carrying none of the three tokens still yields a cursor,
// just an all-empty one.
func cursorFromURL(rawURL string) *PageCursor {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &PageCursor{}
	}

	query := parsed.Query()

	return &PageCursor{
		Since: query.Get("since_id"),
		Min:   query.Get("min_id"),
		Max:   query.Get("max_id"),
	}
}

// PageFetcher returns one page of a listing. A nil cursor requests the first
// page; later calls receive the next-page cursor extracted from the previous
// response. Fetchers own their page size: bake a limit into the request via
// QueryParams.WithLimit before handing the fetcher to an iterator.
type PageFetcher[T, E any] func(ctx context.Context, cursor *PageCursor) PagedResult[T, E]

// PaginationOptions bounds cursor traversal.
type PaginationOptions struct {
	// MaxPages stops traversal after this many pages; 0 means unbounded.
	MaxPages int
}

// DefaultPaginationOptions returns the traversal bounds used when none are
// supplied.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{MaxPages: 0}
}

// PaginationIterator walks a cursor-paginated listing item by item, fetching
// pages on demand through a PageFetcher.
type PaginationIterator[T, E any] struct {
	ctx     context.Context
	fetch   PageFetcher[T, E]
	options PaginationOptions
	buffer  []T
	next    *PageCursor
	pages   int
	started bool
	done    bool
}

// NewPaginationIterator returns an iterator over the items produced by
// fetch.
func NewPaginationIterator[T, E any](ctx context.Context, fetch PageFetcher[T, E], options *PaginationOptions) *PaginationIterator[T, E] {
	opts := PaginationOptions{}
	if options != nil {
		opts = *options
	}

	return &PaginationIterator[T, E]{ctx: ctx, fetch: fetch, options: opts}
}

// HasNext reports whether another item may be available. It is true before
// the first fetch and turns false once the buffered page is drained and the
// server stopped handing out a next cursor, the listing came back Empty, a
// fetch failed, or MaxPages was reached.
func (it *PaginationIterator[T, E]) HasNext() bool {
	if len(it.buffer) > 0 {
		return true
	}

	if it.done {
		return false
	}

	if it.options.MaxPages > 0 && it.pages >= it.options.MaxPages {
		return false
	}

	return !it.started || it.next != nil
}

// Next returns the next item, fetching the next page when the buffered one
// is drained. Error and Failure outcomes convert to Go errors; an exhausted
// listing returns ErrNoMoreItems.
func (it *PaginationIterator[T, E]) Next() (T, error) {
	var zero T

	for len(it.buffer) == 0 {
		if !it.HasNext() {
			return zero, ErrNoMoreItems
		}

		err := it.fetchNextPage()
		if err != nil {
			return zero, err
		}
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

func (it *PaginationIterator[T, E]) fetchNextPage() error {
	result := it.fetch(it.ctx, it.next)
	it.started = true
	it.pages++

	err := result.Err()
	if err != nil {
		it.done = true

		return fmt.Errorf("failed to fetch page %d: %w", it.pages, err)
	}

	if result.IsEmpty() {
		it.done = true

		return nil
	}

	items, _ := result.Items()
	it.buffer = append(it.buffer, items...)

	it.next = result.NextPage()
	if it.next == nil {
		it.done = true
	}

	return nil
}

// All collects every remaining item into a single slice.
func (it *PaginationIterator[T, E]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item, stopping at the first error.
func (it *PaginationIterator[T, E]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// FetchAllPages walks the listing from its first page and returns every
// item.
func FetchAllPages[T, E any](ctx context.Context, fetch PageFetcher[T, E], options *PaginationOptions) ([]T, error) {
	return NewPaginationIterator(ctx, fetch, options).All()
}

// PageChunk is one streamed page: Items when the fetch succeeded, Err when
// it did not. The channel closes once the listing is exhausted.
type PageChunk[T any] struct {
	Items []T
	Err   error
}

// streamPageBuffer is the channel depth for StreamPages.
const streamPageBuffer = 10

// StreamPages fetches pages in a goroutine and delivers them on the
// returned channel. The goroutine stops when the listing is exhausted, a
// fetch fails, or ctx is cancelled, and always closes the channel on the way
// out.
func StreamPages[T, E any](ctx context.Context, fetch PageFetcher[T, E], options *PaginationOptions) <-chan PageChunk[T] {
	opts := PaginationOptions{}
	if options != nil {
		opts = *options
	}

	out := make(chan PageChunk[T], streamPageBuffer)

	go func() {
		defer close(out)

		var cursor *PageCursor

		pages := 0

		for {
			if opts.MaxPages > 0 && pages >= opts.MaxPages {
				return
			}

			result := fetch(ctx, cursor)
			pages++

			err := result.Err()
			if err != nil {
				select {
				case out <- PageChunk[T]{Err: fmt.Errorf("failed to fetch page %d: %w", pages, err)}:
				case <-ctx.Done():
				}

				return
			}

			if result.IsEmpty() {
				return
			}

			items, _ := result.Items()
			if len(items) > 0 {
				select {
				case out <- PageChunk[T]{Items: items}:
				case <-ctx.Done():
					return
				}
			}

			cursor = result.NextPage()
			if cursor == nil {
				return
			}
		}
	}()

	return out
}
