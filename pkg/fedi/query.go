package fedi

import (
	"net/url"
	"strconv"
)

// QueryParams captures the options shared by list endpoints: a page size
// limit, a cursor position, and endpoint-specific filter parameters. The
// WithX builders chain:
//
//	params := fedi.NewQueryParams().WithLimit(40).WithOnlyMedia(true)
type QueryParams struct {
	// Limit is the requested page size; 0 leaves the server default.
	Limit int
	// Cursor positions the request at a boundary previously extracted from a
	// response.
	Cursor *PageCursor
	// Filters holds any additional query parameters verbatim.
	Filters url.Values
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: url.Values{},
	}
}

// WithLimit sets the requested page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithCursor positions the request at a page boundary. The cursor replaces
// any cursor tokens set earlier.
func (q *QueryParams) WithCursor(cursor *PageCursor) *QueryParams {
	q.Cursor = cursor

	return q
}

// WithSinceID asks for items newer than the given ID.
func (q *QueryParams) WithSinceID(id string) *QueryParams {
	q.ensureCursor().Since = id

	return q
}

// WithMinID asks for items immediately newer than the given ID.
func (q *QueryParams) WithMinID(id string) *QueryParams {
	q.ensureCursor().Min = id

	return q
}

// WithMaxID asks for items older than the given ID.
func (q *QueryParams) WithMaxID(id string) *QueryParams {
	q.ensureCursor().Max = id

	return q
}

// WithFilter appends an arbitrary query parameter. Repeated keys accumulate,
// which is how array parameters such as "exclude_types[]" are expressed.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = url.Values{}
	}

	q.Filters.Add(key, value)

	return q
}

// WithLocal restricts a timeline to statuses local to the server.
func (q *QueryParams) WithLocal(local bool) *QueryParams {
	return q.setFlag("local", local)
}

// WithRemote restricts a timeline to statuses from other servers.
func (q *QueryParams) WithRemote(remote bool) *QueryParams {
	return q.setFlag("remote", remote)
}

// WithOnlyMedia restricts a listing to statuses carrying attachments.
func (q *QueryParams) WithOnlyMedia(onlyMedia bool) *QueryParams {
	return q.setFlag("only_media", onlyMedia)
}

// WithExcludeReplies drops replies from an account's statuses listing.
func (q *QueryParams) WithExcludeReplies(exclude bool) *QueryParams {
	return q.setFlag("exclude_replies", exclude)
}

// WithExcludeReblogs drops boosts from an account's statuses listing.
func (q *QueryParams) WithExcludeReblogs(exclude bool) *QueryParams {
	return q.setFlag("exclude_reblogs", exclude)
}

// WithPinned restricts an account's statuses listing to pinned statuses.
func (q *QueryParams) WithPinned(pinned bool) *QueryParams {
	return q.setFlag("pinned", pinned)
}

func (q *QueryParams) setFlag(key string, value bool) *QueryParams {
	if q.Filters == nil {
		q.Filters = url.Values{}
	}

	q.Filters.Set(key, strconv.FormatBool(value))

	return q
}

func (q *QueryParams) ensureCursor() *PageCursor {
	if q.Cursor == nil {
		q.Cursor = &PageCursor{}
	}

	return q.Cursor
}

// ToValues converts the parameters to url.Values for an outgoing request.
// A nil receiver yields empty values, so callers can pass params through
// unconditionally.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Cursor != nil {
		q.Cursor.ApplyTo(values)
	}

	for key, list := range q.Filters {
		for _, value := range list {
			values.Add(key, value)
		}
	}

	return values
}
