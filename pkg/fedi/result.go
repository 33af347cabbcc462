package fedi

import (
	"fmt"
)

// resultKind discriminates the four outcome variants.
type resultKind uint8

const (
	kindSuccess resultKind = iota + 1
	kindEmpty
	kindError
	kindFailure
)

// Result is the outcome of a single-object API call. Exactly one of four
// variants is populated per call:
//
//   - Success: the call completed and the body decoded into T.
//   - Empty: the call completed with no content (status 204) or the resource
//     is gone (status 410).
//   - Error: the server rejected the call with a non-2xx status; the decoded
//     error payload may be nil when the error body itself was unreadable.
//   - Failure: the call never completed or the success body could not be
//     decoded; carries the cause and any body text read before the fault.
//
// Dispatch encodes every outcome of a remote call in a Result value and never
// signals through a separate Go error or a panic.
type Result[T, E any] struct {
	kind     resultKind
	value    T
	errValue *E
	cause    error
	rawBody  *string
}

// NewSuccess returns a Result carrying a decoded success payload.
func NewSuccess[T, E any](value T) Result[T, E] {
	return Result[T, E]{kind: kindSuccess, value: value}
}

// NewEmpty returns the Result for a completed call with no usable body:
// 204 No Content or 410 Gone.
func NewEmpty[T, E any]() Result[T, E] {
	return Result[T, E]{kind: kindEmpty}
}

// NewError returns a Result for a non-2xx response. payload is nil when the
// error body could not be decoded; the call still counts as a server error,
// details unavailable.
func NewError[T, E any](payload *E) Result[T, E] {
	return Result[T, E]{kind: kindError, errValue: payload}
}

// NewFailure returns a Result for a call that could not be completed: a
// transport fault or a success body that would not decode. rawBody holds any
// body text captured before the fault, nil when none was read.
func NewFailure[T, E any](cause error, rawBody *string) Result[T, E] {
	return Result[T, E]{kind: kindFailure, cause: cause, rawBody: rawBody}
}

// IsSuccess reports whether the Success variant is populated.
func (r Result[T, E]) IsSuccess() bool { return r.kind == kindSuccess }

// IsEmpty reports whether the Empty variant is populated.
func (r Result[T, E]) IsEmpty() bool { return r.kind == kindEmpty }

// IsError reports whether the Error variant is populated.
func (r Result[T, E]) IsError() bool { return r.kind == kindError }

// IsFailure reports whether the Failure variant is populated.
func (r Result[T, E]) IsFailure() bool { return r.kind == kindFailure }

// Value returns the success payload. The second return is false for every
// variant other than Success.
func (r Result[T, E]) Value() (T, bool) {
	if r.kind != kindSuccess {
		var zero T

		return zero, false
	}

	return r.value, true
}

// ErrorPayload returns the decoded server error. The second return is true
// only for the Error variant; the payload itself may still be nil when the
// error body was unreadable.
func (r Result[T, E]) ErrorPayload() (*E, bool) {
	if r.kind != kindError {
		return nil, false
	}

	return r.errValue, true
}

// Cause returns the underlying fault of a Failure, nil for other variants.
func (r Result[T, E]) Cause() error {
	if r.kind != kindFailure {
		return nil
	}

	return r.cause
}

// RawBody returns the body text captured before a Failure. The second return
// is false when no body was read (transport fault) or for other variants.
func (r Result[T, E]) RawBody() (string, bool) {
	if r.kind != kindFailure || r.rawBody == nil {
		return "", false
	}

	return *r.rawBody, true
}

// Err converts a non-success outcome into a Go error for collaborator layers
// such as iterators and CLIs. Success and Empty yield nil; Error yields the
// payload (wrapped when it implements error, ErrServerError otherwise);
// Failure yields the wrapped cause.
func (r Result[T, E]) Err() error {
	return resultErr(r.kind, r.errValue, r.cause)
}

// Match dispatches on the populated variant. All four callbacks are required;
// Match panics when one is missing or the Result is the zero value, making a
// non-exhaustive handler a programming error instead of a silent skip.
func (r Result[T, E]) Match(
	onSuccess func(value T),
	onEmpty func(),
	onError func(payload *E),
	onFailure func(cause error, rawBody *string),
) {
	if onSuccess == nil || onEmpty == nil || onError == nil || onFailure == nil {
		panic("fedi: Result.Match requires all four callbacks")
	}

	switch r.kind {
	case kindSuccess:
		onSuccess(r.value)
	case kindEmpty:
		onEmpty()
	case kindError:
		onError(r.errValue)
	case kindFailure:
		onFailure(r.cause, r.rawBody)
	default:
		panic("fedi: Match called on a zero-value Result")
	}
}

// PagedResult is the outcome of a list-returning API call. The variant set
// matches Result; Success additionally carries the page cursors extracted
// from the response so traversal can resume in either direction.
type PagedResult[T, E any] struct {
	kind     resultKind
	items    []T
	next     *PageCursor
	previous *PageCursor
	errValue *E
	cause    error
	rawBody  *string
}

// NewPagedSuccess returns a PagedResult carrying one page of items plus the
// cursors for the neighboring pages, either of which may be nil.
func NewPagedSuccess[T, E any](items []T, next, previous *PageCursor) PagedResult[T, E] {
	return PagedResult[T, E]{kind: kindSuccess, items: items, next: next, previous: previous}
}

// NewPagedEmpty returns the PagedResult for a 204 or 410 response.
func NewPagedEmpty[T, E any]() PagedResult[T, E] {
	return PagedResult[T, E]{kind: kindEmpty}
}

// NewPagedError returns a PagedResult for a non-2xx response.
func NewPagedError[T, E any](payload *E) PagedResult[T, E] {
	return PagedResult[T, E]{kind: kindError, errValue: payload}
}

// NewPagedFailure returns a PagedResult for a call that could not be
// completed.
func NewPagedFailure[T, E any](cause error, rawBody *string) PagedResult[T, E] {
	return PagedResult[T, E]{kind: kindFailure, cause: cause, rawBody: rawBody}
}

// IsSuccess reports whether the Success variant is populated.
func (r PagedResult[T, E]) IsSuccess() bool { return r.kind == kindSuccess }

// IsEmpty reports whether the Empty variant is populated.
func (r PagedResult[T, E]) IsEmpty() bool { return r.kind == kindEmpty }

// IsError reports whether the Error variant is populated.
func (r PagedResult[T, E]) IsError() bool { return r.kind == kindError }

// IsFailure reports whether the Failure variant is populated.
func (r PagedResult[T, E]) IsFailure() bool { return r.kind == kindFailure }

// Items returns the page's items. The second return is false for every
// variant other than Success.
func (r PagedResult[T, E]) Items() ([]T, bool) {
	if r.kind != kindSuccess {
		return nil, false
	}

	return r.items, true
}

// NextPage returns the cursor for the following page, nil when the server
// offered none or the variant is not Success.
func (r PagedResult[T, E]) NextPage() *PageCursor {
	if r.kind != kindSuccess {
		return nil
	}

	return r.next
}

// PreviousPage returns the cursor for the preceding page, nil when the server
// offered none or the variant is not Success.
func (r PagedResult[T, E]) PreviousPage() *PageCursor {
	if r.kind != kindSuccess {
		return nil
	}

	return r.previous
}

// ErrorPayload returns the decoded server error for the Error variant.
func (r PagedResult[T, E]) ErrorPayload() (*E, bool) {
	if r.kind != kindError {
		return nil, false
	}

	return r.errValue, true
}

// Cause returns the underlying fault of a Failure, nil for other variants.
func (r PagedResult[T, E]) Cause() error {
	if r.kind != kindFailure {
		return nil
	}

	return r.cause
}

// RawBody returns the body text captured before a Failure.
func (r PagedResult[T, E]) RawBody() (string, bool) {
	if r.kind != kindFailure || r.rawBody == nil {
		return "", false
	}

	return *r.rawBody, true
}

// Err converts a non-success outcome into a Go error, mirroring Result.Err.
func (r PagedResult[T, E]) Err() error {
	return resultErr(r.kind, r.errValue, r.cause)
}

// Match dispatches on the populated variant, requiring all four callbacks
// like Result.Match.
func (r PagedResult[T, E]) Match(
	onSuccess func(items []T, next, previous *PageCursor),
	onEmpty func(),
	onError func(payload *E),
	onFailure func(cause error, rawBody *string),
) {
	if onSuccess == nil || onEmpty == nil || onError == nil || onFailure == nil {
		panic("fedi: PagedResult.Match requires all four callbacks")
	}

	switch r.kind {
	case kindSuccess:
		onSuccess(r.items, r.next, r.previous)
	case kindEmpty:
		onEmpty()
	case kindError:
		onError(r.errValue)
	case kindFailure:
		onFailure(r.cause, r.rawBody)
	default:
		panic("fedi: Match called on a zero-value PagedResult")
	}
}

// resultErr is the shared Err conversion for both result flavors.
func resultErr[E any](kind resultKind, errValue *E, cause error) error {
	switch kind {
	case kindSuccess, kindEmpty:
		return nil
	case kindError:
		if errValue == nil {
			return ErrServerError
		}

		if err, ok := any(errValue).(error); ok {
			return fmt.Errorf("%w: %w", ErrServerError, err)
		}

		return fmt.Errorf("%w: %+v", ErrServerError, *errValue)
	case kindFailure:
		if cause == nil {
			return ErrRequestFailed
		}

		return fmt.Errorf("%w: %w", ErrRequestFailed, cause)
	default:
		return ErrUninitializedResult
	}
}

// APIResult is the Result specialization every request builder in this module
// returns: success payloads vary per endpoint, the error payload is always
// the server's APIError.
type APIResult[T any] = Result[T, APIError]

// APIPagedResult is the list counterpart of APIResult.
type APIPagedResult[T any] = PagedResult[T, APIError]
