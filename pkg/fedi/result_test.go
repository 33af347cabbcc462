package fedi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedikit-io/fedi-client/pkg/fedi"
)

func TestResult_Success(t *testing.T) {
	t.Parallel()

	result := fedi.NewSuccess[fedi.Account, fedi.APIError](fedi.Account{ID: "1", Username: "gargron"})

	assert.True(t, result.IsSuccess())
	assert.False(t, result.IsEmpty())
	assert.False(t, result.IsError())
	assert.False(t, result.IsFailure())

	value, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, "gargron", value.Username)

	payload, ok := result.ErrorPayload()
	assert.False(t, ok)
	assert.Nil(t, payload)
	assert.NoError(t, result.Cause())

	_, ok = result.RawBody()
	assert.False(t, ok)

	assert.NoError(t, result.Err())
}

func TestResult_Success_RawString(t *testing.T) {
	t.Parallel()

	// Endpoints whose body is not worth modeling surface it verbatim,
	// including a literal "{}".
	var result fedi.APIResult[string] = fedi.NewSuccess[string, fedi.APIError]("{}")

	value, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, "{}", value)
}

func TestResult_Empty(t *testing.T) {
	t.Parallel()

	result := fedi.NewEmpty[fedi.Account, fedi.APIError]()

	assert.True(t, result.IsEmpty())
	assert.False(t, result.IsSuccess())

	value, ok := result.Value()
	assert.False(t, ok)
	assert.Empty(t, value.ID)

	assert.NoError(t, result.Err())
}

func TestResult_Error(t *testing.T) {
	t.Parallel()

	apiErr := &fedi.APIError{Message: "Record not found", StatusCode: 404}
	result := fedi.NewError[fedi.Account](apiErr)

	assert.True(t, result.IsError())
	assert.False(t, result.IsSuccess())
	assert.False(t, result.IsFailure())

	payload, ok := result.ErrorPayload()
	require.True(t, ok)
	require.NotNil(t, payload)
	assert.Equal(t, "Record not found", payload.Message)

	err := result.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, fedi.ErrServerError)

	var extracted *fedi.APIError

	require.ErrorAs(t, err, &extracted)
	assert.Equal(t, 404, extracted.StatusCode)
}

func TestResult_Error_NilPayload(t *testing.T) {
	t.Parallel()

	// A non-2xx response whose body would not decode still reports as a
	// server error, just without details.
	result := fedi.NewError[fedi.Account, fedi.APIError](nil)

	assert.True(t, result.IsError())

	payload, ok := result.ErrorPayload()
	assert.True(t, ok)
	assert.Nil(t, payload)

	assert.ErrorIs(t, result.Err(), fedi.ErrServerError)
}

func TestResult_Failure(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	rawBody := `<html>not json</html>`
	result := fedi.NewFailure[fedi.Account, fedi.APIError](cause, &rawBody)

	assert.True(t, result.IsFailure())
	assert.False(t, result.IsError())

	assert.Equal(t, cause, result.Cause())

	body, ok := result.RawBody()
	require.True(t, ok)
	assert.Equal(t, rawBody, body)

	err := result.Err()
	assert.ErrorIs(t, err, fedi.ErrRequestFailed)
	assert.ErrorIs(t, err, cause)
}

func TestResult_Failure_NoBody(t *testing.T) {
	t.Parallel()

	result := fedi.NewFailure[fedi.Account, fedi.APIError](errors.New("dial tcp: timeout"), nil)

	_, ok := result.RawBody()
	assert.False(t, ok, "Transport faults happen before any body is read")
}

func TestResult_ZeroValue(t *testing.T) {
	t.Parallel()

	var result fedi.Result[fedi.Account, fedi.APIError]

	assert.False(t, result.IsSuccess())
	assert.False(t, result.IsEmpty())
	assert.False(t, result.IsError())
	assert.False(t, result.IsFailure())
	assert.ErrorIs(t, result.Err(), fedi.ErrUninitializedResult)
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestResult_Match(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var handled string

		fedi.NewSuccess[string, fedi.APIError]("ok").Match(
			func(value string) { handled = "success:" + value },
			func() { handled = "empty" },
			func(*fedi.APIError) { handled = "error" },
			func(error, *string) { handled = "failure" },
		)
		assert.Equal(t, "success:ok", handled)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var handled string

		fedi.NewEmpty[string, fedi.APIError]().Match(
			func(string) { handled = "success" },
			func() { handled = "empty" },
			func(*fedi.APIError) { handled = "error" },
			func(error, *string) { handled = "failure" },
		)
		assert.Equal(t, "empty", handled)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		var handled string

		fedi.NewError[string](&fedi.APIError{Message: "Unprocessable"}).Match(
			func(string) { handled = "success" },
			func() { handled = "empty" },
			func(payload *fedi.APIError) { handled = "error:" + payload.Message },
			func(error, *string) { handled = "failure" },
		)
		assert.Equal(t, "error:Unprocessable", handled)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		var handled string

		fedi.NewFailure[string, fedi.APIError](errors.New("boom"), nil).Match(
			func(string) { handled = "success" },
			func() { handled = "empty" },
			func(*fedi.APIError) { handled = "error" },
			func(cause error, _ *string) { handled = "failure:" + cause.Error() },
		)
		assert.Equal(t, "failure:boom", handled)
	})

	t.Run("missing callback panics", func(t *testing.T) {
		t.Parallel()

		result := fedi.NewEmpty[string, fedi.APIError]()
		assert.Panics(t, func() {
			result.Match(nil, func() {}, func(*fedi.APIError) {}, func(error, *string) {})
		})
	})

	t.Run("zero value panics", func(t *testing.T) {
		t.Parallel()

		var result fedi.Result[string, fedi.APIError]

		assert.Panics(t, func() {
			result.Match(func(string) {}, func() {}, func(*fedi.APIError) {}, func(error, *string) {})
		})
	})
}

func TestPagedResult_Success(t *testing.T) {
	t.Parallel()

	next := &fedi.PageCursor{Max: "7486869"}
	previous := &fedi.PageCursor{Since: "7489740"}
	statuses := []fedi.Status{{ID: "1"}, {ID: "2"}}

	result := fedi.NewPagedSuccess[fedi.Status, fedi.APIError](statuses, next, previous)

	assert.True(t, result.IsSuccess())

	items, ok := result.Items()
	require.True(t, ok)
	assert.Len(t, items, 2)
	assert.Equal(t, next, result.NextPage())
	assert.Equal(t, previous, result.PreviousPage())
	assert.NoError(t, result.Err())
}

func TestPagedResult_Success_LastPage(t *testing.T) {
	t.Parallel()

	result := fedi.NewPagedSuccess[fedi.Status, fedi.APIError]([]fedi.Status{{ID: "9"}}, nil, nil)

	assert.True(t, result.IsSuccess())
	assert.Nil(t, result.NextPage())
	assert.Nil(t, result.PreviousPage())
}

func TestPagedResult_NonSuccessVariants(t *testing.T) {
	t.Parallel()

	empty := fedi.NewPagedEmpty[fedi.Status, fedi.APIError]()
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, empty.NextPage())
	assert.NoError(t, empty.Err())

	errResult := fedi.NewPagedError[fedi.Status](&fedi.APIError{Message: "Unauthorized"})
	assert.True(t, errResult.IsError())
	assert.ErrorIs(t, errResult.Err(), fedi.ErrServerError)

	items, ok := errResult.Items()
	assert.False(t, ok)
	assert.Nil(t, items)

	cause := errors.New("read timeout")
	failure := fedi.NewPagedFailure[fedi.Status, fedi.APIError](cause, nil)
	assert.True(t, failure.IsFailure())
	assert.ErrorIs(t, failure.Err(), cause)
}

func TestPagedResult_Match(t *testing.T) {
	t.Parallel()

	var count int

	fedi.NewPagedSuccess[string, fedi.APIError]([]string{"a", "b"}, &fedi.PageCursor{Max: "3"}, nil).Match(
		func(items []string, next, previous *fedi.PageCursor) {
			count = len(items)

			assert.NotNil(t, next)
			assert.Nil(t, previous)
		},
		func() {},
		func(*fedi.APIError) {},
		func(error, *string) {},
	)
	assert.Equal(t, 2, count)
}
