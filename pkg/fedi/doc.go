// Package fedi provides types, interfaces, and helpers for working with
// Mastodon-compatible fediverse APIs.
//
// # Overview
//
// The fedi package defines the domain types (e.g., Account, Status,
// Notification, MediaAttachment) and the interfaces for resource-oriented
// clients (e.g., AccountsClient, TimelinesClient). A concrete implementation
// of these clients is provided by the fediclient package, which wires
// configuration, transport, and authentication together. Most consumers
// should import fediclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fedikit-io/fedi-client/pkg/fedi"
//	  "github.com/fedikit-io/fedi-client/pkg/fediclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := fediclient.New(&fedi.Config{BaseURL: "https://mastodon.example"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Read the first page of the public timeline
//	  page := cli.Timelines().Public(ctx, fedi.NewQueryParams().WithLimit(20))
//	  statuses, _ := page.Items()
//	  _ = statuses
//	}
//
// # Results
//
// Every request builder returns a Result (or PagedResult for listings)
// rather than a Go error. A Result is one of exactly four outcomes: Success,
// Empty (204 No Content or 410 Gone), Error (non-2xx with the server's error
// payload), or Failure (transport fault or undecodable success body). Branch
// with the IsX predicates and accessors, or handle all four at once with
// Match. Err converts non-success outcomes to ordinary errors where a
// collaborator needs one.
//
// # Queries and pagination
//
// Use QueryParams to express list options (limit, cursor position, filters).
// Successful PagedResults carry next/previous PageCursors extracted from the
// Link response header; feed a cursor back via WithCursor to continue. The
// package also provides traversal helpers:
//
//	fetch := func(ctx context.Context, cursor *fedi.PageCursor) fedi.APIPagedResult[fedi.Status] {
//	  return cli.Timelines().Public(ctx, fedi.NewQueryParams().WithLimit(40).WithCursor(cursor))
//	}
//	it := fedi.NewPageIterator(fetch, nil)
//	for it.HasNext() {
//	  statuses, err := it.Next(ctx)
//	  if err != nil { break }
//	  _ = statuses
//	}
//
// or collect everything at once with FetchAllPages, or consume pages from a
// channel with StreamPages.
//
// # Errors
//
// Server error payloads decode into APIError, which records the HTTP status
// it arrived with. Helpers such as IsNotFound, IsUnauthorized, and
// IsRateLimited make it easy to branch on common cases after converting a
// Result with Err.
//
// # Interceptors
//
// The package includes request/response interceptors (logging, fixed
// headers, authentication, metrics) that hook into every call via Config.
// The fediclient package composes these pieces for a sensible default
// client; applications with advanced needs can also use the primitives
// directly.
package fedi
