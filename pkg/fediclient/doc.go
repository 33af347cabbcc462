// Package fediclient provides the primary entry point for constructing a
// client that implements the fedi.Client interface against any
// Mastodon-compatible server.
//
// It wires configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the fedi package. Most
// applications should import fediclient to build a client, then use the
// returned fedi.Client to access resource-specific clients, for example
// Accounts(), Statuses(), Timelines(), etc.
//
// Quick start
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
//
//	  // Minimal: just a server (public endpoints only).
//	  cli, err := fediclient.NewWithServer("mastodon.social")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = fediclient.New(&fedi.Config{
//	    BaseURL:     "https://mastodon.social",
//	    AccessToken: "eyJhbGciOi...", // bearer token
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the fedi.Client interface. Every call
//	  // returns a Result; inspect the variant instead of an error value.
//	  result := cli.Timelines().Public(ctx, fedi.NewQueryParams().WithLimit(10))
//	  statuses, ok := result.Items()
//	  if !ok { log.Fatal(result.Err()) }
//	  _ = statuses
//	}
//
// Tokens are plain configured values. The library never runs an OAuth flow on
// its own; use the OAuth() request builders to obtain a token, then hand it
// to the client via Config.AccessToken or SetAccessToken.
//
// # Helpers
//
// The package also provides convenience constructors NewWithServer and
// NewWithToken that wrap New with the appropriate configuration.
package fediclient
