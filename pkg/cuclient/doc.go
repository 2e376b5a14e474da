// Package cuclient provides the primary entry point for constructing a
// ClickUp API client that implements the clickup.Client interface.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/fivetwenty-io/clickup-client/pkg/cuclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := cuclient.NewWithToken(ctx, os.Getenv("CLICKUP_TOKEN"))
//	  if err != nil { log.Fatal(err) }
//
//	  teams, err := cli.Teams().GetTeams(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = teams
//	}
//
// Set clickup.Config.StrictValidation to check every response against the
// record shapes before it is decoded.
package cuclient
