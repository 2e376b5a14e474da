// Package clickup provides types, interfaces, and helpers for reading the
// ClickUp v2 API.
//
// # Overview
//
// The clickup package defines the records of the ClickUp hierarchy (Team,
// Space, Folder, List, Task, View) and the interfaces of the resource
// clients that fetch them. A concrete implementation is provided by the
// cuclient package:
//
//	cli, err := cuclient.New(ctx, &clickup.Config{Token: os.Getenv("CLICKUP_TOKEN")})
//	if err != nil { log.Fatal(err) }
//
//	teams, err := cli.Teams().GetTeams(ctx)
//
// # Decoding
//
// Records decode leniently. Members a record does not declare, and declared
// members whose JSON kind does not match, are kept in the record's Extra map
// and written back on encode.
//
// # Strict validation
//
// Every record has a Shape describing its JSON form. ParseTeam, ParseSpace
// and friends validate a document against that shape before decoding it and
// report the first mismatch as a *ValidationError naming the key and path.
// The SerializeX functions validate the encoded record the same way.
// Setting Config.StrictValidation applies the shapes to every API response.
//
// # Errors
//
// Non-2xx responses are *HTTPError, network failures *TransportError,
// malformed bodies *ParseError. Use IsNotFound, IsUnauthorized and
// StatusCode to inspect them.
package clickup
