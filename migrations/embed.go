// Package migrations embeds the SQL migration files for use with the goose
// programmatic API in tests and server bootstrap.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass it to goose.NewProvider so migrations ship inside the binary instead
// of depending on a filesystem path at runtime.
//
//go:embed *.sql
var FS embed.FS
