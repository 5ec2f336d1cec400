// Package migrations embeds the goose SQL migrations so the binary can
// apply them at startup without a migrations directory on disk.
package migrations

import "embed"

// FS holds the embedded migration files.
//
//go:embed *.sql
var FS embed.FS
