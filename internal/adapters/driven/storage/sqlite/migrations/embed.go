// Package migrations embeds the SQL schema files for the SQLite store.
// Every file must be idempotent: EnsureSchema runs all of them on each write.
package migrations

import "embed"

// FS contains all SQL schema files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
