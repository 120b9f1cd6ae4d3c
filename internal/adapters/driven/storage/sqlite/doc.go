// Package sqlite provides the SQLite-backed implementation of driven.QuoteStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Gateway
//
// All statements go through Gateway.Execute, which opens the database file,
// prepares the statement, runs it in one of three modes and then closes the
// statement and the connection before returning. No connection outlives a
// single call:
//
//   - ModeCheck: report whether at least one row matched
//   - ModeEnumerate: stream matching rows to a callback
//   - ModeMutate: run an insert, delete or schema statement
//
// Values are always bound as statement parameters, never interpolated.
//
// # Schema
//
// The schema lives in migrations/ as idempotent .up.sql files. It is applied
// lazily by EnsureSchema, which callers run before the first write.
//
// # Data Location
//
// By default, the database is stored at ~/.quotesbook/quotes.db
package sqlite
