package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/extrim/quotesbook/internal/core/domain"
	"github.com/extrim/quotesbook/internal/logger"
)

// Mode selects how Execute treats a statement.
type Mode int

const (
	// ModeCheck reports whether the statement matched at least one row.
	ModeCheck Mode = iota
	// ModeEnumerate streams every matching row to the RowFunc.
	ModeEnumerate
	// ModeMutate executes a statement that changes the store.
	ModeMutate
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeEnumerate:
		return "enumerate"
	case ModeMutate:
		return "mutate"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Statement is a SQL text with its bound parameters.
type Statement struct {
	SQL  string
	Args []any
}

// RowFunc receives one (id, text) row during ModeEnumerate.
type RowFunc func(domain.Quote) error

// Result reports the outcome of Execute.
type Result struct {
	// Found is set by ModeCheck when a row matched.
	Found bool

	// Rows counts rows streamed (ModeEnumerate) or affected (ModeMutate).
	Rows int64

	// LastInsertID is set by ModeMutate for inserts.
	LastInsertID int64
}

// Gateway runs statements against the SQLite file at a fixed path.
type Gateway struct {
	path string
}

// NewGateway creates a gateway for the database file at path.
// The file is created by the driver on first use if it does not exist.
func NewGateway(path string) *Gateway {
	return &Gateway{path: path}
}

// Path returns the database file path.
func (g *Gateway) Path() string {
	return g.path
}

// Execute opens the store, runs stmt in the given mode and closes the
// statement and connection before returning, whatever the outcome.
func (g *Gateway) Execute(ctx context.Context, stmt Statement, mode Mode, fn RowFunc) (res Result, err error) {
	logger.Debug("sqlite %s: %s %v", mode, stmt.SQL, stmt.Args)

	db, err := g.open(ctx)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = domain.E(domain.KindStoreOpen, "close", closeErr, "closing database")
		}
	}()

	prepared, err := db.PrepareContext(ctx, stmt.SQL)
	if err != nil {
		return readsEmpty(mode, domain.E(domain.KindQuery, "prepare", err, "SQL error"))
	}
	defer prepared.Close()

	switch mode {
	case ModeCheck:
		res, err = check(ctx, prepared, stmt.Args)
	case ModeEnumerate:
		res, err = enumerate(ctx, prepared, stmt.Args, fn)
	case ModeMutate:
		return mutate(ctx, prepared, stmt.Args)
	default:
		return Result{}, domain.E(domain.KindQuery, "execute", nil, "unknown mode %s", mode)
	}
	if err != nil {
		return readsEmpty(mode, err)
	}
	return res, nil
}

// readsEmpty turns a missing quotes table into an empty result for reads.
// The driver compiles statements lazily, so the error can surface at
// prepare, query or the first step.
func readsEmpty(mode Mode, err error) (Result, error) {
	if mode != ModeMutate && isMissingTable(err) {
		logger.Debug("quotes table absent, treating as empty")
		return Result{}, nil
	}
	return Result{}, err
}

// dsn builds a file: URI for path so that '?' or '#' in a directory name
// stay part of the path.
func dsn(path string) string {
	escaped := (&url.URL{Path: path}).EscapedPath()
	return "file:" + escaped + "?_pragma=busy_timeout(5000)"
}

func (g *Gateway) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(g.path))
	if err != nil {
		return nil, domain.E(domain.KindStoreOpen, "open", err, "cannot open database")
	}

	// sql.Open is lazy; ping so a bad path fails here rather than at prepare.
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, domain.E(domain.KindStoreOpen, "open", err, "cannot open database")
	}

	db.SetMaxOpenConns(1)
	return db, nil
}

func check(ctx context.Context, stmt *sql.Stmt, args []any) (Result, error) {
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return Result{}, domain.E(domain.KindQuery, "check", err, "SQL error")
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return Result{}, domain.E(domain.KindQuery, "check", err, "SQL error")
	}
	return Result{Found: found}, nil
}

func enumerate(ctx context.Context, stmt *sql.Stmt, args []any, fn RowFunc) (Result, error) {
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return Result{}, domain.E(domain.KindQuery, "enumerate", err, "SQL error")
	}
	defer rows.Close()

	var res Result
	for rows.Next() {
		var q domain.Quote
		var text sql.NullString
		if err := rows.Scan(&q.ID, &text); err != nil {
			return res, domain.E(domain.KindQuery, "enumerate", err, "scanning quote")
		}
		q.Text = text.String
		res.Rows++
		if fn == nil {
			continue
		}
		if err := fn(q); err != nil {
			return res, err
		}
	}

	if err := rows.Err(); err != nil {
		return res, domain.E(domain.KindQuery, "enumerate", err, "iterating quotes")
	}
	return res, nil
}

func mutate(ctx context.Context, stmt *sql.Stmt, args []any) (Result, error) {
	r, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		if engineCode(err) == sqlite3.SQLITE_ERROR {
			return Result{}, domain.E(domain.KindQuery, "mutate", err, "SQL error")
		}
		return Result{}, domain.E(domain.KindWrite, "mutate", err, "error writing to db")
	}

	var res Result
	if n, err := r.RowsAffected(); err == nil {
		res.Rows = n
	}
	if id, err := r.LastInsertId(); err == nil {
		res.LastInsertID = id
	}
	return res, nil
}

// engineCode returns the primary SQLite result code carried by err, or 0.
func engineCode(err error) int {
	var e *sqlitedrv.Error
	if !errors.As(err, &e) {
		return 0
	}
	return e.Code() & 0xff
}

// isMissingTable reports a "no such table" compile error. SQLite reports it
// with the generic SQLITE_ERROR code, so the message narrows it down.
func isMissingTable(err error) bool {
	return engineCode(err) == sqlite3.SQLITE_ERROR && strings.Contains(err.Error(), "no such table")
}
