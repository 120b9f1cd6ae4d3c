package sqlite

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/extrim/quotesbook/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/extrim/quotesbook/internal/core/ports/driven"
)

const (
	selectByID   = "SELECT id, quote FROM Quotes WHERE id = ?"
	selectAll    = "SELECT id, quote FROM Quotes ORDER BY id"
	selectRandom = "SELECT id, quote FROM Quotes ORDER BY RANDOM() LIMIT 1"
	insertQuote  = "INSERT INTO Quotes (quote) VALUES (?)"
	deleteQuote  = "DELETE FROM Quotes WHERE id = ?"
	existsQuote  = "SELECT 1 FROM Quotes WHERE id = ?"
	schemaSuffix = ".up.sql"
)

// Ensure Store implements the interface.
var _ driven.QuoteStore = (*Store)(nil)

// Store implements driven.QuoteStore on top of a Gateway.
type Store struct {
	gw     *Gateway
	schema embed.FS
}

// NewStore creates a quote store for the database file at path.
// Nothing is opened until the first operation.
func NewStore(path string) *Store {
	return &Store{
		gw:     NewGateway(path),
		schema: migrations.FS,
	}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.gw.Path()
}

// EnsureSchema applies every embedded schema file in lexical order.
func (s *Store) EnsureSchema(ctx context.Context) error {
	entries, err := fs.ReadDir(s.schema, ".")
	if err != nil {
		return fmt.Errorf("reading schema directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), schemaSuffix) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := fs.ReadFile(s.schema, name)
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", name, err)
		}
		if _, err := s.gw.Execute(ctx, Statement{SQL: string(content)}, ModeMutate, nil); err != nil {
			return fmt.Errorf("applying schema %s: %w", name, err)
		}
	}
	return nil
}

// Insert stores text and returns the assigned id.
func (s *Store) Insert(ctx context.Context, text string) (int64, error) {
	res, err := s.gw.Execute(ctx, Statement{SQL: insertQuote, Args: []any{text}}, ModeMutate, nil)
	if err != nil {
		return 0, fmt.Errorf("inserting quote: %w", err)
	}
	return res.LastInsertID, nil
}

// Exists reports whether a quote with id is stored.
func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	res, err := s.gw.Execute(ctx, Statement{SQL: existsQuote, Args: []any{id}}, ModeCheck, nil)
	if err != nil {
		return false, fmt.Errorf("checking quote %d: %w", id, err)
	}
	return res.Found, nil
}

// Scan streams the quotes selected by q to fn.
func (s *Store) Scan(ctx context.Context, q driven.Query, fn driven.QuoteFunc) error {
	stmt := Statement{SQL: selectAll}
	switch {
	case q.ID != 0:
		stmt = Statement{SQL: selectByID, Args: []any{q.ID}}
	case q.Random:
		stmt = Statement{SQL: selectRandom}
	}

	if _, err := s.gw.Execute(ctx, stmt, ModeEnumerate, RowFunc(fn)); err != nil {
		return fmt.Errorf("reading quotes: %w", err)
	}
	return nil
}

// Delete removes the quote with id.
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.gw.Execute(ctx, Statement{SQL: deleteQuote, Args: []any{id}}, ModeMutate, nil)
	if err != nil {
		return 0, fmt.Errorf("deleting quote %d: %w", id, err)
	}
	return res.Rows, nil
}
