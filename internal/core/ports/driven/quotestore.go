package driven

import (
	"context"

	"github.com/extrim/quotesbook/internal/core/domain"
)

// Query selects the rows a Scan visits.
// The zero value selects every quote in id order.
type Query struct {
	// ID restricts the scan to a single quote when non-zero.
	ID int64

	// Random picks a single row using the engine's random ordering.
	// Ignored when ID is set.
	Random bool
}

// QuoteFunc receives one row of a Scan. Returning an error stops the scan.
type QuoteFunc func(domain.Quote) error

// QuoteStore persists quotes.
// Each call is a complete open/execute/close cycle; implementations hold
// no connection between calls.
type QuoteStore interface {
	// EnsureSchema creates the quotes table if it is absent.
	EnsureSchema(ctx context.Context) error

	// Insert stores text and returns the assigned id.
	Insert(ctx context.Context, text string) (int64, error)

	// Exists reports whether a quote with id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Scan streams every quote matched by q to fn.
	// A store with no quotes table yields no rows.
	Scan(ctx context.Context, q Query, fn QuoteFunc) error

	// Delete removes the quote with id and reports how many rows went.
	Delete(ctx context.Context, id int64) (int64, error)
}
