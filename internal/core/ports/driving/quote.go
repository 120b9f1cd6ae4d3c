package driving

import (
	"context"
	"io"

	"github.com/extrim/quotesbook/internal/core/domain"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer func() (bool, error)

// QuoteService performs the quote book operations. Every method runs
// exactly one operation against the store.
type QuoteService interface {
	// Show writes the quote with id in numbered form.
	// Returns domain.ErrNotFound if no such quote exists.
	Show(ctx context.Context, w io.Writer, id int64) error

	// List writes every quote's text, one per line.
	List(ctx context.Context, w io.Writer) error

	// Random writes the text of one randomly chosen quote.
	// Returns domain.ErrNotFound on an empty store.
	Random(ctx context.Context, w io.Writer) error

	// Append validates and stores text, returning the stored quote.
	// Returns domain.ErrTooShort when text is not longer than MinLength.
	Append(ctx context.Context, text string) (*domain.Quote, error)

	// Delete removes the quote with id once confirm approves.
	// Returns domain.ErrNotFound if absent and domain.ErrAborted if declined.
	Delete(ctx context.Context, id int64, confirm Confirmer) error

	// MinLength returns the length appended text must exceed.
	MinLength() int
}
