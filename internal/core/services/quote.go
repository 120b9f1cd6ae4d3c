package services

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/extrim/quotesbook/internal/core/domain"
	"github.com/extrim/quotesbook/internal/core/ports/driven"
	"github.com/extrim/quotesbook/internal/core/ports/driving"
	"github.com/extrim/quotesbook/internal/logger"
)

// Ensure QuoteService implements the interface.
var _ driving.QuoteService = (*QuoteService)(nil)

// keyMinLength overrides domain.DefaultMinLength from the config file.
const keyMinLength = "quotes.min_length"

// QuoteService runs quote book operations against a QuoteStore.
type QuoteService struct {
	store     driven.QuoteStore
	validate  *validator.Validate
	minLength int
}

// NewQuoteService creates a new quote service.
// configStore may be nil, in which case defaults apply.
func NewQuoteService(store driven.QuoteStore, configStore driven.ConfigStore) *QuoteService {
	minLength := domain.DefaultMinLength
	if configStore != nil {
		minLength = configStore.GetInt(keyMinLength, domain.DefaultMinLength)
	}
	if minLength < 0 {
		minLength = 0
	}

	return &QuoteService{
		store:     store,
		validate:  validator.New(),
		minLength: minLength,
	}
}

// MinLength returns the length appended text must exceed.
func (s *QuoteService) MinLength() int {
	return s.minLength
}

// Show writes the quote with id as "id: text".
func (s *QuoteService) Show(ctx context.Context, w io.Writer, id int64) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}
	_, err := s.print(ctx, w, driven.Query{ID: id}, domain.StyleNumbered)
	return err
}

// List writes every quote's text, one per line.
func (s *QuoteService) List(ctx context.Context, w io.Writer) error {
	n, err := s.print(ctx, w, driven.Query{}, domain.StylePlain)
	logger.Debug("listed %d quote(s)", n)
	return err
}

// Random writes the text of one randomly chosen quote.
func (s *QuoteService) Random(ctx context.Context, w io.Writer) error {
	n, err := s.print(ctx, w, driven.Query{Random: true}, domain.StylePlain)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.E(domain.KindNotFound, "random", domain.ErrNotFound, "there are no quotes in the book yet")
	}
	return nil
}

// Append validates and stores text.
func (s *QuoteService) Append(ctx context.Context, text string) (*domain.Quote, error) {
	text = domain.Trim(text)

	// validator's min rule counts runes for strings.
	if err := s.validate.Var(text, "min="+strconv.Itoa(s.minLength+1)); err != nil {
		logger.Debug("rejecting %d character(s): %v", len([]rune(text)), err)
		return nil, domain.ErrTooShort
	}

	if err := s.store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("can't create db table: %w", err)
	}

	id, err := s.store.Insert(ctx, text)
	if err != nil {
		return nil, err
	}

	return &domain.Quote{ID: id, Text: text}, nil
}

// Delete removes the quote with id once confirm approves.
func (s *QuoteService) Delete(ctx context.Context, id int64, confirm driving.Confirmer) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}

	ok, err := confirm()
	if err != nil {
		return domain.E(domain.KindReadInput, "confirm", err, "reading confirmation")
	}
	if !ok {
		return domain.E(domain.KindAborted, "delete", domain.ErrAborted, "")
	}

	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	logger.Debug("deleted %d row(s) for id %d", n, id)
	return nil
}

func (s *QuoteService) mustExist(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.E(domain.KindInvalidID, "check", domain.ErrInvalidID, "wrong identifier: %d", id)
	}

	found, err := s.store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.E(domain.KindNotFound, "check", domain.ErrNotFound,
			"there is no such value in db! Look all entry list by -l key")
	}
	return nil
}

func (s *QuoteService) print(ctx context.Context, w io.Writer, q driven.Query, style domain.Style) (int, error) {
	n := 0
	err := s.store.Scan(ctx, q, func(quote domain.Quote) error {
		n++
		if _, err := fmt.Fprintln(w, quote.Format(style)); err != nil {
			return fmt.Errorf("writing quote: %w", err)
		}
		return nil
	})
	return n, err
}
