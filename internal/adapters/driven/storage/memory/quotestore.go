// Package memory provides an in-memory driven.QuoteStore.
// It mirrors the SQLite store's observable behaviour and is used as the
// test double for services and the CLI.
package memory

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/extrim/quotesbook/internal/core/domain"
	"github.com/extrim/quotesbook/internal/core/ports/driven"
)

// Ensure QuoteStore implements the interface.
var _ driven.QuoteStore = (*QuoteStore)(nil)

// QuoteStore is an in-memory implementation of driven.QuoteStore.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[int64]string
	nextID int64
	schema bool

	// Err, when set, is returned by every operation.
	Err error
}

// NewQuoteStore creates a new in-memory quote store with no table.
func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		quotes: make(map[int64]string),
		nextID: 1,
	}
}

// EnsureSchema marks the table as created.
func (s *QuoteStore) EnsureSchema(_ context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schema = true
	return nil
}

// Insert stores text under the next id. Ids are never reused.
func (s *QuoteStore) Insert(_ context.Context, text string) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.schema {
		return 0, domain.E(domain.KindQuery, "insert", nil, "no such table: Quotes")
	}
	id := s.nextID
	s.nextID++
	s.quotes[id] = text
	return id, nil
}

// Exists reports whether id is stored.
func (s *QuoteStore) Exists(_ context.Context, id int64) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.quotes[id]
	return ok, nil
}

// Scan streams the quotes selected by q to fn in id order.
func (s *QuoteStore) Scan(_ context.Context, q driven.Query, fn driven.QuoteFunc) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.RLock()
	ids := make([]int64, 0, len(s.quotes))
	for id := range s.quotes {
		if q.ID == 0 || q.ID == id {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if q.ID == 0 && q.Random && len(ids) > 0 {
		ids = []int64{ids[rand.IntN(len(ids))]}
	}
	selected := make([]domain.Quote, 0, len(ids))
	for _, id := range ids {
		selected = append(selected, domain.Quote{ID: id, Text: s.quotes[id]})
	}
	s.mu.RUnlock()

	for _, quote := range selected {
		if err := fn(quote); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes id and reports how many rows went.
func (s *QuoteStore) Delete(_ context.Context, id int64) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[id]; !ok {
		return 0, nil
	}
	delete(s.quotes, id)
	return 1, nil
}

// Len returns the number of stored quotes.
func (s *QuoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quotes)
}
