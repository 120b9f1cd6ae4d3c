package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrim/quotesbook/internal/adapters/driven/storage/memory"
	"github.com/extrim/quotesbook/internal/core/domain"
)

const helloQuote = "Hello world, this is a test quote."

func confirmWith(answer bool) func() (bool, error) {
	return func() (bool, error) { return answer, nil }
}

func seeded(t *testing.T, texts ...string) (*QuoteService, *memory.QuoteStore) {
	t.Helper()
	store := memory.NewQuoteStore()
	svc := NewQuoteService(store, nil)
	for _, text := range texts {
		_, err := svc.Append(context.Background(), text)
		require.NoError(t, err)
	}
	return svc, store
}

func TestNewQuoteService_MinLength(t *testing.T) {
	store := memory.NewQuoteStore()

	assert.Equal(t, domain.DefaultMinLength, NewQuoteService(store, nil).MinLength())

	cfg := memory.NewConfigStore(map[string]any{keyMinLength: int64(3)})
	assert.Equal(t, 3, NewQuoteService(store, cfg).MinLength())

	cfg = memory.NewConfigStore(map[string]any{keyMinLength: -5})
	assert.Equal(t, 0, NewQuoteService(store, cfg).MinLength())
}

func TestQuoteService_Append(t *testing.T) {
	svc, store := seeded(t)

	q, err := svc.Append(context.Background(), "  \n"+helloQuote+"\n\n")

	require.NoError(t, err)
	assert.Equal(t, int64(1), q.ID)
	assert.Equal(t, helloQuote, q.Text)
	assert.Equal(t, 1, store.Len())
}

func TestQuoteService_AppendTooShort(t *testing.T) {
	svc, store := seeded(t)

	for _, text := range []string{"", "   ", "short", "0123456789", "  0123456789  \n"} {
		_, err := svc.Append(context.Background(), text)
		assert.ErrorIs(t, err, domain.ErrTooShort, "text %q", text)
	}
	assert.Equal(t, 0, store.Len())

	_, err := svc.Append(context.Background(), "01234567890")
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestQuoteService_AppendCountsCharactersNotBytes(t *testing.T) {
	svc, store := seeded(t)

	// ten characters, twenty bytes
	_, err := svc.Append(context.Background(), strings.Repeat("д", 10))
	assert.ErrorIs(t, err, domain.ErrTooShort)
	assert.Equal(t, 0, store.Len())
}

func TestQuoteService_AppendStoreError(t *testing.T) {
	store := memory.NewQuoteStore()
	store.Err = domain.E(domain.KindWrite, "insert", errors.New("disk full"), "error writing to db")
	svc := NewQuoteService(store, nil)

	_, err := svc.Append(context.Background(), helloQuote)

	require.Error(t, err)
	assert.Equal(t, domain.KindWrite, domain.KindOf(err))
}

func TestQuoteService_Show(t *testing.T) {
	svc, _ := seeded(t, helloQuote)
	var buf bytes.Buffer

	require.NoError(t, svc.Show(context.Background(), &buf, 1))

	assert.Equal(t, "1: "+helloQuote+"\n", buf.String())
}

func TestQuoteService_ShowNotFound(t *testing.T) {
	svc, _ := seeded(t, helloQuote)
	var buf bytes.Buffer

	err := svc.Show(context.Background(), &buf, 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, buf.String())
}

func TestQuoteService_ShowInvalidID(t *testing.T) {
	svc, _ := seeded(t)

	err := svc.Show(context.Background(), &bytes.Buffer{}, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestQuoteService_List(t *testing.T) {
	svc, _ := seeded(t, "first quote of the list", "second quote of the list")
	var buf bytes.Buffer

	require.NoError(t, svc.List(context.Background(), &buf))

	assert.Equal(t, "first quote of the list\nsecond quote of the list\n", buf.String())
}

func TestQuoteService_ShowThenListContainsTextOnce(t *testing.T) {
	svc, _ := seeded(t, "first quote of the list", helloQuote, "third quote of the list")
	ctx := context.Background()

	var shown, listed bytes.Buffer
	require.NoError(t, svc.Show(ctx, &shown, 2))
	require.NoError(t, svc.List(ctx, &listed))

	text := strings.TrimPrefix(strings.TrimSpace(shown.String()), "2: ")
	assert.Equal(t, 1, strings.Count(listed.String(), text))
}

func TestQuoteService_Random(t *testing.T) {
	svc, _ := seeded(t, helloQuote)

	for i := 0; i < 3; i++ {
		var buf bytes.Buffer
		require.NoError(t, svc.Random(context.Background(), &buf))
		assert.Equal(t, helloQuote+"\n", buf.String())
	}
}

func TestQuoteService_RandomEmpty(t *testing.T) {
	svc, _ := seeded(t)

	err := svc.Random(context.Background(), &bytes.Buffer{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestQuoteService_DeleteConfirmed(t *testing.T) {
	svc, store := seeded(t, helloQuote, "another quote to keep")

	require.NoError(t, svc.Delete(context.Background(), 1, confirmWith(true)))

	assert.Equal(t, 1, store.Len())
	found, err := store.Exists(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestQuoteService_DeleteDeclined(t *testing.T) {
	svc, store := seeded(t, helloQuote)

	err := svc.Delete(context.Background(), 1, confirmWith(false))

	assert.ErrorIs(t, err, domain.ErrAborted)
	assert.Equal(t, domain.KindAborted, domain.KindOf(err))
	assert.Equal(t, 1, store.Len())
}

func TestQuoteService_DeleteNotFoundSkipsPrompt(t *testing.T) {
	svc, _ := seeded(t)
	asked := false

	err := svc.Delete(context.Background(), 7, func() (bool, error) {
		asked = true
		return true, nil
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, asked)
}

func TestQuoteService_DeleteConfirmError(t *testing.T) {
	svc, store := seeded(t, helloQuote)

	err := svc.Delete(context.Background(), 1, func() (bool, error) {
		return false, errors.New("stdin closed")
	})

	assert.Equal(t, domain.KindReadInput, domain.KindOf(err))
	assert.Equal(t, 1, store.Len())
}
