package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrStoreOpen", ErrStoreOpen},
		{"ErrQuery", ErrQuery},
		{"ErrMemory", ErrMemory},
		{"ErrWrite", ErrWrite},
		{"ErrInvalidID", ErrInvalidID},
		{"ErrReadInput", ErrReadInput},
		{"ErrNotFound", ErrNotFound},
		{"ErrAborted", ErrAborted},
		{"ErrUserData", ErrUserData},
		{"ErrTooShort", ErrTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestError_IsMatchesKindSentinel(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := E(KindWrite, "insert", cause, "inserting quote")

	assert.True(t, errors.Is(err, ErrWrite))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"msg and cause", E(KindStoreOpen, "open", errors.New("permission denied"), "cannot open database"), "cannot open database: permission denied"},
		{"msg hides own sentinel", E(KindNotFound, "read", ErrNotFound, "no quote with id %d", 4), "no quote with id 4"},
		{"cause only", E(KindQuery, "prepare", errors.New("syntax error"), ""), "syntax error"},
		{"kind only", E(KindAborted, "delete", nil, ""), "aborted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("failed to read quote: %w", E(KindNotFound, "read", ErrNotFound, ""))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, KindAborted, KindOf(fmt.Errorf("delete: %w", ErrAborted)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "store open", KindStoreOpen.String())
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
