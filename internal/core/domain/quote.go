package domain

import (
	"strconv"
	"strings"
)

// DefaultMinLength is the length a quote must exceed to be stored.
// Shorter input is almost always an accidental or empty append.
const DefaultMinLength = 10

// Quote is a single stored record.
type Quote struct {
	// ID is assigned by the store on insert and is never reused.
	ID int64

	// Text is the quote body with surrounding whitespace removed.
	Text string
}

// Valid reports whether the quote satisfies the stored-record invariant.
func (q Quote) Valid() bool {
	return q.ID > 0 && q.Text != ""
}

// Style selects how quotes are rendered on output.
type Style int

const (
	// StylePlain renders only the quote text.
	StylePlain Style = iota
	// StyleNumbered renders "id: text".
	StyleNumbered
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleNumbered:
		return "numbered"
	default:
		return "unknown"
	}
}

// Format renders the quote as a single output line without a trailing newline.
func (q Quote) Format(style Style) string {
	if style == StyleNumbered {
		return strconv.FormatInt(q.ID, 10) + ": " + q.Text
	}
	return q.Text
}

// Trim strips leading and trailing whitespace, including newlines.
// Empty and all-whitespace input yield the empty string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ParseID converts user input into a quote identifier.
// Only positive integers are accepted.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, E(KindInvalidID, "parse id", ErrInvalidID, "wrong identifier: %q", s)
	}
	return id, nil
}
