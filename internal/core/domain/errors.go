package domain

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories an operation can end in.
// Callers propagate the kind; only the process boundary turns it into an
// exit status.
type Kind int

const (
	// KindUnknown is any error not produced through E.
	KindUnknown Kind = iota
	// KindStoreOpen means the store file could not be opened or created.
	KindStoreOpen
	// KindQuery means a statement could not be compiled or run.
	KindQuery
	// KindMemory means a buffer could not be allocated.
	KindMemory
	// KindWrite means an insert, delete or schema change failed.
	KindWrite
	// KindInvalidID means the user supplied a malformed identifier.
	KindInvalidID
	// KindReadInput means standard input could not be read.
	KindReadInput
	// KindNotFound means no row matched, including an empty store.
	KindNotFound
	// KindAborted means the user declined a confirmation prompt.
	KindAborted
	// KindUserData means required user data (home directory, flags) is missing.
	KindUserData
)

var kindNames = map[Kind]string{
	KindUnknown:   "unknown",
	KindStoreOpen: "store open",
	KindQuery:     "query",
	KindMemory:    "memory",
	KindWrite:     "write",
	KindInvalidID: "invalid id",
	KindReadInput: "read input",
	KindNotFound:  "not found",
	KindAborted:   "aborted",
	KindUserData:  "user data",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels, one per kind, for errors.Is checks.
var (
	// ErrStoreOpen indicates the store file could not be opened.
	ErrStoreOpen = errors.New("cannot open database")

	// ErrQuery indicates a malformed or failing statement.
	ErrQuery = errors.New("sql error")

	// ErrMemory indicates an allocation failure.
	ErrMemory = errors.New("memory allocation failed")

	// ErrWrite indicates a failed write to the store.
	ErrWrite = errors.New("error writing to db")

	// ErrInvalidID indicates a non-numeric or non-positive identifier.
	ErrInvalidID = errors.New("wrong identifier")

	// ErrReadInput indicates standard input could not be read.
	ErrReadInput = errors.New("error reading from stdin")

	// ErrNotFound indicates a requested quote does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAborted indicates the user declined to continue.
	// It is not a failure and is never reported as one.
	ErrAborted = errors.New("aborted")

	// ErrUserData indicates required user data is unavailable.
	ErrUserData = errors.New("missing user data")

	// ErrTooShort indicates appended text did not exceed the minimum length.
	// The append is skipped; this is not an error exit.
	ErrTooShort = errors.New("too short string")
)

var kindSentinels = map[Kind]error{
	KindStoreOpen: ErrStoreOpen,
	KindQuery:     ErrQuery,
	KindMemory:    ErrMemory,
	KindWrite:     ErrWrite,
	KindInvalidID: ErrInvalidID,
	KindReadInput: ErrReadInput,
	KindNotFound:  ErrNotFound,
	KindAborted:   ErrAborted,
	KindUserData:  ErrUserData,
}

// Error is a categorised failure.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

// E builds an *Error. msg is an optional format string with args.
func E(kind Kind, op string, err error, msg string, args ...any) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{Kind: kind, Op: op, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Msg != "" && e.Err != nil && !errors.Is(e.Err, kindSentinels[e.Kind]):
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel of the error's kind, so callers can test
// errors.Is(err, ErrNotFound) regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// KindOf returns the kind of the first *Error in err's chain, falling back
// to the matching sentinel and then KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for kind, sentinel := range kindSentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}
