package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/extrim/quotesbook/internal/core/domain"
)

// Exit codes for the quotesbook process. The values are fixed so that
// scripts written against earlier releases keep working.
const (
	// ExitSuccess indicates the command completed successfully.
	// Also used for help output and for skipped too-short appends.
	ExitSuccess = 0

	// ExitFailure indicates an error that fits no category below.
	ExitFailure = 1

	// ExitAborted indicates the user declined a confirmation prompt.
	ExitAborted = 6

	// ExitOpenDB indicates the database file could not be opened or created.
	ExitOpenDB = 31

	// ExitMemory indicates a buffer allocation failure.
	ExitMemory = 32

	// ExitSQL indicates a statement could not be compiled or run.
	ExitSQL = 33

	// ExitWrite indicates an insert, delete or schema change failed.
	ExitWrite = 34

	// ExitUserData indicates wrong or missing user data: a malformed id,
	// an unknown flag, or an unresolvable home directory.
	ExitUserData = 35

	// ExitReadInput indicates standard input could not be read.
	ExitReadInput = 36

	// ExitNoData indicates no quote matched, including an empty book.
	ExitNoData = 37
)

var kindExitCodes = map[domain.Kind]int{
	domain.KindStoreOpen: ExitOpenDB,
	domain.KindQuery:     ExitSQL,
	domain.KindMemory:    ExitMemory,
	domain.KindWrite:     ExitWrite,
	domain.KindInvalidID: ExitUserData,
	domain.KindReadInput: ExitReadInput,
	domain.KindNotFound:  ExitNoData,
	domain.KindAborted:   ExitAborted,
	domain.KindUserData:  ExitUserData,
}

// ExitError pins an explicit exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExitCode returns the pinned code.
func (e *ExitError) ExitCode() int {
	if e == nil {
		return ExitFailure
	}
	return e.Code
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var withExit interface{ ExitCode() int }
	if errors.As(err, &withExit) {
		return withExit.ExitCode()
	}

	if code, ok := kindExitCodes[domain.KindOf(err)]; ok {
		return code
	}
	return ExitFailure
}

// Report writes err to w unless it is a user abort, and returns the exit code.
func Report(w io.Writer, err error) int {
	code := ExitCode(err)
	if err != nil && code != ExitAborted {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return code
}
