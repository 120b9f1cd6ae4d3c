package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/extrim/quotesbook/internal/core/domain"
)

// JoinArgs builds quote text from positional arguments: every token is
// followed by a single space and the result is trimmed.
func JoinArgs(args []string) string {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString(arg)
		b.WriteByte(' ')
	}
	return domain.Trim(b.String())
}

// ReadAll reads r until end of stream and trims the result.
func ReadAll(r io.Reader) (string, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return "", domain.E(domain.KindReadInput, "read", err, "error reading from stdin")
	}
	return domain.Trim(b.String()), nil
}

// Confirm reads exactly one byte from r and reports whether it was y or Y.
// End of input counts as a refusal.
func Confirm(r io.Reader) (bool, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return buf[0] == 'y' || buf[0] == 'Y', nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
