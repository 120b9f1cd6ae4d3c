package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders prompts and status lines for one output stream.
// The renderer inspects w, so redirected output stays plain text.
type styles struct {
	prompt  lipgloss.Style
	success lipgloss.Style
	notice  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		prompt:  r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}
