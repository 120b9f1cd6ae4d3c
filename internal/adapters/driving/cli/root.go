// Package cli is the command-line entry point of quotesbook.
//
// The program has no subcommands: a single root command picks one
// operation from its flags, runs it against the quote service and returns.
// When several operation flags are given the first of -n, -d, -a, -l wins;
// with none, a random quote is printed.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/extrim/quotesbook/internal/core/domain"
	"github.com/extrim/quotesbook/internal/core/ports/driving"
	"github.com/extrim/quotesbook/internal/logger"
)

const programName = "quotesbook"

// rootOptions holds parsed flag values for one invocation.
type rootOptions struct {
	number  string
	remove  string
	add     bool
	list    bool
	usage   bool
	verbose bool
}

// NewRootCommand builds the quotesbook command around svc.
func NewRootCommand(svc driving.QuoteService) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           programName + " [-n <num> | -d <num> | -a [text...] | -l]",
		Short:         "Collect quotes in a local database and print them",
		Version:       Version(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PreRun: func(_ *cobra.Command, _ []string) {
			if opts.verbose {
				logger.SetVerbose(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, svc, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.number, "number", "n", "", "show entry with <num>")
	flags.StringVarP(&opts.remove, "delete", "d", "", "delete entry with <num>")
	flags.BoolVarP(&opts.add, "append", "a", false, "append new record to db")
	flags.BoolVarP(&opts.list, "list", "l", false, "list all entries in db")
	flags.BoolVarP(&opts.usage, "usage", "?", false, "show this help")
	_ = flags.MarkHidden("usage")
	// Claimed before cobra adds --version, which then goes without a shorthand.
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug information to stderr")

	cmd.SetVersionTemplate(programName + " version {{.Version}}\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printUsage(c.OutOrStdout())
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUserData, Err: err}
	})

	return cmd
}

// Execute runs the root command against the process's standard streams.
func Execute(svc driving.QuoteService) error {
	return ExecuteContext(context.Background(), svc, os.Args[1:])
}

// ExecuteContext runs the root command with explicit arguments.
func ExecuteContext(ctx context.Context, svc driving.QuoteService, args []string) error {
	cmd := NewRootCommand(svc)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, svc driving.QuoteService, opts *rootOptions, args []string) error {
	if opts.usage {
		printUsage(cmd.OutOrStdout())
		return nil
	}
	if svc == nil {
		return errors.New("quote service not configured")
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	flags := cmd.Flags()

	switch {
	case flags.Changed("number"):
		logger.Section("read")
		id, err := domain.ParseID(opts.number)
		if err != nil {
			return err
		}
		return svc.Show(ctx, out, id)

	case flags.Changed("delete"):
		logger.Section("delete")
		id, err := domain.ParseID(opts.remove)
		if err != nil {
			return err
		}
		return runDelete(cmd, svc, id)

	case opts.add:
		logger.Section("append")
		return runAppend(cmd, svc, args)

	case opts.list:
		logger.Section("list")
		return svc.List(ctx, out)

	default:
		if len(args) > 0 {
			logger.Debug("ignoring %d positional argument(s) without -a", len(args))
		}
		logger.Section("random")
		return svc.Random(ctx, out)
	}
}

func runDelete(cmd *cobra.Command, svc driving.QuoteService, id int64) error {
	out := cmd.OutOrStdout()
	st := newStyles(out)

	in := cmd.InOrStdin()

	prompted := false
	confirm := func() (bool, error) {
		prompted = true
		fmt.Fprint(out, st.prompt.Render("Are you sure? [y|Y]:"))
		return Confirm(in)
	}

	err := svc.Delete(cmd.Context(), id, confirm)
	// A terminal echoes the answer and its newline; redirected input does not.
	if prompted && !isTerminal(in) {
		fmt.Fprintln(out)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, st.success.Render(fmt.Sprintf("Entry with #%d was deleted!", id)))
	return nil
}

func runAppend(cmd *cobra.Command, svc driving.QuoteService, args []string) error {
	out := cmd.OutOrStdout()
	st := newStyles(out)

	var text string
	if len(args) > 0 {
		text = JoinArgs(args)
	} else {
		in := cmd.InOrStdin()
		if isTerminal(in) {
			fmt.Fprintln(out, "Enter string below [ctrl + d] to end input")
		}
		var err error
		if text, err = ReadAll(in); err != nil {
			return err
		}
	}

	quote, err := svc.Append(cmd.Context(), text)
	if errors.Is(err, domain.ErrTooShort) {
		logger.Debug("%d character(s) given, more than %d required",
			utf8.RuneCountInString(text), svc.MinLength())
		fmt.Fprintln(out, st.notice.Render("Too short string. Skipped..."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("error writing %q to db: %w", text, err)
	}

	fmt.Fprintf(out, "\"%s\"\n", quote.Text)
	fmt.Fprintln(out, st.success.Render(fmt.Sprintf("%d symbol(s) written to db successfully!",
		utf8.RuneCountInString(quote.Text))))
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [adhlnv?] <args>\n", programName)
	fmt.Fprint(w, `
  -n <num>                    show entry with <num>
  -l                          list all entries in db
  -d <num>                    delete entry with <num>
  -a [text...]                append new record to db, reads stdin when no text is given
  -h, -?                      show this help
  -v, --verbose               print debug information to stderr
      --version               print the version number

Without options a random entry is shown.
`)
	fmt.Fprintf(w, `
Examples:

  %[1]s -n 10            shows record #10 from db
  %[1]s -l               shows list of all records
  %[1]s -a Some text     appends "Some text" to db
`, programName)
}
