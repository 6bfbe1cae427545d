// Package repl implements the interactive read-eval-print loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jmattson/tally/internal/core/calculation"
	"github.com/jmattson/tally/internal/core/history"
	"github.com/jmattson/tally/internal/core/operation"
	"github.com/jmattson/tally/internal/styles"
)

// Transcript messages. Stable within a session.
const (
	msgInvalidFormat = "Invalid input format. Expected: <number> <operation> <number>"
	msgDivideByZero  = "Cannot divide by zero"
	msgEmptyHistory  = "No calculations in history."
	msgCleared       = "Calculation history cleared."
	msgFarewell      = "Thank you for using the calculator. Goodbye!"
)

// Options configures a REPL session.
type Options struct {
	// Prompt is printed before each input line in interactive mode.
	Prompt string
	// Interactive enables the banner and prompt. Piped input keeps the
	// transcript free of prompt text.
	Interactive bool
	// NoColor renders the banner and help text without styling.
	NoColor bool
}

// REPL reads expressions from in and writes the session transcript to out.
// Every calculator-level failure is reported inline; the loop only ends on
// the exit command, end of input, or a read error.
type REPL struct {
	in      io.Reader
	out     io.Writer
	factory calculation.Factory
	log     *history.Log
	opts    Options
	logger  zerolog.Logger
}

// New creates a REPL that owns the given history log for the session.
func New(in io.Reader, out io.Writer, factory calculation.Factory, log *history.Log, opts Options, logger zerolog.Logger) *REPL {
	return &REPL{
		in:      in,
		out:     out,
		factory: factory,
		log:     log,
		opts:    opts,
		logger:  logger,
	}
}

// Run processes input lines until an exit command, end of input, or a read
// error. End of input behaves like the exit command.
func (r *REPL) Run(ctx context.Context) error {
	if r.opts.Interactive {
		r.printBanner()
	}

	// bufio.Reader rather than bufio.Scanner: a line over the scanner's
	// token limit would end the session instead of being rejected inline.
	reader := bufio.NewReader(r.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if r.opts.Interactive {
			fmt.Fprint(r.out, r.opts.Prompt)
		}

		line, err := reader.ReadString('\n')

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			if !r.dispatch(trimmed) {
				return nil
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("read input: %w", err)
			}
			break
		}
	}

	if r.opts.Interactive {
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out, msgFarewell)
	return nil
}

// dispatch handles one trimmed, non-empty input line. Returns false when
// the session ends.
func (r *REPL) dispatch(line string) bool {
	// Command words are case-insensitive; operator tokens are not.
	switch strings.ToLower(line) {
	case "exit":
		fmt.Fprintln(r.out, msgFarewell)
		return false
	case "help":
		r.printHelp()
		return true
	case "history":
		r.printHistory()
		return true
	case "clear":
		r.log.Clear()
		fmt.Fprintln(r.out, msgCleared)
		return true
	}

	r.evaluate(line)
	return true
}

// evaluate parses and runs one expression line, reporting any failure as a
// one-line diagnostic so the loop survives every input.
func (r *REPL) evaluate(line string) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		r.logger.Debug().Int("tokens", len(parts)).Msg("rejected input shape")
		fmt.Fprintln(r.out, msgInvalidFormat)
		return
	}

	calc, err := r.factory.Create(parts[0], parts[1], parts[2])
	if err != nil {
		r.logger.Debug().Err(err).Str("input", line).Msg("expression rejected")
		fmt.Fprintln(r.out, diagnostic(err))
		return
	}

	r.log.Append(calc)
	r.logger.Debug().
		Stringer("a", calc.A).
		Str("op", string(calc.Op)).
		Stringer("b", calc.B).
		Stringer("result", calc.Result).
		Msg("evaluated expression")

	fmt.Fprintf(r.out, "Result: %s\n", calc)
}

// diagnostic converts a factory error into its one-line user message.
func diagnostic(err error) string {
	var (
		numErr calculation.InvalidNumberError
		opErr  operation.UnknownError
	)

	switch {
	case errors.As(err, &numErr):
		return fmt.Sprintf("Invalid number format: [%v]", numErr.Err)
	case errors.As(err, &opErr):
		return fmt.Sprintf("Unknown operation: %s", opErr.Token)
	case errors.Is(err, operation.ErrDivisionByZero):
		return msgDivideByZero
	default:
		// Anything unanticipated is still reported inline rather than
		// ending the session.
		return fmt.Sprintf("Error: %v", err)
	}
}

// styled applies s unless colors are disabled.
func (r *REPL) styled(s lipgloss.Style, text string) string {
	if r.opts.NoColor {
		return text
	}
	return s.Render(text)
}

func (r *REPL) printBanner() {
	fmt.Fprintln(r.out, r.styled(styles.BannerStyle, styles.Banner))
	fmt.Fprintln(r.out, r.styled(styles.HintStyle, "Type 'help' for available commands or 'exit' to quit."))
	fmt.Fprintln(r.out)
}

func (r *REPL) printHistory() {
	entries := r.log.List()
	if len(entries) == 0 {
		fmt.Fprintln(r.out, msgEmptyHistory)
		return
	}

	fmt.Fprintln(r.out, "Calculation History:")
	for i, calc := range entries {
		fmt.Fprintf(r.out, "%2d. %s\n", i+1, calc)
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, r.styled(styles.HelpHeaderStyle, "Available Commands:"))

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "  <number> <operation> <number>\tperform a calculation")
	_, _ = fmt.Fprintln(w, "  help\tshow this help message")
	_, _ = fmt.Fprintln(w, "  history\tshow calculation history")
	_, _ = fmt.Fprintln(w, "  clear\tclear calculation history")
	_, _ = fmt.Fprintln(w, "  exit\texit the calculator")
	_ = w.Flush()

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styled(styles.HelpHeaderStyle, "Operations:"))

	w = tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "  +, add\taddition")
	_, _ = fmt.Fprintln(w, "  -, subtract\tsubtraction")
	_, _ = fmt.Fprintln(w, "  *, multiply\tmultiplication")
	_, _ = fmt.Fprintln(w, "  /, divide\tdivision")
	_ = w.Flush()

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styled(styles.HelpHeaderStyle, "Examples:"))
	fmt.Fprintln(r.out, "  5 + 3")
	fmt.Fprintln(r.out, "  10.5 subtract 2.3")
	fmt.Fprintln(r.out, "  15 divide 3")
}
