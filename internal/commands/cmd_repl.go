package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/jmattson/tally/internal/core/calculation"
	"github.com/jmattson/tally/internal/core/history"
	"github.com/jmattson/tally/internal/repl"
)

type ReplCmd struct {
	flags *Flags
}

// NewReplCmd creates a new repl command
func NewReplCmd(flags *Flags) *ReplCmd {
	return &ReplCmd{flags: flags}
}

// Run starts the interactive calculator. Exported for use as default command.
func (cmd *ReplCmd) Run(ctx context.Context, c *cli.Command) error {
	// Piped input gets a clean transcript without banner or prompt.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	r := repl.New(
		os.Stdin,
		c.Root().Writer,
		calculation.Factory{DivisionPrecision: cmd.flags.Config.DivisionPrecision},
		history.NewLog(),
		repl.Options{
			Prompt:      cmd.flags.Config.Prompt,
			Interactive: interactive,
			NoColor:     cmd.flags.Config.NoColor,
		},
		log.With().Str("component", "repl").Logger(),
	)

	return r.Run(ctx)
}
