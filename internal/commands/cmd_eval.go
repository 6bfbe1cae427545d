package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jmattson/tally/internal/core/calculation"
)

type EvalCmd struct {
	flags *Flags
}

// NewEvalCmd creates a new eval command
func NewEvalCmd(flags *Flags) *EvalCmd {
	return &EvalCmd{flags: flags}
}

// Register adds the eval command to the application
func (cmd *EvalCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "eval",
		Usage:     "Evaluate a single expression and exit",
		UsageText: "tally eval <number> <operation> <number>",
		Description: `Evaluates one expression without starting the interactive session.

The expression uses the same operator tokens as the interactive
calculator: + or add, - or subtract, * or multiply, / or divide.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *EvalCmd) run(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) != 3 {
		return fmt.Errorf("expected <number> <operation> <number>, got %d argument(s)", len(args))
	}

	factory := calculation.Factory{DivisionPrecision: cmd.flags.Config.DivisionPrecision}
	calc, err := factory.Create(args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("evaluate expression: %w", err)
	}

	_, err = fmt.Fprintln(c.Root().Writer, calc)
	return err
}
