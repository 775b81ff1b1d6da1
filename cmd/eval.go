package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/tally/internal/engine"
	"github.com/zhubert/tally/internal/errors"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION...",
	Short: "Evaluate an expression and print the result",
	Long: `Evaluates an arithmetic expression without starting the TUI.

Arguments are joined with spaces, so quoting is optional:

  tally eval "2*(3+4)"
  tally eval 2 + 2

The × and ÷ glyphs are accepted as aliases for * and /.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	expr := engine.Normalize(strings.Join(args, " "))

	if !engine.Validate(expr) {
		return errors.InvalidFormat(expr)
	}

	value, err := engine.Evaluate(expr)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), engine.FormatResult(value))
	return nil
}
