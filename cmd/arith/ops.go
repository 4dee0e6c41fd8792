package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arith/internal/arith"
	"github.com/pdiddy/arith/internal/demo"
	"github.com/pdiddy/arith/internal/logging"
	"github.com/pdiddy/arith/pkg/types"
)

// opDescriptions gives the short help text for each operation subcommand.
var opDescriptions = map[types.Operation]string{
	types.OpAdd:      "Print A + B",
	types.OpSubtract: "Print A - B",
	types.OpMultiply: "Print A * B",
	types.OpDivide:   "Print A / B, truncated toward zero",
}

// newOpCmd builds the subcommand that applies op to two integer arguments.
func newOpCmd(op types.Operation) *cobra.Command {
	return &cobra.Command{
		Use:   string(op) + " A B",
		Short: opDescriptions[op],
		Long: fmt.Sprintf(`%s applies %s to two integer arguments and prints one result line.
Pass negative operands after "--", e.g. arith %s -- -7 2.`, op.Label(), op, op),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, op, args[0], args[1])
		},
	}
}

var applyCmd = &cobra.Command{
	Use:   "apply OP A B",
	Short: "Apply the named operation to A and B",
	Long: `Apply looks up OP (add, subtract, multiply, or divide; case-insensitive)
and applies it to two integer arguments, printing the same line as the
matching subcommand.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := arith.ParseOperation(args[0])
		if err != nil {
			return err
		}
		return runOperation(cmd, op, args[1], args[2])
	},
}

// runOperation parses both operands, applies op, and renders the single result.
func runOperation(cmd *cobra.Command, op types.Operation, argA, argB string) error {
	a, err := parseOperand(argA)
	if err != nil {
		return err
	}
	b, err := parseOperand(argB)
	if err != nil {
		return err
	}

	r, err := arith.Apply(op, a, b)
	if err != nil {
		return err
	}
	logging.L().Debug("operation.applied", "op", op, "a", a, "b", b, "defined", r.Defined)

	format := types.OutputFormat(viper.GetString("format"))
	return demo.Render(cmd.OutOrStdout(), types.Operands{X: a, Y: b}, []types.Result{r}, format)
}

func parseOperand(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}
	return v, nil
}

func init() {
	for _, op := range arith.Operations() {
		rootCmd.AddCommand(newOpCmd(op))
	}
	rootCmd.AddCommand(applyCmd)
}
