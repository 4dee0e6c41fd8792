package main

import (
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Apply every operation to the configured operands",
	Long: `Demo applies add, subtract, multiply, and divide, in that order, to the
operands given by --x and --y (default 10 and 5) and prints one line per
result.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().AddFlagSet(operandFlags)

	rootCmd.AddCommand(demoCmd)
}
