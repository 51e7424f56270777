package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jward/adder"
	"github.com/jward/adder/internal/runtime"
)

var flagFormat string

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "adder",
	Short:         "Add numbers",
	Long:          "Adder sums two numbers directly or evaluates Risor expressions built on the add function.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")

	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(evalCmd)
}

var sumCmd = &cobra.Command{
	Use:   "sum <a> <b>",
	Short: "Print the sum of two numbers",
	Long:  "Adds two numbers. Integers stay integers; if either argument has a fractional part, an exponent, or falls outside the int64 range, the sum is a float64 and may lose precision.",
	Example: `  adder sum 1 2
  adder sum -- 1 -2`,
	Args: cobra.ExactArgs(2),
	RunE: runSum,
}

func runSum(cmd *cobra.Command, args []string) error {
	sum, err := sumArgs(args[0], args[1])
	if err != nil {
		return outputError(cmd, "sum", err)
	}
	return outputResult(cmd, CLIResult{Command: "sum", Results: sum})
}

// sumArgs parses a and b and adds them. Both must parse as base-10 int64
// for an integer sum.
func sumArgs(a, b string) (any, error) {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	if aErr == nil && bErr == nil {
		return adder.Add(ai, bi), nil
	}

	af, err := parseFloat(a)
	if err != nil {
		return nil, err
	}
	bf, err := parseFloat(b)
	if err != nil {
		return nil, err
	}
	return adder.Add(af, bf), nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a Risor expression with add available",
	Long:  "Evaluates a Risor script. The add(a, b) builtin and a log object are available as globals.",
	Example: `  adder eval 'add(1, 2)'
  adder eval 'add(add(1, 2), 3.5)' --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt := runtime.NewRuntime(runtime.WithLogWriter(cmd.ErrOrStderr()))
	result, err := rt.Eval(ctx, args[0], nil)
	if err != nil {
		return outputError(cmd, "eval", err)
	}
	return outputResult(cmd, CLIResult{Command: "eval", Results: result})
}
