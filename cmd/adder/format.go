package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// outputResult writes result to the command's stdout in the selected format.
// A result JSON cannot represent (NaN, ±Inf) is reported through outputError.
func outputResult(cmd *cobra.Command, result CLIResult) error {
	w := cmd.OutOrStdout()
	if flagFormat == "text" {
		if result.Results == nil {
			return nil
		}
		_, err := fmt.Fprintln(w, formatValueText(result.Results))
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return outputError(cmd, result.Command, fmt.Errorf("encoding %s result: %w", result.Command, err))
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(cmd *cobra.Command, command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	_ = enc.Encode(CLIResult{Command: command, Error: err.Error()})
	return err
}

// formatValueText renders a result value. Floats use the shortest
// representation that round-trips.
func formatValueText(v any) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return fmt.Sprint(n)
	}
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
