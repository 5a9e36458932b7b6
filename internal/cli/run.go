package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// runCmd sends one named command to the daemon and prints the result.
var runCmd = &cobra.Command{
	Use:   "run FUNCTION [ARG...]",
	Short: "Run a single daemon command",
	Long: `Run sends one command to the daemon by its wire name and prints the
decoded result. Arguments are coerced: integers and the words true/false
become typed values, everything else passes through as a string.

Examples:
  ahk run AHKMouseGetPos
  ahk run AHKMouseMove 100 200 10
  ahk run AHKWinGetTitle "Untitled - Notepad"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		defer engine.Close()

		callArgs := make([]any, 0, len(args)-1)
		for _, raw := range args[1:] {
			callArgs = append(callArgs, coerceArg(raw))
		}

		result, err := engine.Call(cmd.Context(), args[0], callArgs...)
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

// coerceArg guesses the typed value for a positional argument.
func coerceArg(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}

	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}

	return raw
}

func printResult(result any) {
	if result == nil {
		color.New(color.FgGreen).Println("ok")

		return
	}

	fmt.Println(result)
}

func init() {
	RootCmd.AddCommand(runCmd)
}
