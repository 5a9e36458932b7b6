package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ahk %s (built %s, commit %s)\n", Version, BuildTime, Commit)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
