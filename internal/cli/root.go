package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "framelens",
	Short:   "Zone-level loop profiling with per-zone cost isolation",
	Version: version,
	Long: `Framelens measures the cost of named zones inside a hot loop by running
one baseline pass where every zone executes and one isolation pass per
zone where only that zone is skipped, then comparing the statistics of
the passes against the baseline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, print help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(runCmd)
}
