package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trio",
	Short: "trio - three edge-disjoint hunter→prey circles over one roster",
	Long: `trio assigns every participant a prey in each of three simultaneous
circles, such that each circle is one Hamiltonian cycle, no hunter repeats
a prey across circles, and no hunter and prey share a group label.

Supply participants as "name/group" tokens (build) or generate a synthetic
roster (gen); the three rendered circles are printed to stdout.`,
	Version: version,
	// Show help when invoked without a subcommand instead of silently
	// succeeding.
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Called once by main.main().
func Execute() error {
	rootCmd.SilenceUsage = true

	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
