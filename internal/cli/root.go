package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the treediff command tree
func NewRootCommand() *cobra.Command {
	global := &GlobalFlags{}

	rootCmd := &cobra.Command{
		Use:   "treediff",
		Short: "Compare two directory trees line by line",
		Long: `treediff recursively compares a candidate directory tree against a
baseline tree. It reports files that exist only in the candidate, files
whose text content differs, and how many diff lines each difference spans.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addGlobalFlags(rootCmd, global)

	rootCmd.AddCommand(NewCompareCommand(global))
	rootCmd.AddCommand(NewConfigCommand(global))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
