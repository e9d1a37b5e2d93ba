package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

// addGlobalFlags binds the persistent flags of the root command to g
func addGlobalFlags(cmd *cobra.Command, g *GlobalFlags) {
	cmd.PersistentFlags().StringVar(
		&g.ConfigFile,
		"config",
		"",
		"config file (default is $XDG_CONFIG_HOME/treediff/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&g.Verbose,
		"verbose",
		"v",
		false,
		"show a progress bar and log to stderr",
	)
	cmd.PersistentFlags().BoolVarP(
		&g.Quiet,
		"quiet",
		"q",
		false,
		"suppress the console summary",
	)
}
