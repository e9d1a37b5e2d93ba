package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/41008896/treediff/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand(global *GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or create the treediff configuration file.`,
	}

	cmd.AddCommand(newConfigShowCommand(global))
	cmd.AddCommand(newConfigInitCommand(global))

	return cmd
}

func newConfigShowCommand(global *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Metric: %s\n", cfg.Compare.Metric)
			fmt.Fprintf(out, "Report Right-Only: %t\n", cfg.Compare.ReportRightOnly)
			fmt.Fprintf(out, "Max Workers: %d\n", cfg.Performance.MaxWorkers)
			fmt.Fprintf(out, "Output Format: %s\n", cfg.Output.Format)
			fmt.Fprintf(out, "Progress: %t\n", cfg.Output.Progress)
			fmt.Fprintf(out, "Log Format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "Log Level: %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "Exclude: %v\n", cfg.Exclude)

			return nil
		},
	}
}

func newConfigInitCommand(global *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := global.ConfigFile
			if path == "" {
				var err error
				if path, err = config.DefaultConfigPath(); err != nil {
					return err
				}
			}

			if err := config.SaveToFile(config.Default(), path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
			return nil
		},
	}
}
