package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/41008896/treediff/pkg/compare"
	"github.com/41008896/treediff/pkg/config"
	"github.com/41008896/treediff/pkg/engine"
	"github.com/41008896/treediff/pkg/logging"
	"github.com/41008896/treediff/pkg/models"
	"github.com/41008896/treediff/pkg/output"
	"github.com/41008896/treediff/pkg/tree"
)

// CompareFlags holds compare command flags
type CompareFlags struct {
	Left      string
	Right     string
	Output    string
	Format    string
	Metric    string
	RightOnly bool
	Exclude   []string
	Parallel  int
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

// NewCompareCommand creates the compare command
func NewCompareCommand(global *GlobalFlags) *cobra.Command {
	flags := &CompareFlags{}

	cmd := &cobra.Command{
		Use:   "compare [LEFT RIGHT]",
		Short: "Compare a candidate tree against a baseline tree",
		Long: `Compare the left (candidate) tree against the right (baseline) tree.

Every file only in the left tree is reported with its line count. Every
file present in both trees whose lines differ is reported with the number
of lines a unified diff of the two versions spans. Files only in the right
tree are ignored unless --right-only is given.`,
		Example: `  treediff compare --left FinalProject --right Original -o DiffShort.txt
  treediff compare ./final ./original --metric changed --format json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, global, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Left, "left", "l", "", "candidate (final) directory, reported as dir1")
	cmd.Flags().StringVarP(&flags.Right, "right", "r", "", "baseline (original) directory, reported as dir2")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "write the report to this file (default: stdout)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "text", "report format: text, json")
	cmd.Flags().StringVar(&flags.Metric, "metric", "unified", "differing-lines metric: unified, changed")
	cmd.Flags().BoolVar(&flags.RightOnly, "right-only", false, "also report files that exist only in the right tree")
	cmd.Flags().StringSliceVar(&flags.Exclude, "exclude", []string{}, "glob patterns to exclude")
	cmd.Flags().IntVarP(&flags.Parallel, "parallel", "p", 0, "number of files compared in parallel (default: 1)")

	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string, global *GlobalFlags, flags *CompareFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := resolvePositionalRoots(flags, args); err != nil {
		return err
	}

	if err := validateCompareFlags(flags); err != nil {
		return err
	}

	cfg, err := loadConfig(global)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyFlagsToConfig(cmd, cfg, global, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	operation, err := createCompareOperation(cfg, flags)
	if err != nil {
		return fmt.Errorf("failed to create compare operation: %w", err)
	}

	left, err := tree.Open(models.SideLeft, operation.LeftPath)
	if err != nil {
		return err
	}
	defer left.Close()

	right, err := tree.Open(models.SideRight, operation.RightPath)
	if err != nil {
		return err
	}
	defer right.Close()

	logger, err := createLogger(cfg.Logging, global, cmd)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	warnOverlappingRoots(ctx, logger, left.Root(), right.Root())

	comparator, err := compare.New(operation.Metric)
	if err != nil {
		return err
	}

	var progress output.Progress = output.NopProgress{}
	if cfg.Output.Progress && !cfg.Output.Quiet && output.IsTerminal(cmd.ErrOrStderr()) {
		progress = output.NewBarProgress(cmd.ErrOrStderr())
	}

	eng := engine.NewEngine(left, right, comparator, progress, logger, operation)

	report, err := eng.Run(ctx)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if err := output.WriteReport(report, operation.OutputPath, cfg.Output.Format, cmd.OutOrStdout()); err != nil {
		logger.Error(ctx, "Failed to write report", err, logging.Fields{"output": operation.OutputPath})
		return err
	}

	if !cfg.Output.Quiet {
		output.WriteSummary(cmd.ErrOrStderr(), report, operation.OutputPath)
	}

	if report.Status != models.StatusSuccess {
		return &ExitError{
			Code: report.Status.ExitCode(),
			Err:  fmt.Errorf("comparison incomplete: %d file(s) could not be read", len(report.Unreadable())),
		}
	}

	return nil
}

// createLogger creates a logger based on configuration. A log file takes
// precedence; --verbose without a file logs to stderr.
func createLogger(cfg config.LoggingConfig, global *GlobalFlags, cmd *cobra.Command) (logging.Logger, error) {
	format := logging.FormatText
	if cfg.Format == "json" {
		format = logging.FormatJSON
	}
	level := logging.ParseLevel(cfg.Level)

	if cfg.File != "" {
		return logging.NewFileLogger(logging.FileLoggerConfig{
			Path:       cfg.File,
			Format:     format,
			Level:      level,
			MaxSize:    10 * 1024 * 1024, // 10 MB
			MaxBackups: 5,
		})
	}

	if global.Verbose {
		return logging.NewStreamLogger(cmd.ErrOrStderr(), format, level), nil
	}

	return logging.NewNullLogger(), nil
}
