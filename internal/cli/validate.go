package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/41008896/treediff/internal/platform"
	"github.com/41008896/treediff/pkg/config"
	"github.com/41008896/treediff/pkg/logging"
	"github.com/41008896/treediff/pkg/models"
)

// resolvePositionalRoots fills --left/--right from LEFT RIGHT arguments
func resolvePositionalRoots(flags *CompareFlags, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 2:
		if flags.Left != "" || flags.Right != "" {
			return fmt.Errorf("give the trees either as arguments or with --left/--right, not both")
		}
		flags.Left, flags.Right = args[0], args[1]
		return nil
	default:
		return fmt.Errorf("expected LEFT and RIGHT arguments, got %d argument(s)", len(args))
	}
}

// validateCompareFlags validates the compare command flags
func validateCompareFlags(flags *CompareFlags) error {
	if flags.Left == "" {
		return &models.ValidationError{Field: "left", Message: "left directory is required (--left or first argument)"}
	}
	if flags.Right == "" {
		return &models.ValidationError{Field: "right", Message: "right directory is required (--right or second argument)"}
	}

	for name, p := range map[string]string{"left": flags.Left, "right": flags.Right} {
		if err := platform.ValidatePath(p); err != nil {
			return &models.ValidationError{Field: name, Message: err.Error()}
		}
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[flags.Format] {
		return fmt.Errorf("invalid format: %s (valid: text, json)", flags.Format)
	}

	validMetrics := map[string]bool{
		string(models.MetricUnified): true,
		string(models.MetricChanged): true,
	}
	if !validMetrics[flags.Metric] {
		return fmt.Errorf("invalid metric: %s (valid: unified, changed)", flags.Metric)
	}

	if flags.Parallel < 0 {
		return fmt.Errorf("invalid parallel value: %d (must be at least 1)", flags.Parallel)
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig(global *GlobalFlags) (*config.Config, error) {
	if global.ConfigFile != "" {
		return config.LoadFromFile(global.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with flags the user set
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config, global *GlobalFlags, flags *CompareFlags) {
	changed := cmd.Flags().Changed

	if changed("metric") {
		cfg.Compare.Metric = models.Metric(flags.Metric)
	}
	if changed("right-only") {
		cfg.Compare.ReportRightOnly = flags.RightOnly
	}
	if flags.Parallel > 0 {
		cfg.Performance.MaxWorkers = flags.Parallel
	}
	if len(flags.Exclude) > 0 {
		cfg.Exclude = flags.Exclude
	}
	if changed("format") {
		cfg.Output.Format = flags.Format
	}

	if flags.LogFile != "" {
		cfg.Logging.File = flags.LogFile
	}
	if changed("log-format") {
		cfg.Logging.Format = flags.LogFormat
	}
	if changed("log-level") {
		cfg.Logging.Level = flags.LogLevel
	}

	// Quiet wins over verbose
	if global.Verbose {
		cfg.Output.Progress = true
	}
	if global.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
}

// createCompareOperation creates a compare operation from configuration
func createCompareOperation(cfg *config.Config, flags *CompareFlags) (*models.CompareOperation, error) {
	operation := &models.CompareOperation{
		ID:              uuid.New().String(),
		LeftPath:        flags.Left,
		RightPath:       flags.Right,
		OutputPath:      flags.Output,
		Metric:          cfg.Compare.Metric,
		ReportRightOnly: cfg.Compare.ReportRightOnly,
		ExcludePatterns: cfg.Exclude,
		MaxWorkers:      cfg.Performance.MaxWorkers,
		CreatedAt:       time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}

// warnOverlappingRoots logs when one tree contains the other. The run
// still proceeds; comparing a tree with itself is a valid no-op.
func warnOverlappingRoots(ctx context.Context, logger logging.Logger, left, right string) {
	if filepath.Clean(left) == filepath.Clean(right) {
		logger.Info(ctx, "Left and right are the same directory", logging.Fields{"path": left})
		return
	}
	if platform.SameOrNested(left, right) {
		logger.Warn(ctx, "Left and right trees overlap; nested files are indexed on both sides", logging.Fields{
			"left":  left,
			"right": right,
		})
	}
}
