// Package engine runs a tree comparison: it indexes both trees, classifies
// every relative path and measures how much each common file differs.
package engine

import (
	"context"
	"time"

	"github.com/41008896/treediff/pkg/compare"
	"github.com/41008896/treediff/pkg/logging"
	"github.com/41008896/treediff/pkg/models"
	"github.com/41008896/treediff/pkg/output"
	"github.com/41008896/treediff/pkg/storage"
	"github.com/41008896/treediff/pkg/tree"
)

// Engine orchestrates one comparison run
type Engine struct {
	left       storage.Backend
	right      storage.Backend
	comparator compare.Comparator
	progress   output.Progress
	logger     logging.Logger
	operation  *models.CompareOperation
}

// NewEngine creates a new comparison engine. progress and logger may be nil.
func NewEngine(
	left, right storage.Backend,
	comparator compare.Comparator,
	progress output.Progress,
	logger logging.Logger,
	operation *models.CompareOperation,
) *Engine {
	if progress == nil {
		progress = output.NopProgress{}
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Engine{
		left:       left,
		right:      right,
		comparator: comparator,
		progress:   progress,
		logger:     logger.WithFields(logging.Fields{"run_id": operation.ID}),
		operation:  operation,
	}
}

// Run enumerates both trees and compares them. Only root failures and
// context cancellation abort the run; unreadable files become outcomes.
func (e *Engine) Run(ctx context.Context) (*models.Report, error) {
	report := &models.Report{
		RunID:     e.operation.ID,
		LeftPath:  e.left.Root(),
		RightPath: e.right.Root(),
		Metric:    models.Metric(e.comparator.Name()),
		StartTime: time.Now(),
		Status:    models.StatusSuccess,
	}

	e.logger.Info(ctx, "Starting comparison", logging.Fields{
		"left":        report.LeftPath,
		"right":       report.RightPath,
		"metric":      e.comparator.Name(),
		"right_only":  e.operation.ReportRightOnly,
		"max_workers": e.operation.MaxWorkers,
	})

	excluder := tree.NewExcluder(e.operation.ExcludePatterns)

	leftIndex, err := tree.Enumerate(ctx, e.left, tree.Options{Side: models.SideLeft, Exclude: excluder, Logger: e.logger})
	if err != nil {
		return nil, err
	}
	rightIndex, err := tree.Enumerate(ctx, e.right, tree.Options{Side: models.SideRight, Exclude: excluder, Logger: e.logger})
	if err != nil {
		return nil, err
	}
	report.LeftFiles = len(leftIndex)
	report.RightFiles = len(rightIndex)

	tasks := plan(leftIndex, rightIndex, e.operation.ReportRightOnly)

	e.progress.Start(len(tasks))
	results, err := e.execute(ctx, tasks)
	e.progress.Finish()
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		if r == nil {
			continue
		}
		if r.Kind == models.KindUnreadable {
			e.logger.Error(ctx, "File could not be read", r.Err, logging.Fields{
				"path": r.Path,
				"side": string(r.Side),
			})
		}
		report.Add(*r)
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	e.logger.Info(ctx, "Comparison complete", logging.Fields{
		"differing_files": report.TotalFiles,
		"differing_lines": report.TotalLines,
		"unreadable":      len(report.Unreadable()),
		"status":          string(report.Status),
		"duration_ms":     report.Duration.Milliseconds(),
	})

	return report, nil
}
