package engine

import (
	"context"

	"github.com/41008896/treediff/pkg/compare"
	"github.com/41008896/treediff/pkg/models"
	"github.com/41008896/treediff/pkg/storage"
)

// taskKind says how a relative path has to be processed
type taskKind int

const (
	taskOnlyLeft taskKind = iota
	taskCommon
	taskOnlyRight
)

// fileTask is the unit of work for one relative path
type fileTask struct {
	kind taskKind
	path string
}

// plan orders the work so that the report lists left-only files first,
// then common files, then right-only files, each group sorted by path
func plan(left, right models.FileIndex, rightOnly bool) []fileTask {
	onlyLeft, common := left.Partition(right)

	tasks := make([]fileTask, 0, len(left))
	for _, p := range onlyLeft {
		tasks = append(tasks, fileTask{kind: taskOnlyLeft, path: p})
	}
	for _, p := range common {
		tasks = append(tasks, fileTask{kind: taskCommon, path: p})
	}
	if rightOnly {
		onlyRight, _ := right.Partition(left)
		for _, p := range onlyRight {
			tasks = append(tasks, fileTask{kind: taskOnlyRight, path: p})
		}
	}
	return tasks
}

// process runs one task. A nil outcome means the file is identical on
// both sides.
func (e *Engine) process(ctx context.Context, t fileTask) *models.Outcome {
	switch t.kind {
	case taskOnlyLeft:
		lines, err := readLines(ctx, e.left, models.SideLeft, t.path)
		if err != nil {
			o := models.Unreadable(t.path, models.SideLeft, err)
			return &o
		}
		o := models.OnlyInLeft(t.path, len(lines))
		return &o

	case taskOnlyRight:
		lines, err := readLines(ctx, e.right, models.SideRight, t.path)
		if err != nil {
			o := models.Unreadable(t.path, models.SideRight, err)
			return &o
		}
		o := models.OnlyInRight(t.path, len(lines))
		return &o

	default:
		leftLines, err := readLines(ctx, e.left, models.SideLeft, t.path)
		if err != nil {
			o := models.Unreadable(t.path, models.SideLeft, err)
			return &o
		}
		rightLines, err := readLines(ctx, e.right, models.SideRight, t.path)
		if err != nil {
			o := models.Unreadable(t.path, models.SideRight, err)
			return &o
		}
		n := e.comparator.Compare(leftLines, rightLines)
		if n == 0 {
			return nil
		}
		o := models.Differs(t.path, n)
		return &o
	}
}

// readLines opens, reads and closes one file
func readLines(ctx context.Context, backend storage.Backend, side models.Side, relPath string) ([]string, error) {
	rc, err := backend.Open(ctx, relPath)
	if err != nil {
		return nil, &models.FileError{Side: side, Path: relPath, Err: err}
	}
	defer rc.Close()

	lines, err := compare.ReadLines(rc)
	if err != nil {
		return nil, &models.FileError{Side: side, Path: relPath, Err: err}
	}
	return lines, nil
}
