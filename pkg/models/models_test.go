package models

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============== FileIndex Tests ==============

func TestFileIndexSortedPaths(t *testing.T) {
	idx := FileIndex{
		"b/c.txt": "/l/b/c.txt",
		"a.txt":   "/l/a.txt",
		"b.txt":   "/l/b.txt",
	}

	assert.Equal(t, []string{"a.txt", "b.txt", "b/c.txt"}, idx.SortedPaths())
}

func TestFileIndexPartition(t *testing.T) {
	left := FileIndex{"a.txt": "/l/a.txt", "b.txt": "/l/b.txt", "sub/c.txt": "/l/sub/c.txt"}
	right := FileIndex{"b.txt": "/r/b.txt", "d.txt": "/r/d.txt"}

	only, common := left.Partition(right)
	assert.Equal(t, []string{"a.txt", "sub/c.txt"}, only)
	assert.Equal(t, []string{"b.txt"}, common)

	only, common = right.Partition(left)
	assert.Equal(t, []string{"d.txt"}, only)
	assert.Equal(t, []string{"b.txt"}, common)
}

func TestFileIndexPartitionEmpty(t *testing.T) {
	only, common := FileIndex{}.Partition(FileIndex{"x": "/x"})
	assert.Empty(t, only)
	assert.Empty(t, common)
}

// ============== Report Tests ==============

func TestReportAdd(t *testing.T) {
	r := &Report{Status: StatusSuccess}
	r.Add(OnlyInLeft("a.txt", 3))
	r.Add(Differs("c.txt", 6))

	assert.Equal(t, 2, r.TotalFiles)
	assert.Equal(t, 9, r.TotalLines)
	assert.Equal(t, StatusSuccess, r.Status)
	assert.Len(t, r.Outcomes, 2)
}

func TestReportAddUnreadable(t *testing.T) {
	r := &Report{Status: StatusSuccess}
	r.Add(Unreadable("gone.txt", SideRight, fs.ErrNotExist))
	r.Add(OnlyInRight("new.txt", 2))

	assert.Equal(t, 1, r.TotalFiles, "unreadable files are not counted")
	assert.Equal(t, 2, r.TotalLines)
	assert.Equal(t, StatusPartial, r.Status)
	require.Len(t, r.Unreadable(), 1)
	assert.Equal(t, "gone.txt", r.Unreadable()[0].Path)
}

func TestStatusExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, StatusSuccess.ExitCode())
	assert.Equal(t, ExitPartial, StatusPartial.ExitCode())
	assert.Equal(t, ExitUsage, Status("bogus").ExitCode())
}

// ============== Operation Tests ==============

func TestCompareOperationValidate(t *testing.T) {
	valid := func() *CompareOperation {
		return &CompareOperation{
			LeftPath:   "/a",
			RightPath:  "/b",
			Metric:     MetricUnified,
			MaxWorkers: 1,
		}
	}

	tests := []struct {
		name   string
		mutate func(op *CompareOperation)
		field  string
	}{
		{"Valid", func(op *CompareOperation) {}, ""},
		{"MissingLeft", func(op *CompareOperation) { op.LeftPath = "" }, "LeftPath"},
		{"MissingRight", func(op *CompareOperation) { op.RightPath = "" }, "RightPath"},
		{"NoWorkers", func(op *CompareOperation) { op.MaxWorkers = 0 }, "MaxWorkers"},
		{"BadMetric", func(op *CompareOperation) { op.Metric = "bytes" }, "Metric"},
		{"ChangedMetric", func(op *CompareOperation) { op.Metric = MetricChanged }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := valid()
			tt.mutate(op)
			err := op.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

// ============== Error Tests ==============

func TestRootErrorMatchesKindAndCause(t *testing.T) {
	err := &RootError{Side: SideLeft, Path: "/missing", Kind: ErrRootNotFound, Err: fs.ErrNotExist}

	assert.ErrorIs(t, err, ErrRootNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrRootUnreadable)
	assert.Contains(t, err.Error(), "/missing")
	assert.Contains(t, err.Error(), "left tree")
}

func TestFileErrorMatchesKind(t *testing.T) {
	cause := errors.New("permission denied")
	err := &FileError{Side: SideRight, Path: "/r/x.txt", Err: cause}

	assert.ErrorIs(t, err, ErrFileUnreadable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "right tree")
}

func TestOutputErrorMatchesKind(t *testing.T) {
	err := &OutputError{Path: "/ro/report.txt", Err: fs.ErrPermission}

	assert.ErrorIs(t, err, ErrOutputWrite)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "/ro/report.txt")
}
