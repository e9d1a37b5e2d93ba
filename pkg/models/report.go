package models

import (
	"time"
)

// Report is the result of a comparison run. Outcomes are appended once per
// file and the report is finalized before rendering.
type Report struct {
	RunID     string
	LeftPath  string
	RightPath string
	Metric    Metric

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Scan counts
	LeftFiles  int
	RightFiles int

	Outcomes []Outcome

	// TotalFiles is the number of counted outcomes
	TotalFiles int
	// TotalLines is the sum of Lines over counted outcomes
	TotalLines int

	Status Status
}

// Add appends an outcome and updates the totals
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.Counted() {
		r.TotalFiles++
		r.TotalLines += o.Lines
	} else {
		r.Status = StatusPartial
	}
}

// Unreadable returns the outcomes for files that could not be read
func (r *Report) Unreadable() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Kind == KindUnreadable {
			out = append(out, o)
		}
	}
	return out
}

// Status represents the overall result of a run
type Status string

const (
	// StatusSuccess indicates every file was compared
	StatusSuccess Status = "success"
	// StatusPartial indicates one or more files could not be read
	StatusPartial Status = "partial"
)

// ExitCode returns the process exit code for the status
func (s Status) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return ExitPartial
	default:
		return ExitUsage
	}
}

// Exit codes
const (
	ExitSuccess     = 0
	ExitUsage       = 1
	ExitInvalidRoot = 2
	ExitOutputWrite = 3
	ExitPartial     = 4
	ExitCancelled   = 130
)
