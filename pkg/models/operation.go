package models

import (
	"time"
)

// Metric selects how differing lines are counted for common files
type Metric string

const (
	// MetricUnified counts every line a unified diff (3 context lines)
	// emits, including the ---/+++ file headers and @@ hunk headers
	MetricUnified Metric = "unified"
	// MetricChanged counts inserted plus deleted lines only
	MetricChanged Metric = "changed"
)

// CompareOperation holds the parameters of one comparison run
type CompareOperation struct {
	ID              string
	LeftPath        string
	RightPath       string
	OutputPath      string
	Metric          Metric
	ReportRightOnly bool
	ExcludePatterns []string
	MaxWorkers      int
	CreatedAt       time.Time
}

// Validate checks if the operation configuration is valid
func (op *CompareOperation) Validate() error {
	if op.LeftPath == "" {
		return &ValidationError{Field: "LeftPath", Message: "left path is required"}
	}
	if op.RightPath == "" {
		return &ValidationError{Field: "RightPath", Message: "right path is required"}
	}
	if op.MaxWorkers < 1 {
		return &ValidationError{Field: "MaxWorkers", Message: "max workers must be at least 1"}
	}
	switch op.Metric {
	case MetricUnified, MetricChanged:
	default:
		return &ValidationError{Field: "Metric", Message: "metric must be 'unified' or 'changed'"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
