package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/41008896/treediff/pkg/models"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// RenderText renders the plain-text report: a two-line header, a blank
// line and one line per outcome, with no trailing newline
func RenderText(report *models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total differing files: %d\n", report.TotalFiles)
	fmt.Fprintf(&b, "Total differing lines: %d\n\n", report.TotalLines)

	entries := make([]string, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		entries = append(entries, FormatOutcome(o))
	}
	b.WriteString(strings.Join(entries, "\n"))

	return b.String()
}

// FormatOutcome renders one report line
func FormatOutcome(o models.Outcome) string {
	switch o.Kind {
	case models.KindOnlyInLeft:
		return fmt.Sprintf("File %s is only in dir1. Line count: %d", o.Path, o.Lines)
	case models.KindOnlyInRight:
		return fmt.Sprintf("File %s is only in dir2. Line count: %d", o.Path, o.Lines)
	case models.KindDifferent:
		return fmt.Sprintf("File %s is different. Line count of differences: %d", o.Path, o.Lines)
	default:
		return fmt.Sprintf("File %s could not be read from %s: %s", o.Path, o.Side, causeMessage(o.Err))
	}
}

// causeMessage strips the FileError envelope, which repeats path and side
func causeMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	var fileErr *models.FileError
	if errors.As(err, &fileErr) && fileErr.Err != nil {
		return fileErr.Err.Error()
	}
	return err.Error()
}

type jsonOutcome struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Lines int    `json:"lines"`
	Side  string `json:"side,omitempty"`
	Error string `json:"error,omitempty"`
}

type jsonReport struct {
	RunID      string        `json:"run_id"`
	Left       string        `json:"left"`
	Right      string        `json:"right"`
	Metric     string        `json:"metric"`
	TotalFiles int           `json:"total_files"`
	TotalLines int           `json:"total_lines"`
	Status     string        `json:"status"`
	Outcomes   []jsonOutcome `json:"outcomes"`
}

// RenderJSON writes the report as indented JSON
func RenderJSON(report *models.Report, w io.Writer) error {
	out := jsonReport{
		RunID:      report.RunID,
		Left:       report.LeftPath,
		Right:      report.RightPath,
		Metric:     string(report.Metric),
		TotalFiles: report.TotalFiles,
		TotalLines: report.TotalLines,
		Status:     string(report.Status),
		Outcomes:   make([]jsonOutcome, 0, len(report.Outcomes)),
	}
	for _, o := range report.Outcomes {
		jo := jsonOutcome{Path: o.Path, Kind: string(o.Kind), Lines: o.Lines}
		if o.Kind == models.KindUnreadable {
			jo.Side = string(o.Side)
			jo.Error = causeMessage(o.Err)
		}
		out.Outcomes = append(out.Outcomes, jo)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// WriteReport writes the report to path, or to stdout when path is empty.
// Failures are returned as *models.OutputError.
func WriteReport(report *models.Report, path, format string, stdout io.Writer) error {
	target := path
	if target == "" {
		target = "<stdout>"
	}

	var w io.Writer = stdout
	var file *os.File
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return &models.OutputError{Path: target, Err: err}
		}
		file = f
		w = f
	}

	var err error
	switch format {
	case FormatJSON:
		err = RenderJSON(report, w)
	default:
		_, err = io.WriteString(w, RenderText(report))
	}

	if file != nil {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}
	if err != nil {
		return &models.OutputError{Path: target, Err: err}
	}
	return nil
}
