package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/41008896/treediff/pkg/models"
)

// WriteSummary prints a short console summary of a run
func WriteSummary(w io.Writer, report *models.Report, reportPath string) {
	fmt.Fprintf(w, "Compared %s against %s in %s\n",
		report.LeftPath, report.RightPath, report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "  Scanned:          %s left, %s right files\n",
		humanize.Comma(int64(report.LeftFiles)), humanize.Comma(int64(report.RightFiles)))
	fmt.Fprintf(w, "  Differing files:  %s\n", humanize.Comma(int64(report.TotalFiles)))
	fmt.Fprintf(w, "  Differing lines:  %s (%s metric)\n", humanize.Comma(int64(report.TotalLines)), report.Metric)

	unreadable := report.Unreadable()
	if len(unreadable) > 0 {
		fmt.Fprintf(w, "  Unreadable files: %d\n", len(unreadable))
		for _, o := range unreadable {
			fmt.Fprintf(w, "    %s (%s): %s\n", o.Path, o.Side, causeMessage(o.Err))
		}
	}
	if reportPath != "" {
		fmt.Fprintf(w, "  Report:           %s\n", reportPath)
	}

	status := color.New(color.FgGreen, color.Bold)
	if report.Status != models.StatusSuccess {
		status = color.New(color.FgYellow, color.Bold)
	}
	fmt.Fprint(w, "Status: ")
	status.Fprintln(w, report.Status)
}
