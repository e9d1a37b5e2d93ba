package output

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

// Progress receives per-file notifications during a comparison.
// Increment may be called from several goroutines.
type Progress interface {
	Start(total int)
	Increment(path string)
	Finish()
}

// NopProgress ignores all notifications
type NopProgress struct{}

func (NopProgress) Start(int)        {}
func (NopProgress) Increment(string) {}
func (NopProgress) Finish()          {}

// BarProgress draws a progress bar of compared files
type BarProgress struct {
	writer io.Writer
	bar    *pb.ProgressBar
}

// NewBarProgress creates a progress bar writing to w
func NewBarProgress(w io.Writer) *BarProgress {
	return &BarProgress{writer: w}
}

// Start draws an empty bar for total files
func (p *BarProgress) Start(total int) {
	p.bar = pb.New(total)
	p.bar.SetWriter(p.writer)
	p.bar.Start()
}

// Increment advances the bar by one file
func (p *BarProgress) Increment(string) {
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Finish completes the bar
func (p *BarProgress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
