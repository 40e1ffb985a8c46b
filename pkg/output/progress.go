package output

import (
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

const (
	indicatorTemplate = `{{ cycle . "⠋" "⠙" "⠹" "⠸" "⠼" "⠴" "⠦" "⠧" "⠇" "⠏" }} {{ string . "label" }} {{ etime . }}`
	refreshInterval   = 100 * time.Millisecond
)

// Indicator shows a label and elapsed time while a long call runs.
// It has no notion of total work.
type Indicator struct {
	bar *pb.ProgressBar
}

// StartIndicator begins redrawing label on w
func StartIndicator(w io.Writer, label string) *Indicator {
	bar := pb.ProgressBarTemplate(indicatorTemplate).New(0)
	bar.SetWriter(w)
	bar.SetRefreshRate(refreshInterval)
	bar.Set("label", label)
	bar.Start()
	return &Indicator{bar: bar}
}

// Stop draws the final frame and halts redrawing
func (i *Indicator) Stop() {
	i.bar.Finish()
}

// WithIndicator runs fn while an indicator is drawn on w, when enabled
func WithIndicator(w io.Writer, enabled bool, label string, fn func()) {
	if !enabled {
		fn()
		return
	}
	indicator := StartIndicator(w, label)
	defer indicator.Stop()
	fn()
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// TerminalWidth returns the column count of w, or 0 when w is not a terminal
func TerminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return 0
	}
	if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
		return width
	}
	return 0
}
