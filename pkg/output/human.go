package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/sdejongh/sizesweep/pkg/models"
)

const sizeColumn = 12

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	width int
	ok    *color.Color
	fail  *color.Color
	dim   *color.Color
}

// NewHumanFormatter creates a new human-readable formatter.
// Paths wider than width are shortened from the left; 0 disables it.
func NewHumanFormatter(useColor bool, width int) *HumanFormatter {
	f := &HumanFormatter{
		width: width,
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{f.ok, f.fail, f.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Scan renders the kept entries, skips and optional category breakdown
func (f *HumanFormatter) Scan(w io.Writer, view ScanView) error {
	result := view.Result
	entries := view.Entries()

	fmt.Fprintf(w, "Scanned %s: %d files, %d at or above %s (%s)\n",
		result.Root, result.FilesSeen, len(result.Entries),
		FormatBytes(result.ThresholdBytes), formatDuration(result.Duration))
	if view.Filtered != nil {
		fmt.Fprintf(w, "Filter kept %d of %d\n", len(entries), len(result.Entries))
	}

	if len(entries) == 0 {
		fmt.Fprintf(w, "\nNo files found.\n")
	} else {
		fmt.Fprintf(w, "\n")
		var total int64
		for _, entry := range entries {
			total += entry.Size
			fmt.Fprintf(w, "  %*s  %s\n", sizeColumn, FormatBytes(entry.Size), f.fitPath(entry.Path, sizeColumn+4))
		}
		fmt.Fprintf(w, "\nTotal: %d files, %s\n", len(entries), FormatBytes(total))
	}

	if view.Stats && len(entries) > 0 {
		fmt.Fprintf(w, "\nBy category:\n")
		for _, stat := range models.Summarize(entries) {
			fmt.Fprintf(w, "  %-10s %6d  %*s\n", stat.Category, stat.Count, sizeColumn, FormatBytes(stat.Bytes))
		}
	}

	if len(result.Skipped) > 0 {
		fmt.Fprintf(w, "\nSkipped %d inaccessible entries:\n", len(result.Skipped))
		for _, skipped := range result.Skipped {
			fmt.Fprintf(w, "  %s %s: %s\n", f.dim.Sprint("-"), skipped.Path, skipped.Reason)
		}
	}
	if view.Filtered != nil && len(view.Filtered.Unverified) > 0 {
		fmt.Fprintf(w, "\nKept without verification:\n")
		for _, unverified := range view.Filtered.Unverified {
			fmt.Fprintf(w, "  %s %s: %s\n", f.dim.Sprint("?"), unverified.Path, unverified.Reason)
		}
	}

	return nil
}

// Validation renders a single check result
func (f *HumanFormatter) Validation(w io.Writer, subject string, outcome models.ValidationOutcome) error {
	if outcome.Valid {
		fmt.Fprintf(w, "%s %s: valid\n", f.ok.Sprint("✓"), subject)
		return nil
	}
	fmt.Fprintf(w, "%s %s: %s\n", f.fail.Sprint("✗"), subject, outcome.Message)
	return nil
}

// Audit renders the permission problems, or a confirmation when there are none
func (f *HumanFormatter) Audit(w io.Writer, total int, problems []models.ProblemEntry) error {
	if len(problems) == 0 {
		fmt.Fprintf(w, "%s All %d paths can be modified\n", f.ok.Sprint("✓"), total)
		return nil
	}
	fmt.Fprintf(w, "%d of %d paths cannot be modified:\n", len(problems), total)
	f.problems(w, problems)
	return nil
}

// Report renders a delete or move outcome
func (f *HumanFormatter) Report(w io.Writer, report *models.OperationReport) error {
	verb := "deleted"
	if report.Action == models.ActionMove {
		verb = "moved to " + report.Destination
	}

	if report.Status() == models.StatusRefused {
		fmt.Fprintf(w, "%s %s refused: %d problem(s) found, nothing was changed\n",
			f.fail.Sprint("✗"), report.Action, len(report.Problems))
		f.problems(w, report.Problems)
		fmt.Fprintf(w, "%s\n", f.dim.Sprint("Operation "+report.ID))
		return nil
	}

	marker := f.ok.Sprint("✓")
	if len(report.Problems) > 0 {
		marker = f.fail.Sprint("✗")
	}
	fmt.Fprintf(w, "%s %d of %d files %s (%s)\n",
		marker, report.Succeeded, report.Requested, verb, formatDuration(report.Duration))
	if report.Skipped > 0 {
		fmt.Fprintf(w, "  %d skipped (not a regular file)\n", report.Skipped)
	}
	if len(report.Problems) > 0 {
		fmt.Fprintf(w, "\nFailures:\n")
		f.problems(w, report.Problems)
	}
	fmt.Fprintf(w, "\nStatus: %s\n", report.Status())
	fmt.Fprintf(w, "%s\n", f.dim.Sprint("Operation "+report.ID))
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

func (f *HumanFormatter) problems(w io.Writer, problems []models.ProblemEntry) {
	for _, problem := range problems {
		fmt.Fprintf(w, "  %s %s: %s\n", f.fail.Sprint("✗"), problem.Path, problem.Reason)
	}
}

// fitPath shortens path from the left so a line with indent columns
// before it stays within the terminal width
func (f *HumanFormatter) fitPath(path string, indent int) string {
	if f.width <= 0 {
		return path
	}
	return truncateLeft(path, f.width-indent)
}

// truncateLeft keeps the tail of s within max display columns
func truncateLeft(s string, max int) string {
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}

	runes := []rune(s)
	width := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if width+rw > max-1 {
			break
		}
		width += rw
		i--
	}
	return "…" + string(runes[i:])
}

// FormatBytes formats bytes in human-readable binary units
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// formatDuration formats duration in human-readable format
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
