package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/sizesweep/pkg/models"
)

// ScanView is what a scan command displays
type ScanView struct {
	Result *models.ScanResult

	// Filtered, when set, replaces Result.Entries as the listed entries
	Filtered *models.FilterResult

	// Stats adds the per-category breakdown
	Stats bool
}

// Entries returns the entries to list
func (v ScanView) Entries() []models.FileEntry {
	if v.Filtered != nil {
		return v.Filtered.Entries
	}
	return v.Result.Entries
}

// Formatter defines the interface for output formatting
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Scan renders a scan result
	Scan(w io.Writer, view ScanView) error

	// Validation renders the outcome of validating subject
	Validation(w io.Writer, subject string, outcome models.ValidationOutcome) error

	// Audit renders the permission audit of total paths
	Audit(w io.Writer, total int, problems []models.ProblemEntry) error

	// Report renders the result of a delete or move
	Report(w io.Writer, report *models.OperationReport) error

	// Name returns the formatter name
	Name() string
}

// Options configures formatter construction
type Options struct {
	Color bool
	Width int // 0 disables path truncation
}

// New returns the formatter for format ("human" or "json")
func New(format string, opts Options) (Formatter, error) {
	switch format {
	case "", "human":
		return NewHumanFormatter(opts.Color, opts.Width), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, &models.ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("unknown format %q", format),
		}
	}
}
