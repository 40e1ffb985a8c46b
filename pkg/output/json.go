package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/sizesweep/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct{}

// JSONEntryData represents one listed file
type JSONEntryData struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Category string `json:"category"`
}

// JSONProblemData represents a path that could not be processed
type JSONProblemData struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// JSONCategoryData represents per-category totals
type JSONCategoryData struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Bytes    int64  `json:"bytes"`
}

// JSONScanData represents a scan result
type JSONScanData struct {
	Root           string             `json:"root"`
	ThresholdBytes int64              `json:"threshold_bytes"`
	FilesSeen      int                `json:"files_seen"`
	DurationMs     int64              `json:"duration_ms"`
	TotalBytes     int64              `json:"total_bytes"`
	Entries        []JSONEntryData    `json:"entries"`
	Skipped        []JSONProblemData  `json:"skipped,omitempty"`
	Unverified     []JSONProblemData  `json:"unverified,omitempty"`
	Categories     []JSONCategoryData `json:"categories,omitempty"`
}

// JSONValidationData represents a validation outcome
type JSONValidationData struct {
	Subject string `json:"subject"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// JSONAuditData represents a permission audit
type JSONAuditData struct {
	Total    int               `json:"total"`
	Safe     bool              `json:"safe"`
	Problems []JSONProblemData `json:"problems"`
}

// JSONReportData represents the final report of a delete or move
type JSONReportData struct {
	ID          string            `json:"id"`
	Action      string            `json:"action"`
	Destination string            `json:"destination,omitempty"`
	Stage       string            `json:"stage"`
	Status      string            `json:"status"`
	Requested   int               `json:"requested"`
	Succeeded   int               `json:"succeeded"`
	Skipped     int               `json:"skipped"`
	Duration    string            `json:"duration"`
	DurationMs  int64             `json:"duration_ms"`
	Problems    []JSONProblemData `json:"problems"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Scan writes the scan result as one JSON document
func (f *JSONFormatter) Scan(w io.Writer, view ScanView) error {
	result := view.Result
	entries := view.Entries()

	data := JSONScanData{
		Root:           result.Root,
		ThresholdBytes: result.ThresholdBytes,
		FilesSeen:      result.FilesSeen,
		DurationMs:     result.Duration.Milliseconds(),
		Entries:        make([]JSONEntryData, 0, len(entries)),
	}
	for _, entry := range entries {
		data.TotalBytes += entry.Size
		data.Entries = append(data.Entries, JSONEntryData{
			Path:     entry.Path,
			Size:     entry.Size,
			Category: string(models.CategoryOf(entry.Path)),
		})
	}
	for _, skipped := range result.Skipped {
		data.Skipped = append(data.Skipped, JSONProblemData{Path: skipped.Path, Reason: skipped.Reason})
	}
	if view.Filtered != nil {
		for _, unverified := range view.Filtered.Unverified {
			data.Unverified = append(data.Unverified, JSONProblemData{Path: unverified.Path, Reason: unverified.Reason})
		}
	}
	if view.Stats {
		for _, stat := range models.Summarize(entries) {
			data.Categories = append(data.Categories, JSONCategoryData{
				Category: string(stat.Category),
				Count:    stat.Count,
				Bytes:    stat.Bytes,
			})
		}
	}

	return encode(w, data)
}

// Validation writes a validation outcome
func (f *JSONFormatter) Validation(w io.Writer, subject string, outcome models.ValidationOutcome) error {
	return encode(w, JSONValidationData{Subject: subject, Valid: outcome.Valid, Message: outcome.Message})
}

// Audit writes the audit problems
func (f *JSONFormatter) Audit(w io.Writer, total int, problems []models.ProblemEntry) error {
	return encode(w, JSONAuditData{Total: total, Safe: len(problems) == 0, Problems: toProblemData(problems)})
}

// Report writes an operation report
func (f *JSONFormatter) Report(w io.Writer, report *models.OperationReport) error {
	return encode(w, JSONReportData{
		ID:          report.ID,
		Action:      string(report.Action),
		Destination: report.Destination,
		Stage:       string(report.Stage),
		Status:      string(report.Status()),
		Requested:   report.Requested,
		Succeeded:   report.Succeeded,
		Skipped:     report.Skipped,
		Duration:    report.Duration.Round(time.Millisecond).String(),
		DurationMs:  report.Duration.Milliseconds(),
		Problems:    toProblemData(report.Problems),
	})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

func toProblemData(problems []models.ProblemEntry) []JSONProblemData {
	data := make([]JSONProblemData, 0, len(problems))
	for _, problem := range problems {
		data = append(data, JSONProblemData{Path: problem.Path, Reason: problem.Reason})
	}
	return data
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
