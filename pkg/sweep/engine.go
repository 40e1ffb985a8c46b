// Package sweep is the single entry point to the scanning and bulk operation core.
//
// Engine bundles the validators, scanner, filter, auditor and executor over one
// storage backend. Every call takes its inputs as arguments and returns a fresh
// result; the engine keeps nothing between calls.
package sweep

import (
	"github.com/sdejongh/sizesweep/pkg/audit"
	"github.com/sdejongh/sizesweep/pkg/bulk"
	"github.com/sdejongh/sizesweep/pkg/filter"
	"github.com/sdejongh/sizesweep/pkg/logging"
	"github.com/sdejongh/sizesweep/pkg/models"
	"github.com/sdejongh/sizesweep/pkg/scan"
	"github.com/sdejongh/sizesweep/pkg/storage"
	"github.com/sdejongh/sizesweep/pkg/validate"
)

// Engine exposes the core operations
type Engine struct {
	pathValidator *validate.PathValidator
	scanner       *scan.Scanner
	filter        *filter.Filter
	auditor       *audit.Auditor
	executor      *bulk.Executor
}

// NewEngine wires the core components over backend
func NewEngine(backend storage.Backend, logger logging.Logger) *Engine {
	logger = logging.OrNull(logger)
	return &Engine{
		pathValidator: validate.NewPathValidator(backend),
		scanner:       scan.NewScanner(backend, logger),
		filter:        filter.NewFilter(backend, logger),
		auditor:       audit.NewAuditor(backend),
		executor:      bulk.NewExecutor(backend, logger),
	}
}

// NewLocalEngine creates an engine over the local file system
func NewLocalEngine(logger logging.Logger) *Engine {
	return NewEngine(storage.NewLocal(), logger)
}

// ValidatePath checks that path is an existing, readable directory
func (e *Engine) ValidatePath(path string) models.ValidationOutcome {
	return e.pathValidator.Validate(path)
}

// ValidateSizeLimit checks a user-supplied threshold in megabytes
func (e *Engine) ValidateSizeLimit(value string) models.ValidationOutcome {
	return validate.ValidateSizeLimit(value)
}

// Scan returns the files under root of at least limitMB megabytes, largest first
func (e *Engine) Scan(root string, limitMB float64) (*models.ScanResult, error) {
	return e.scanner.Scan(root, limitMB)
}

// ScanWithOptions is Scan with exclude patterns
func (e *Engine) ScanWithOptions(root string, limitMB float64, opts scan.Options) (*models.ScanResult, error) {
	return e.scanner.ScanWithOptions(root, limitMB, opts)
}

// Filter narrows scan entries by spec
func (e *Engine) Filter(entries []models.FileEntry, spec models.FilterSpec) *models.FilterResult {
	return e.filter.Apply(entries, spec)
}

// AuditPermissions reports the paths that cannot be safely mutated
func (e *Engine) AuditPermissions(paths []string) []models.ProblemEntry {
	return e.auditor.Audit(paths)
}

// Delete removes paths after a passing pre-flight
func (e *Engine) Delete(paths []string) []models.ProblemEntry {
	return e.executor.Delete(paths)
}

// Move moves paths into destination after a passing pre-flight
func (e *Engine) Move(paths []string, destination string) []models.ProblemEntry {
	return e.executor.Move(paths, destination)
}

// DeleteReport is Delete returning the full operation report
func (e *Engine) DeleteReport(paths []string) *models.OperationReport {
	return e.executor.DeleteReport(paths)
}

// MoveReport is Move returning the full operation report
func (e *Engine) MoveReport(paths []string, destination string) *models.OperationReport {
	return e.executor.MoveReport(paths, destination)
}
