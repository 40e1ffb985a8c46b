// Package bulk deletes or moves many files at once.
//
// Every operation runs as two explicit stages. The pre-flight stage validates
// all inputs and refuses the whole operation on any problem, before a single
// file is touched. The execute stage then processes each path independently,
// recording failures and carrying on with the remaining paths.
package bulk

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/sizesweep/pkg/audit"
	"github.com/sdejongh/sizesweep/pkg/logging"
	"github.com/sdejongh/sizesweep/pkg/models"
	"github.com/sdejongh/sizesweep/pkg/storage"
	"github.com/sdejongh/sizesweep/pkg/validate"
)

// ReasonDestinationNotWritable is reported when the move destination rejects writes
const ReasonDestinationNotWritable = "destination directory is not writable"

// Executor applies delete and move to lists of paths
type Executor struct {
	backend       storage.Backend
	auditor       *audit.Auditor
	pathValidator *validate.PathValidator
	logger        logging.Logger
}

// NewExecutor creates an executor over backend. A nil logger discards output.
func NewExecutor(backend storage.Backend, logger logging.Logger) *Executor {
	return &Executor{
		backend:       backend,
		auditor:       audit.NewAuditor(backend),
		pathValidator: validate.NewPathValidator(backend),
		logger:        logging.OrNull(logger).WithFields(logging.Fields{"component": "bulk"}),
	}
}

// Delete removes every path once pre-flight passes and returns the problems:
// the pre-flight problems if it was refused, else the per-item failures.
func (e *Executor) Delete(paths []string) []models.ProblemEntry {
	return e.DeleteReport(paths).Problems
}

// Move moves every path into destination once pre-flight passes and returns
// the problems, as Delete does.
func (e *Executor) Move(paths []string, destination string) []models.ProblemEntry {
	return e.MoveReport(paths, destination).Problems
}

// DeleteReport runs Delete and returns the full operation report
func (e *Executor) DeleteReport(paths []string) *models.OperationReport {
	report := e.newReport(models.ActionDelete, paths, "")
	logger := e.logger.WithFields(logging.Fields{"operation_id": report.ID, "action": string(report.Action)})

	if problems := e.PreflightDelete(paths); len(problems) > 0 {
		return e.refuse(logger, report, problems)
	}

	report.Stage = models.StageExecute
	for _, path := range paths {
		info, err := e.backend.Lstat(path)
		if err != nil || !info.IsRegular {
			report.Skipped++
			logger.Debug("skipping non-regular path", logging.Fields{"path": path})
			continue
		}
		if err := e.backend.Remove(path); err != nil {
			e.fail(logger, report, path, err)
			continue
		}
		report.Succeeded++
	}

	return e.finish(logger, report)
}

// MoveReport runs Move and returns the full operation report
func (e *Executor) MoveReport(paths []string, destination string) *models.OperationReport {
	report := e.newReport(models.ActionMove, paths, destination)
	logger := e.logger.WithFields(logging.Fields{
		"operation_id": report.ID,
		"action":       string(report.Action),
		"destination":  destination,
	})

	if problems := e.PreflightMove(paths, destination); len(problems) > 0 {
		return e.refuse(logger, report, problems)
	}

	report.Stage = models.StageExecute
	for _, path := range paths {
		target := filepath.Join(destination, filepath.Base(path))
		if err := e.backend.Move(path, target); err != nil {
			e.fail(logger, report, path, err)
			continue
		}
		report.Succeeded++
	}

	return e.finish(logger, report)
}

// PreflightDelete is the delete pre-flight: the permission audit of paths
func (e *Executor) PreflightDelete(paths []string) []models.ProblemEntry {
	return e.auditor.Audit(paths)
}

// PreflightMove runs, stopping at the first failing stage: destination
// validation, the permission audit of paths, and the destination write check.
// Destination failures yield a single problem keyed on destination.
func (e *Executor) PreflightMove(paths []string, destination string) []models.ProblemEntry {
	if outcome := e.pathValidator.Validate(destination); !outcome.Valid {
		return []models.ProblemEntry{{Path: destination, Reason: outcome.Message}}
	}
	if problems := e.auditor.Audit(paths); len(problems) > 0 {
		return problems
	}
	if !e.backend.Writable(destination) {
		return []models.ProblemEntry{{Path: destination, Reason: ReasonDestinationNotWritable}}
	}
	return []models.ProblemEntry{}
}

func (e *Executor) newReport(action models.Action, paths []string, destination string) *models.OperationReport {
	return &models.OperationReport{
		ID:          uuid.New().String(),
		Action:      action,
		Destination: destination,
		Stage:       models.StagePreflight,
		Requested:   len(paths),
		Problems:    []models.ProblemEntry{},
		StartTime:   time.Now(),
	}
}

func (e *Executor) refuse(logger logging.Logger, report *models.OperationReport, problems []models.ProblemEntry) *models.OperationReport {
	report.Problems = problems
	report.Duration = time.Since(report.StartTime)
	for _, problem := range problems {
		logger.Warn("pre-flight problem", logging.Fields{"path": problem.Path, "reason": problem.Reason})
	}
	logger.Info("operation refused", logging.Fields{"requested": report.Requested, "problems": len(problems)})
	return report
}

func (e *Executor) fail(logger logging.Logger, report *models.OperationReport, path string, err error) {
	report.Problems = append(report.Problems, models.ProblemEntry{Path: path, Reason: err.Error()})
	logger.Error("operation failed for path", err, logging.Fields{"path": path})
}

func (e *Executor) finish(logger logging.Logger, report *models.OperationReport) *models.OperationReport {
	report.Duration = time.Since(report.StartTime)
	logger.Info("operation complete", logging.Fields{
		"requested":   report.Requested,
		"succeeded":   report.Succeeded,
		"skipped":     report.Skipped,
		"failed":      len(report.Problems),
		"status":      string(report.Status()),
		"duration_ms": report.Duration.Milliseconds(),
	})
	return report
}
