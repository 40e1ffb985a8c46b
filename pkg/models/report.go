package models

import (
	"time"
)

// Action identifies a bulk operation
type Action string

const (
	// ActionDelete removes files
	ActionDelete Action = "delete"
	// ActionMove moves files into a destination directory
	ActionMove Action = "move"
)

// Stage identifies where a bulk operation stopped producing problems
type Stage string

const (
	// StagePreflight means the operation was refused before touching any file
	StagePreflight Stage = "preflight"
	// StageExecute means the per-item phase ran
	StageExecute Stage = "execute"
)

// OperationReport represents the results of a bulk delete or move
type OperationReport struct {
	// ID uniquely identifies the run in logs and output
	ID string

	Action      Action
	Destination string

	// Stage is StagePreflight when the run was refused
	Stage Stage

	// Requested is the number of paths handed to the operation
	Requested int

	// Succeeded is the number of paths actually deleted or moved
	Succeeded int

	// Skipped counts delete targets that were no longer regular files
	Skipped int

	// Problems are pre-flight problems or per-item failures depending on Stage
	Problems []ProblemEntry

	StartTime time.Time
	Duration  time.Duration
}

// Status derives the overall outcome of the report
func (r *OperationReport) Status() Status {
	switch {
	case r.Stage == StagePreflight && len(r.Problems) > 0:
		return StatusRefused
	case len(r.Problems) == 0:
		return StatusSuccess
	case r.Succeeded > 0:
		return StatusPartial
	default:
		return StatusFailed
	}
}

// Status represents the overall result of an operation
type Status string

const (
	// StatusSuccess indicates every path was processed
	StatusSuccess Status = "success"
	// StatusPartial indicates some per-item operations failed
	StatusPartial Status = "partial"
	// StatusFailed indicates every per-item operation failed
	StatusFailed Status = "failed"
	// StatusRefused indicates pre-flight rejected the operation
	StatusRefused Status = "refused"
)

// ExitCode returns the appropriate exit code for the status
func (s Status) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	default:
		return 2
	}
}
