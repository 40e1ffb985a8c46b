package models

import (
	"errors"
)

// BytesPerMB converts the megabyte unit used by thresholds and filters to bytes
const BytesPerMB = 1024 * 1024

// MBToBytes converts a megabyte value to a byte count, truncating fractions
func MBToBytes(mb float64) int64 {
	return int64(mb * BytesPerMB)
}

// ValidationOutcome is the result of a pure validation check.
// Message is empty when Valid is true.
type ValidationOutcome struct {
	Valid   bool
	Message string
}

// Valid returns a passing outcome
func Valid() ValidationOutcome {
	return ValidationOutcome{Valid: true}
}

// Invalid returns a failing outcome with the given reason
func Invalid(message string) ValidationOutcome {
	return ValidationOutcome{Valid: false, Message: message}
}

// Err converts a failing outcome into a *ValidationError for the given field.
// Returns nil for a passing outcome.
func (o ValidationOutcome) Err(field string) error {
	if o.Valid {
		return nil
	}
	return &ValidationError{Field: field, Message: o.Message}
}

// ProblemEntry describes why one specific path could not be processed
type ProblemEntry struct {
	Path   string
	Reason string
}

// FilterSpec configures the attribute filter applied to scan results.
// The zero value only drops hidden entries, since IncludeHidden defaults to false.
type FilterSpec struct {
	// FileTypes restricts entries to these categories (empty = no restriction)
	FileTypes []FileCategory `yaml:"file_types" json:"file_types" validate:"omitempty,dive,oneof=video image document archive other"`

	// MaxSizeMB excludes entries larger than this many megabytes (0 = unbounded)
	MaxSizeMB float64 `yaml:"max_size_mb" json:"max_size_mb" validate:"gte=0"`

	// DaysOld keeps only entries last modified at least this many days ago (0 = off)
	DaysOld int `yaml:"days_old" json:"days_old" validate:"gte=0"`

	// IncludeHidden keeps entries whose base name starts with a dot
	IncludeHidden bool `yaml:"include_hidden" json:"include_hidden"`
}

// IsZero reports whether no field of the spec is set
func (s FilterSpec) IsZero() bool {
	return len(s.FileTypes) == 0 && s.MaxSizeMB == 0 && s.DaysOld == 0 && !s.IncludeHidden
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
