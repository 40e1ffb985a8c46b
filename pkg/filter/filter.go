// Package filter narrows scan results by category, size, age and visibility.
package filter

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/sdejongh/sizesweep/pkg/logging"
	"github.com/sdejongh/sizesweep/pkg/models"
	"github.com/sdejongh/sizesweep/pkg/storage"
)

// Filter applies a FilterSpec to scan results.
// It holds no memory of previous specs.
type Filter struct {
	backend storage.Backend
	logger  logging.Logger
	now     func() time.Time
}

// NewFilter creates a filter reading modification times through backend
func NewFilter(backend storage.Backend, logger logging.Logger) *Filter {
	return &Filter{
		backend: backend,
		logger:  logging.OrNull(logger).WithFields(logging.Fields{"component": "filter"}),
		now:     time.Now,
	}
}

// Apply keeps the entries that pass every active rule of spec, in input order.
// An entry whose modification time cannot be read is kept and listed in
// FilterResult.Unverified.
func (f *Filter) Apply(entries []models.FileEntry, spec models.FilterSpec) *models.FilterResult {
	result := &models.FilterResult{Entries: make([]models.FileEntry, 0, len(entries))}

	var maxBytes int64
	if spec.MaxSizeMB > 0 {
		maxBytes = models.MBToBytes(spec.MaxSizeMB)
	}
	types := make(map[models.FileCategory]struct{}, len(spec.FileTypes))
	for _, category := range spec.FileTypes {
		types[category] = struct{}{}
	}
	var cutoff time.Time
	if spec.DaysOld > 0 {
		cutoff = f.now().AddDate(0, 0, -spec.DaysOld)
	}

	for _, entry := range entries {
		if maxBytes > 0 && entry.Size > maxBytes {
			continue
		}
		if len(types) > 0 {
			if _, ok := types[models.CategoryOf(entry.Path)]; !ok {
				continue
			}
		}
		if !spec.IncludeHidden && isHidden(entry.Path) {
			continue
		}
		if !cutoff.IsZero() {
			info, err := f.backend.Stat(entry.Path)
			if err != nil {
				result.Unverified = append(result.Unverified, models.SkippedEntry{Path: entry.Path, Reason: err.Error()})
				f.logger.Warn("keeping entry with unreadable attributes", logging.Fields{
					"path":  entry.Path,
					"error": err.Error(),
				})
			} else if info.ModTime.After(cutoff) {
				continue
			}
		}
		result.Entries = append(result.Entries, entry)
	}

	f.logger.Debug("filter applied", logging.Fields{
		"input":      len(entries),
		"kept":       len(result.Entries),
		"unverified": len(result.Unverified),
	})

	return result
}

// isHidden reports whether the base name starts with a dot
func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
