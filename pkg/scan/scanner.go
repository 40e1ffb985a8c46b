// Package scan finds files at or above a size threshold under a directory tree.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/sdejongh/sizesweep/pkg/logging"
	"github.com/sdejongh/sizesweep/pkg/models"
	"github.com/sdejongh/sizesweep/pkg/storage"
	"github.com/sdejongh/sizesweep/pkg/validate"
)

// Options tunes a scan beyond root and threshold
type Options struct {
	// Exclude holds glob patterns for entries to leave out of the walk
	Exclude []string
}

// Scanner walks a directory tree and keeps files at or above a threshold.
// It holds no state between calls.
type Scanner struct {
	backend       storage.Backend
	pathValidator *validate.PathValidator
	logger        logging.Logger
}

// NewScanner creates a scanner over backend. A nil logger discards diagnostics.
func NewScanner(backend storage.Backend, logger logging.Logger) *Scanner {
	return &Scanner{
		backend:       backend,
		pathValidator: validate.NewPathValidator(backend),
		logger:        logging.OrNull(logger).WithFields(logging.Fields{"component": "scan"}),
	}
}

// Scan returns every regular file under root whose size is at least
// limitMB megabytes, largest first. See ScanWithOptions.
func (s *Scanner) Scan(root string, limitMB float64) (*models.ScanResult, error) {
	return s.ScanWithOptions(root, limitMB, Options{})
}

// ScanWithOptions validates root and limitMB, then walks the tree.
// An invalid root or limit fails the whole call with a *models.ValidationError
// before the tree is enumerated. Files whose metadata cannot be read are
// recorded in ScanResult.Skipped and the walk continues.
func (s *Scanner) ScanWithOptions(root string, limitMB float64, opts Options) (*models.ScanResult, error) {
	if err := s.pathValidator.Validate(root).Err("root"); err != nil {
		return nil, err
	}
	if err := validate.ValidateSizeLimitMB(limitMB).Err("limit_mb"); err != nil {
		return nil, err
	}
	excludes, err := compileExcludes(opts.Exclude)
	if err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root: %w", err)
	}

	start := time.Now()
	result := &models.ScanResult{
		Root:           absRoot,
		ThresholdBytes: models.MBToBytes(limitMB),
		Entries:        []models.FileEntry{},
	}

	walkErr := s.backend.Walk(absRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			s.skip(result, path, err)
			return nil
		}

		if path != absRoot {
			rel, relErr := filepath.Rel(absRoot, path)
			if relErr == nil && shouldExclude(excludes, rel, entry.IsDir()) {
				if entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}

		result.FilesSeen++
		info, statErr := s.backend.Lstat(path)
		if statErr != nil {
			s.skip(result, path, statErr)
			return nil
		}
		if !info.IsRegular {
			return nil
		}

		if info.Size >= result.ThresholdBytes {
			result.Entries = append(result.Entries, models.FileEntry{Path: path, Size: info.Size})
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", absRoot, walkErr)
	}

	// Stable: equal sizes keep discovery order
	sort.SliceStable(result.Entries, func(i, j int) bool {
		return result.Entries[i].Size > result.Entries[j].Size
	})
	result.Duration = time.Since(start)

	s.logger.Info("scan complete", logging.Fields{
		"root":        absRoot,
		"threshold":   result.ThresholdBytes,
		"files_seen":  result.FilesSeen,
		"kept":        len(result.Entries),
		"skipped":     len(result.Skipped),
		"duration_ms": result.Duration.Milliseconds(),
	})

	return result, nil
}

func (s *Scanner) skip(result *models.ScanResult, path string, err error) {
	result.Skipped = append(result.Skipped, models.SkippedEntry{Path: path, Reason: err.Error()})
	s.logger.Warn("skipping inaccessible entry", logging.Fields{
		"path":  path,
		"error": err.Error(),
	})
}
