package models

import (
	"time"
)

// FileEntry represents one candidate file found by a scan
type FileEntry struct {
	// Path is the absolute path of the file
	Path string

	// Size in bytes
	Size int64
}

// SkippedEntry records a file the scanner or filter could not inspect
type SkippedEntry struct {
	// Path is the absolute path of the entry
	Path string

	// Reason is the underlying error message
	Reason string
}

// ScanResult holds the files at or above the threshold, largest first.
// Ties keep discovery order.
type ScanResult struct {
	// Root is the scanned directory as given, made absolute. A symlinked
	// root is not resolved; entry paths sit under it.
	Root string

	// ThresholdBytes is the inclusive minimum size
	ThresholdBytes int64

	// Entries are the kept files sorted by size descending
	Entries []FileEntry

	// Skipped lists entries that could not be stat'ed during the walk
	Skipped []SkippedEntry

	// FilesSeen counts every regular file encountered
	FilesSeen int

	// Duration is the wall time of the walk
	Duration time.Duration
}

// TotalBytes returns the sum of the kept entry sizes
func (r *ScanResult) TotalBytes() int64 {
	var total int64
	for _, entry := range r.Entries {
		total += entry.Size
	}
	return total
}

// Paths returns the entry paths in result order
func (r *ScanResult) Paths() []string {
	return EntryPaths(r.Entries)
}

// FilterResult is the outcome of applying a FilterSpec to a list of entries
type FilterResult struct {
	// Entries are the entries that passed every active rule, input order preserved
	Entries []FileEntry

	// Unverified lists entries kept because their attributes could not be read
	Unverified []SkippedEntry
}

// EntryPaths extracts the paths of the given entries
func EntryPaths(entries []FileEntry) []string {
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	return paths
}
