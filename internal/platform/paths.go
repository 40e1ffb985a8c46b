package platform

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sdejongh/sizesweep/pkg/models"
)

// NormalizePath normalizes a path for the current platform
func NormalizePath(path string) string {
	// Convert to platform-specific separators
	normalized := filepath.Clean(path)

	// On Windows, ensure UNC paths are preserved
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + normalized
		}
	}

	return normalized
}

// AbsPath returns the normalized absolute form of path.
// A blank path is a *models.ValidationError.
func AbsPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &models.ValidationError{Field: "path", Message: "path is empty"}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return NormalizePath(abs), nil
}

// NormalizeSelection makes every path absolute and drops repeats,
// keeping the first occurrence order
func NormalizeSelection(paths []string) ([]string, error) {
	seen := make(map[string]bool, len(paths))
	selection := make([]string, 0, len(paths))
	for _, path := range paths {
		abs, err := AbsPath(path)
		if err != nil {
			return nil, err
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		selection = append(selection, abs)
	}
	return selection, nil
}
